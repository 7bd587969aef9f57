package service

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/config"
	"github.com/habitloop/backend/internal/token"
)

func newTestAuthService(t *testing.T, cfg config.AuthConfig) *AuthService {
	t.Helper()
	codec, err := token.NewCodec("access-secret", "refresh-secret")
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	svc, err := NewAuthService(nil, codec, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	return svc
}

func TestCookieConfigsMatchTokenLifetimes(t *testing.T) {
	svc := newTestAuthService(t, config.AuthConfig{})

	access := svc.AccessCookie()
	if access.Name != AccessCookieName {
		t.Fatalf("unexpected access cookie name %q", access.Name)
	}
	if access.MaxAge != int(token.AccessTTL.Seconds()) {
		t.Fatalf("access max-age %d, want %d", access.MaxAge, int(token.AccessTTL.Seconds()))
	}

	refresh := svc.RefreshCookie()
	if refresh.Name != RefreshCookieName {
		t.Fatalf("unexpected refresh cookie name %q", refresh.Name)
	}
	if refresh.MaxAge != int(token.RefreshTTL.Seconds()) {
		t.Fatalf("refresh max-age %d, want %d", refresh.MaxAge, int(token.RefreshTTL.Seconds()))
	}

	for _, cookie := range []CookieConfig{access, refresh} {
		if cookie.Path != "/" {
			t.Fatalf("cookie path %q, want /", cookie.Path)
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Fatalf("cookie samesite %v, want lax", cookie.SameSite)
		}
	}
}

func TestCookieSecureDefaultsOn(t *testing.T) {
	svc := newTestAuthService(t, config.AuthConfig{})
	if !svc.AccessCookie().Secure || !svc.RefreshCookie().Secure {
		t.Fatal("cookies not secure with AUTH_COOKIE_SECURE unset")
	}

	svc = newTestAuthService(t, config.AuthConfig{CookieSecure: "false"})
	if svc.AccessCookie().Secure || svc.RefreshCookie().Secure {
		t.Fatal("cookies secure with AUTH_COOKIE_SECURE=false")
	}
}

func TestNewAuthServiceRejectsBadCookieSecure(t *testing.T) {
	codec, err := token.NewCodec("access-secret", "refresh-secret")
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	if _, err := NewAuthService(nil, codec, config.AuthConfig{CookieSecure: "maybe"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for invalid AUTH_COOKIE_SECURE")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Fatalf("got %q", got)
	}
}

func TestParseDay(t *testing.T) {
	day, err := parseDay("2026-03-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	if !day.Equal(want) {
		t.Fatalf("got %v, want %v", day, want)
	}

	today, err := parseDay("")
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Fatalf("empty date not normalized to midnight: %v", today)
	}

	if _, err := parseDay("10/03/2026"); err == nil {
		t.Fatal("expected error for unsupported date format")
	}
}
