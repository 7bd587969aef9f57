package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/habitloop/backend/internal/config"
	"github.com/habitloop/backend/internal/service"
	"github.com/habitloop/backend/internal/token"
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("access-secret", "refresh-secret")
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return codec
}

func testAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	svc, err := service.NewAuthService(nil, testCodec(t), config.AuthConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	return svc
}

func issueAccess(t *testing.T, codec *token.Codec) string {
	t.Helper()
	tokenStr, err := codec.Issue(token.KindAccess, token.Claims{
		UserID: "64f1b2a3c4d5e6f708192a3b",
		Email:  "user@example.com",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tokenStr
}

func pageGateRouter(codec *token.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pages := r.Group("/", PageGate(codec))
	for _, path := range []string{"/dashboard", "/habits", "/auth/login", "/auth/signup"} {
		pages.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
	}
	return r
}

func TestPageGateRedirectsAnonymousToLogin(t *testing.T) {
	codec := testCodec(t)
	r := pageGateRouter(codec)

	for _, path := range []string{"/dashboard", "/habits"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/auth/login" {
			t.Fatalf("%s: expected redirect to /auth/login, got %q", path, loc)
		}
	}
}

func TestPageGateAllowsAnonymousAuthPages(t *testing.T) {
	r := pageGateRouter(testCodec(t))

	for _, path := range []string{"/auth/login", "/auth/signup"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestPageGateRedirectsAuthenticatedAwayFromAuthPages(t *testing.T) {
	codec := testCodec(t)
	r := pageGateRouter(codec)
	tokenStr := issueAccess(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: tokenStr})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestPageGateAllowsAuthenticatedThrough(t *testing.T) {
	codec := testCodec(t)
	r := pageGateRouter(codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: issueAccess(t, codec)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPageGateFailsClosedOnBadToken(t *testing.T) {
	r := pageGateRouter(testCodec(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: "not.a.token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/auth/login" {
		t.Fatalf("expected redirect to /auth/login, got %q", loc)
	}
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/auth/me", AuthMiddleware(testAuthService(t)), NewAuthHandler(nil).Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := testAuthService(t)
	r := gin.New()
	r.GET("/api/v1/auth/me", AuthMiddleware(svc), NewAuthHandler(svc).Me)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: service.AccessCookieName, Value: issueAccess(t, svc.Codec())})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
