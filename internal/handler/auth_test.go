package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSignupValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var svc = testAuthService(t)
	r.POST("/api/auth/signup", NewAuthHandler(svc).Signup)

	for _, body := range []string{
		`{}`,
		`{"name":"x","email":"a@b.cc","password":"secret1"}`,
		`{"name":"Ada","email":"not-an-email","password":"secret1"}`,
		`{"name":"Ada","email":"a@b.cc","password":"short"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestLoginValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", NewAuthHandler(testAuthService(t)).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// Logout must delete both cookies whether or not a session exists.
func TestLogoutClearsCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/logout", NewAuthHandler(testAuthService(t)).Logout)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	cookies := w.Header().Values("Set-Cookie")
	if len(cookies) != 2 {
		t.Fatalf("expected 2 Set-Cookie headers, got %d: %v", len(cookies), cookies)
	}
	for _, name := range []string{"accessToken=", "refreshToken="} {
		found := false
		for _, cookie := range cookies {
			if strings.HasPrefix(cookie, name) && strings.Contains(cookie, "Max-Age=0") {
				found = true
			}
		}
		if !found {
			t.Fatalf("cookie %q not cleared: %v", name, cookies)
		}
	}
}
