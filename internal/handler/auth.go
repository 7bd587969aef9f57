package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup godoc
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Name, email and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, pair, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		User: model.AuthUserResponse{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, pair, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, model.AuthResponse{
		Success: true,
		User: model.AuthUserResponse{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Logout godoc
// @Summary Logout
// @Description Deletes both auth cookies. Idempotent; tokens themselves
// @Description simply age out, there is no server-side revocation.
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthLogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, model.AuthLogoutResponse{Status: "logged_out"})
}

// Me godoc
// @Summary Get current session identity
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthMeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.AuthMeResponse{
		UserID: claims.UserID,
		Email:  claims.Email,
	})
}

// Theme godoc
// @Summary Get the user's theme preference
// @Tags profile
// @Produce json
// @Success 200 {object} model.ThemeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/profile/theme [get]
func (h *AuthHandler) Theme(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	theme, err := h.svc.Theme(c.Request.Context(), claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ThemeResponse{Theme: theme})
}

// UpdateTheme godoc
// @Summary Update the user's theme preference
// @Tags profile
// @Accept json
// @Produce json
// @Param request body model.ThemeRequest true "light or dark"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/profile/theme [put]
func (h *AuthHandler) UpdateTheme(c *gin.Context) {
	claims := GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.UpdateTheme(c.Request.Context(), claims.UserID, req.Theme); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "updated"})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, pair service.TokenPair) {
	for _, cookie := range []struct {
		cfg   service.CookieConfig
		value string
	}{
		{h.svc.AccessCookie(), pair.Access},
		{h.svc.RefreshCookie(), pair.Refresh},
	} {
		c.SetSameSite(cookie.cfg.SameSite)
		c.SetCookie(cookie.cfg.Name, cookie.value, cookie.cfg.MaxAge, cookie.cfg.Path, cookie.cfg.Domain, cookie.cfg.Secure, true)
	}
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	for _, cfg := range []service.CookieConfig{h.svc.AccessCookie(), h.svc.RefreshCookie()} {
		c.SetSameSite(cfg.SameSite)
		c.SetCookie(cfg.Name, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
	}
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
