package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitloop/backend/internal/config"
	"github.com/habitloop/backend/internal/db"
	"github.com/habitloop/backend/internal/model"
	"github.com/habitloop/backend/internal/token"
)

const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
)

type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService struct {
	repo          *db.Mongo
	codec         *token.Codec
	logger        *zap.Logger
	accessCookie  CookieConfig
	refreshCookie CookieConfig
}

func NewAuthService(repo *db.Mongo, codec *token.Codec, cfg config.AuthConfig, logger *zap.Logger) (*AuthService, error) {
	// secure unless explicitly switched off for local development
	secure := true
	if v := strings.TrimSpace(cfg.CookieSecure); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_COOKIE_SECURE: %w", err)
		}
		secure = parsed
	}

	base := CookieConfig{
		Path:     "/",
		Domain:   cfg.CookieDomain,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	access := base
	access.Name = AccessCookieName
	access.MaxAge = int(token.AccessTTL.Seconds())

	refresh := base
	refresh.Name = RefreshCookieName
	refresh.MaxAge = int(token.RefreshTTL.Seconds())

	return &AuthService{
		repo:          repo,
		codec:         codec,
		logger:        logger,
		accessCookie:  access,
		refreshCookie: refresh,
	}, nil
}

func (s *AuthService) Codec() *token.Codec {
	return s.codec
}

func (s *AuthService) AccessCookie() CookieConfig {
	return s.accessCookie
}

func (s *AuthService) RefreshCookie() CookieConfig {
	return s.refreshCookie
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*model.User, TokenPair, error) {
	email = normalizeEmail(email)
	if name = strings.TrimSpace(name); len(name) < 2 {
		return nil, TokenPair{}, ErrInvalidInput
	}
	if email == "" || len(password) < 6 {
		return nil, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user, err := s.repo.CreateUser(ctx, name, email, string(hash))
	if err != nil {
		if db.IsDuplicateKey(err) {
			return nil, TokenPair{}, ErrConflict
		}
		return nil, TokenPair{}, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	s.logger.Info("user signed up", zap.String("userId", user.ID.Hex()))
	return user, pair, nil
}

// Login deliberately collapses "no such user" and "wrong password" into
// one unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, TokenPair{}, ErrInvalidInput
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoDocuments(err) {
			return nil, TokenPair{}, ErrUnauthorized
		}
		return nil, TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, TokenPair{}, ErrUnauthorized
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// CurrentUser resolves the caller's identity from the access-token
// cookie. It returns nil on any failure and never errors: a missing
// cookie, an expired token and a tampered one all look the same.
func (s *AuthService) CurrentUser(c *gin.Context) *token.Claims {
	tokenStr, err := c.Cookie(AccessCookieName)
	if err != nil || tokenStr == "" {
		return nil
	}
	claims, err := s.codec.Verify(token.KindAccess, tokenStr)
	if err != nil {
		return nil
	}
	return claims
}

// RequireUser is the gate every data operation passes first.
func (s *AuthService) RequireUser(c *gin.Context) (*token.Claims, error) {
	claims := s.CurrentUser(c)
	if claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) Theme(ctx context.Context, userID string) (string, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", ErrNotFound
	}
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if db.IsNoDocuments(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	if user.Theme == "" {
		return "light", nil
	}
	return user.Theme, nil
}

func (s *AuthService) UpdateTheme(ctx context.Context, userID, theme string) error {
	if theme != "light" && theme != "dark" {
		return ErrInvalidInput
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.repo.UpdateUserTheme(ctx, id, theme)
}

func (s *AuthService) issueTokens(user *model.User) (TokenPair, error) {
	claims := token.Claims{UserID: user.ID.Hex(), Email: user.Email}

	access, err := s.codec.Issue(token.KindAccess, claims)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.codec.Issue(token.KindRefresh, claims)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
