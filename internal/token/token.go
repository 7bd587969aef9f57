// Package token issues and verifies the signed bearer tokens that carry
// a session identity. Two kinds exist, differing only in signing secret
// and lifetime: a short-lived access token and a long-lived refresh
// token. Tokens are stateless; there is no server-side revocation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

var (
	// ErrInvalidToken covers malformed, tampered and expired tokens
	// alike. Callers never learn which one it was.
	ErrInvalidToken = errors.New("invalid token")

	ErrMisconfigured = errors.New("token config invalid")
)

// Claims is the identity payload embedded in every token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type signedClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewCodec fails when either secret is absent. There is deliberately no
// fallback secret: a guessable default would make every token forgeable.
func NewCodec(accessSecret, refreshSecret string) (*Codec, error) {
	if accessSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if refreshSecret == "" {
		return nil, fmt.Errorf("%w: JWT_REFRESH_SECRET is required", ErrMisconfigured)
	}
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}, nil
}

func (k Kind) TTL() time.Duration {
	if k == KindRefresh {
		return RefreshTTL
	}
	return AccessTTL
}

func (c *Codec) secret(k Kind) []byte {
	if k == KindRefresh {
		return c.refreshSecret
	}
	return c.accessSecret
}

// Issue signs claims with the kind's secret, expiring after the kind's TTL.
func (c *Codec) Issue(kind Kind, claims Claims) (string, error) {
	now := c.now()
	sc := signedClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(kind.TTL())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, sc).SignedString(c.secret(kind))
}

// Verify checks signature and expiry against the kind's secret and
// returns the embedded claims.
func (c *Codec) Verify(kind Kind, tokenStr string) (*Claims, error) {
	sc := &signedClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, sc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret(kind), nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: sc.UserID, Email: sc.Email}, nil
}
