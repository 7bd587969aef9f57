package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// VerifyCompact is a self-contained HS256 verifier with the same
// contract as Verify. The route gate runs on it so that gate decisions
// depend only on HMAC primitives, not on the full JWT library; the two
// implementations are held in agreement by a shared conformance test.
func (c *Codec) VerifyCompact(kind Kind, tokenStr string) (*Claims, error) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrInvalidToken
	}
	mac := hmac.New(sha256.New, c.secret(kind))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, ErrInvalidToken
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalidToken
	}
	var header struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerJSON, &header); err != nil || header.Alg != "HS256" {
		return nil, ErrInvalidToken
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	var payload struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Exp    int64  `json:"exp"`
	}
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, ErrInvalidToken
	}
	if payload.Exp == 0 || !c.now().Before(time.Unix(payload.Exp, 0)) {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: payload.UserID, Email: payload.Email}, nil
}
