package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Both verification entry points must agree on every input, so every
// case below runs against both.
var verifiers = map[string]func(*Codec, Kind, string) (*Claims, error){
	"full":    (*Codec).Verify,
	"compact": (*Codec).VerifyCompact,
}

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec("access-secret", "refresh-secret")
	require.NoError(t, err)
	return codec
}

func TestNewCodecRequiresSecrets(t *testing.T) {
	_, err := NewCodec("", "refresh-secret")
	require.ErrorIs(t, err, ErrMisconfigured)

	_, err = NewCodec("access-secret", "")
	require.ErrorIs(t, err, ErrMisconfigured)

	_, err = NewCodec("access-secret", "refresh-secret")
	require.NoError(t, err)
}

func TestRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	claims := Claims{UserID: "64f1b2a3c4d5e6f708192a3b", Email: "user@example.com"}

	for _, kind := range []Kind{KindAccess, KindRefresh} {
		tokenStr, err := codec.Issue(kind, claims)
		require.NoError(t, err)

		for name, verify := range verifiers {
			got, err := verify(codec, kind, tokenStr)
			require.NoError(t, err, name)
			require.Equal(t, &claims, got, name)
		}
	}
}

func TestWrongKindSecretFails(t *testing.T) {
	codec := newTestCodec(t)
	tokenStr, err := codec.Issue(KindAccess, Claims{UserID: "u1", Email: "a@b.cc"})
	require.NoError(t, err)

	for name, verify := range verifiers {
		_, err := verify(codec, KindRefresh, tokenStr)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestTamperedTokenFails(t *testing.T) {
	codec := newTestCodec(t)
	tokenStr, err := codec.Issue(KindAccess, Claims{UserID: "u1", Email: "a@b.cc"})
	require.NoError(t, err)

	parts := strings.Split(tokenStr, ".")
	require.Len(t, parts, 3)
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":"u2","email":"x@y.zz","exp":9999999999}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	for name, verify := range verifiers {
		_, err := verify(codec, KindAccess, tampered)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestExpiredTokenFails(t *testing.T) {
	codec := newTestCodec(t)
	claims := Claims{UserID: "u1", Email: "a@b.cc"}

	tokenStr, err := codec.Issue(KindAccess, claims)
	require.NoError(t, err)

	// valid signature, but the clock has moved past the access TTL
	codec.now = func() time.Time { return time.Now().Add(AccessTTL + time.Minute) }
	for name, verify := range verifiers {
		_, err := verify(codec, KindAccess, tokenStr)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}

	// the refresh token from the same moment is still alive
	codec.now = time.Now
	refreshStr, err := codec.Issue(KindRefresh, claims)
	require.NoError(t, err)
	codec.now = func() time.Time { return time.Now().Add(AccessTTL + time.Minute) }
	for name, verify := range verifiers {
		_, err := verify(codec, KindRefresh, refreshStr)
		require.NoError(t, err, name)
	}
}

func TestMalformedTokensFail(t *testing.T) {
	codec := newTestCodec(t)

	for _, tokenStr := range []string{
		"",
		"garbage",
		"a.b",
		"a.b.c.d",
		"!!!.###.$$$",
		"eyJhbGciOiJIUzI1NiJ9..",
	} {
		for name, verify := range verifiers {
			_, err := verify(codec, KindAccess, tokenStr)
			require.ErrorIs(t, err, ErrInvalidToken, "%s: %q", name, tokenStr)
		}
	}
}

func TestMissingExpiryRejected(t *testing.T) {
	codec := newTestCodec(t)

	// correctly signed, but no exp claim: never valid
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":"u1","email":"a@b.cc"}`))
	signingInput := header + "." + payload

	mac := hmac.New(sha256.New, []byte("access-secret"))
	mac.Write([]byte(signingInput))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	for name, verify := range verifiers {
		_, err := verify(codec, KindAccess, signingInput+"."+sig)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestUnsignedAlgRejected(t *testing.T) {
	codec := newTestCodec(t)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":"u1","email":"a@b.cc","exp":9999999999}`))

	for name, verify := range verifiers {
		_, err := verify(codec, KindAccess, header+"."+payload+".")
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}
