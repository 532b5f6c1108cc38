package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedIssuer() *TokenIssuer {
	return NewTokenIssuer(testSecret, 7*24*time.Hour).WithClock(func() time.Time { return fixedNow })
}

func TestTokenIssuer_UserRoundTrip(t *testing.T) {
	issuer := fixedIssuer()

	token, err := issuer.IssueForUser("user-123")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.ID)
	assert.Empty(t, claims.Email)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenIssuer_SellerRoundTrip(t *testing.T) {
	issuer := fixedIssuer()

	token, err := issuer.IssueForSeller("seller@shop.test")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "seller@shop.test", claims.Email)
	assert.Empty(t, claims.ID)
}

func TestTokenIssuer_Deterministic(t *testing.T) {
	issuer := fixedIssuer()

	first, err := issuer.IssueForUser("user-123")
	require.NoError(t, err)
	second, err := issuer.IssueForUser("user-123")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := fixedIssuer()
	token, err := issuer.IssueForUser("user-123")
	require.NoError(t, err)

	later := issuer.WithClock(func() time.Time { return fixedNow.Add(8 * 24 * time.Hour) })
	_, err = later.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	almost := issuer.WithClock(func() time.Time { return fixedNow.Add(6 * 24 * time.Hour) })
	_, err = almost.Parse(token)
	assert.NoError(t, err)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := fixedIssuer().IssueForUser("user-123")
	require.NoError(t, err)

	other := NewTokenIssuer("other-secret", time.Hour).WithClock(func() time.Time { return fixedNow })
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsMalformed(t *testing.T) {
	issuer := fixedIssuer()

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}

func TestTokenIssuer_RejectsTampered(t *testing.T) {
	issuer := fixedIssuer()
	token, err := issuer.IssueForUser("user-123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}
	_, err = issuer.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsUnsignedToken(t *testing.T) {
	claims := Claims{
		ID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = fixedIssuer().Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RequiresExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "user-123"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = fixedIssuer().Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
