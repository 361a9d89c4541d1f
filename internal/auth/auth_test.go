package auth

import (
	"testing"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("5c8a1dfa2f8fb814b56fa181")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "5c8a1dfa2f8fb814b56fa181", claims.UserID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 2*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, err := m.Issue("u1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)

	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Issue("u1")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Parse(token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RejectsOtherMethods(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenManager("s", time.Hour).Parse(token)

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("s", time.Hour).Parse("not.a.token")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	ok, err := h.Compare(hash, "pass1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
}

func TestNewResetToken(t *testing.T) {
	plain, digest, err := NewResetToken()
	require.NoError(t, err)

	assert.Len(t, plain, 64)
	assert.Len(t, digest, 64)
	assert.NotEqual(t, plain, digest)
	assert.Equal(t, digest, HashResetToken(plain))
}
