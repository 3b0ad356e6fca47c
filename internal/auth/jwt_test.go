package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroconnect/internal/domain"
)

const testSecret = "test-secret-key-for-testing-purposes"

func TestVerifier_Valid(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "asha@example.in", "Asha", time.Hour)
	require.NoError(t, err)

	id, err := NewVerifier(testSecret).Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id.ID)
	assert.Equal(t, "asha@example.in", id.Email)
	assert.Equal(t, "Asha", id.Name)
	assert.Equal(t, domain.SourceDelegated, id.Source)
	assert.Empty(t, id.Role)
}

func TestVerifier_Expired(t *testing.T) {
	tok, err := Issue(testSecret, "user-123", "a@b.co", "", -time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier(testSecret).Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifier_WrongSecret(t *testing.T) {
	tok, err := Issue("other-secret", "user-123", "a@b.co", "", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier(testSecret).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_RejectsNoneAlg(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "x", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewVerifier(testSecret).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_RequiresSubjectAndExpiry(t *testing.T) {
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = NewVerifier(testSecret).Verify(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = NewVerifier(testSecret).Verify(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Disabled(t *testing.T) {
	v := NewVerifier("")
	assert.False(t, v.Enabled())
	_, err := v.Verify("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	tok, ok = BearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = BearerToken("")
	assert.False(t, ok)
}
