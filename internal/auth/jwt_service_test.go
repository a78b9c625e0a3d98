package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_VerifyStripsBearerPrefix(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.Issue(7)
	assert.NoError(t, err)

	userID, err := service.Verify("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.Issue(42)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_VerifyMalformed(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_VerifyMissingUserID(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
