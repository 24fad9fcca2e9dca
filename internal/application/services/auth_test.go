package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"assignly-api/internal/domain/user"
	"assignly-api/internal/infrastructure/jwt"
)

func TestAuthService_HashPassword(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"))

	h1, err := as.HashPassword("correct horse battery")
	require.NoError(t, err)
	h2, err := as.HashPassword("correct horse battery")
	require.NoError(t, err)

	// salted, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(h1), []byte("correct horse battery")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(h1), []byte("wrong password")))
}

func TestAuthService_GenerateToken(t *testing.T) {
	jwtService := jwt.New("test-secret")
	as := NewAuthService(jwtService)

	hash, err := as.HashPassword("supersecret1")
	require.NoError(t, err)

	u := &user.User{
		UUID:         uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: &hash,
	}

	token, err := as.GenerateToken(u, "supersecret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.UUID.String(), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAuthService_GenerateToken_WrongPassword(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"))

	hash, err := as.HashPassword("supersecret1")
	require.NoError(t, err)

	u := &user.User{UUID: uuid.New(), Email: "ana@example.com", PasswordHash: &hash}

	_, err = as.GenerateToken(u, "nottherightone")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GenerateToken_NoStoredHash(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"))

	u := &user.User{UUID: uuid.New(), Email: "ana@example.com"}

	_, err := as.GenerateToken(u, "whatever12")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
