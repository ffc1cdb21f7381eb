package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/app/models"
	"github.com/mvsilva/adapta/internal/pkg/auth"
)

func testUser() *models.User {
	return &models.User{ID: "user-1", Email: "prof@escola.com", Name: "João", Role: models.RoleTeacher}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "adapta.test",
	})

	token, expiresIn, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "prof@escola.com", claims.Email)
	assert.Equal(t, string(models.RoleTeacher), claims.Role)
	assert.Equal(t, "adapta.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	service := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "adapta.test",
	})

	token, _, err := service.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.True(t, errors.Is(err, auth.ErrExpiredToken))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = auth.ExtractBearerToken("")
	assert.True(t, errors.Is(err, auth.ErrInvalidFormat))

	_, err = auth.ExtractBearerToken("Token abc")
	assert.True(t, errors.Is(err, auth.ErrInvalidFormat))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("coord123")
	require.NoError(t, err)
	assert.NotEqual(t, "coord123", hash)

	assert.True(t, auth.CheckPassword(hash, "coord123"))
	assert.False(t, auth.CheckPassword(hash, "coord124"))
}
