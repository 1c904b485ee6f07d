package auth

import (
	"testing"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	m.Run()
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sokoto@2024")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Sokoto@2024", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "admin@cedudus.ng", "Amina", "Usman")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin@cedudus.ng", claims.Email)
	assert.Equal(t, "Amina", claims.FirstName)
	assert.Equal(t, "Usman", claims.LastName)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "admin@cedudus.ng", "Amina", "Usman")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
