package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuanzhi/finledger/internal/core/domain"
	"github.com/yuanzhi/finledger/internal/utils"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: "liang",
		Role:     domain.RoleAccountant,
	}

	token, err := utils.GenerateJWT(user, "test-secret", time.Hour, "finledger")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, user.UserID, claims.Subject)
	assert.Equal(t, "liang", claims.Username)
	assert.Equal(t, string(domain.RoleAccountant), claims.Role)
	assert.Equal(t, "finledger", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	user := &domain.User{UserID: uuid.NewString(), Username: "liang", Role: domain.RoleAccountant}

	token, err := utils.GenerateJWT(user, "test-secret", time.Hour, "finledger")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	user := &domain.User{UserID: uuid.NewString(), Username: "liang", Role: domain.RoleAccountant}

	token, err := utils.GenerateJWT(user, "test-secret", -time.Minute, "finledger")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not-a-token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
