package auth

import (
	"testing"

	"upipay_backend/internal/config"
	"upipay_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	return cfg
}

func TestIssueAndParseToken(t *testing.T) {
	config.AppConfig = testConfig()

	admin := &models.AdminUser{
		Email: "admin@example.com",
		Role:  models.AdminRoleAdmin,
	}
	admin.ID = "admin-1"

	token, err := IssueToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.AdminRoleAdmin, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	config.AppConfig = testConfig()

	admin := &models.AdminUser{Email: "admin@example.com"}
	admin.ID = "admin-1"
	token, err := IssueToken(admin)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "rotated-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	config.AppConfig = testConfig()

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
