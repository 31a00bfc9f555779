package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:   []byte("test-secret-at-least-32-bytes-long"),
		TokenTTL: time.Hour,
	}
}

func TestGenerateAndValidate(t *testing.T) {
	cfg := testConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "user-123", "manager")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "manager", claims.Username)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "leadsync", claims.Issuer)
}

func TestValidateWrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(testConfig(), "user-123", "manager")
	require.NoError(t, err)

	badCfg := Config{Secret: []byte("a-completely-different-secret-key"), TokenTTL: time.Hour}
	_, err = ValidateAccessToken(badCfg, token)
	require.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Minute

	token, _, err := GenerateAccessToken(cfg, "user-123", "manager")
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateAccessToken(testConfig(), "not.a.token")
	require.Error(t, err)
}
