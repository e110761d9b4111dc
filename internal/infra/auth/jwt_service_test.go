package auth

import (
	"testing"
	"time"

	"careadmin/config"
	"careadmin/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, 15*time.Minute))
	require.NoError(t, err)

	userID := uuid.New()
	roles := entity.Roles{entity.RoleAdmin, entity.RoleCaregiver}.ToStrings()

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret, time.Minute))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another_secret_key_for_signing_tokens", time.Minute))
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	past := &jwtService{
		secret: []byte(testSecret),
		ttl:    time.Minute,
		now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expired, err := past.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": "access",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "refresh type", token: refresh},
		{name: "no expiry", token: noExpiry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Minute))
	assert.Error(t, err)
}
