package auth

import (
	"testing"
	"time"

	"kuttyport/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		wantErr   bool
		wantRoles []string
	}{
		{
			name: "valid access token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": "ops-1", "exp": future, "roles": []string{"admin"}, "type": "access",
				})
			},
			wantRoles: []string{"admin"},
		},
		{
			name: "token without type claim",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS512, jwt.MapClaims{
					"sub": "courier-7", "exp": future, "roles": []string{"courier"},
				})
			},
			wantRoles: []string{"courier"},
		},
		{
			name: "refresh token rejected",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": "ops-1", "exp": future, "type": "refresh",
				})
			},
			wantErr: true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops-1", "exp": past})
			},
			wantErr: true,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops-1"})
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, "another-secret", jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops-1", "exp": future})
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"exp": future})
			},
			wantErr: true,
		},
		{
			name:    "not a jwt",
			token:   func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, claims.Subject)
			assert.Equal(t, tt.wantRoles, claims.Roles)
		})
	}
}
