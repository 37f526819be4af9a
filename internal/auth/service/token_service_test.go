package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  15,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secrets",
			accessSecret:   "",
			refreshSecret:  "",
			accessMinutes:  30,
			refreshMinutes: 2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	tests := []struct {
		name         string
		userID       string
		tokenVersion int
	}{
		{name: "fresh user", userID: "user-123", tokenVersion: 0},
		{name: "user after resets", userID: "user-456", tokenVersion: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

			tokenString, err := ts.GenerateAccessToken(tt.userID, tt.tokenVersion)
			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)

			claims := &JWTCustomClaims{}
			parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(ts.AccessTokenSecret), nil
			})
			require.NoError(t, err)
			assert.True(t, parsed.Valid)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.tokenVersion, claims.TokenVersion)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 2*time.Second)
		})
	}
}

func TestTokenService_GenerateRefreshToken(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 15, 10080)

	tokenString, expiresAt, err := ts.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 2*time.Second)

	claims, err := ts.VerifyRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	// Refresh tokens never carry a token version.
	assert.Zero(t, claims.TokenVersion)

	// A refresh token must not pass as an access token: different secret.
	_, err = ts.VerifyAccessToken(tokenString)
	assert.Error(t, err)
}

func TestTokenService_SecretsAreIndependent(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	accessToken, err := ts.GenerateAccessToken("user-123", 1)
	require.NoError(t, err)

	refreshToken, _, err := ts.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = ts.VerifyRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = ts.VerifyAccessToken(refreshToken)
	assert.Error(t, err)

	wrongClaims := &JWTCustomClaims{}
	_, err = jwt.ParseWithClaims(accessToken, wrongClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestTokenService_ActionTokens(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	verificationToken, err := ts.GenerateVerificationToken("user-123")
	require.NoError(t, err)

	claims, err := ts.VerifyActionToken(verificationToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 2*time.Second)

	resetToken, err := ts.GenerateResetToken("user-456")
	require.NoError(t, err)

	claims, err = ts.VerifyActionToken(resetToken)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestTokenService_VerifyExpiredToken(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	now := time.Now()
	claims := JWTCustomClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(expired)
	assert.Error(t, err)
}

func TestTokenService_VerifyRejectsWrongAlg(t *testing.T) {
	ts := NewTokenService("access-secret", "refresh-secret", 15, 10080)

	// alg=none tokens must never be accepted.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTCustomClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.VerifyAccessToken(unsigned)
	assert.Error(t, err)
}
