package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/dev-charan/Digi-Locker/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	GenerateAccessToken(userID string, tokenVersion int) (string, error)
	GenerateRefreshToken(userID string) (string, time.Time, error)
	GenerateVerificationToken(userID string) (string, error)
	GenerateResetToken(userID string) (string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
	VerifyActionToken(tokenString string) (*JWTCustomClaims, error)
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs with two independent secrets: compromise of the access
// secret must not mint refresh tokens and vice versa. Verification and
// password-reset links are short-lived tokens under the access secret.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

const (
	verificationTokenExpiry = time.Hour
	resetTokenExpiry        = 15 * time.Minute
)

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	TokenVersion int    `json:"token_version,omitempty"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) GenerateAccessToken(userID string, tokenVersion int) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID:       userID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

func (ts *TokenService) GenerateRefreshToken(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.RefreshTokenExpiry)
	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// GenerateVerificationToken mints the token embedded in the email
// verification link.
func (ts *TokenService) GenerateVerificationToken(userID string) (string, error) {
	return ts.generateActionToken(userID, verificationTokenExpiry)
}

// GenerateResetToken mints the token embedded in the password-reset link.
func (ts *TokenService) GenerateResetToken(userID string) (string, error) {
	return ts.generateActionToken(userID, resetTokenExpiry)
}

func (ts *TokenService) generateActionToken(userID string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

// VerifyActionToken validates verification and reset-link tokens.
func (ts *TokenService) VerifyActionToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
