package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	"github.com/dev-charan/Digi-Locker/internal/auth/dto"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users   domain.UserRepository
	ledger  domain.RefreshTokenLedger
	tokens  TokenGenerator
	mailer  Mailer
	auditor *LoginAuditor
	queue   TaskQueue
	logger  *slog.Logger
}

func NewUserService(
	users domain.UserRepository,
	ledger domain.RefreshTokenLedger,
	tokens TokenGenerator,
	mailer Mailer,
	auditor *LoginAuditor,
	queue TaskQueue,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		users:   users,
		ledger:  ledger,
		tokens:  tokens,
		mailer:  mailer,
		auditor: auditor,
		queue:   queue,
		logger:  logger,
	}
}

// Signup validates input, creates the unverified user and queues the
// verification email. Validation failures never touch the database.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existingUser, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), authconstant.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Verified:     false,
		TokenVersion: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	verificationToken, err := s.tokens.GenerateVerificationToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate verification token", "user_id", user.ID, "error", err)
		return user, nil
	}

	s.queue.Submit(func() {
		if err := s.mailer.SendVerificationEmail(context.Background(), user.Email, verificationToken); err != nil {
			s.logger.Error("failed to send verification email", "user_id", user.ID, "error", err)
		}
	})

	return user, nil
}

// VerifyEmail redeems a verification-link token. The transition is one-way.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.tokens.VerifyActionToken(token)
	if err != nil {
		return autherror.ErrInvalidOrExpiredToken
	}

	if err := s.users.MarkVerified(ctx, claims.UserID); err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return autherror.ErrInvalidOrExpiredToken
		}
		return err
	}

	return nil
}

// Login checks credentials, issues a token pair, persists the refresh token
// and hands the audit trail (geo lookup, login log, suspicious-login alert)
// to the background queue. A wrong email and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	audited := *user
	s.queue.Submit(func() {
		s.auditor.Record(context.Background(), &audited, input.IP, input.Device)
	})

	return pair, nil
}

// Refresh rotates a refresh token. The ledger is consulted first: a revoked
// or deleted token is rejected no matter how valid its signature still is.
func (s *UserService) Refresh(ctx context.Context, rawToken string) (*dto.TokenPair, error) {
	stored, err := s.ledger.FindActive(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, autherror.ErrInvalidOrExpiredToken
	}

	claims, err := s.tokens.VerifyRefreshToken(rawToken)
	if err != nil {
		return nil, autherror.ErrInvalidOrExpiredToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidOrExpiredToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.TokenVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	refreshToken, expiresAt, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	newRecord := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	if err := s.ledger.Rotate(ctx, stored.ID, newRecord); err != nil {
		// A concurrent refresh already consumed the old token; this caller
		// loses.
		if errors.Is(err, autherror.ErrRefreshTokenNotFound) {
			return nil, autherror.ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Logout revokes exactly the ledger entry for the presented refresh token.
func (s *UserService) Logout(ctx context.Context, rawToken string) error {
	return s.ledger.RevokeByToken(ctx, rawToken)
}

// ForgotPassword queues a reset email when the account exists. The response
// is identical either way so the endpoint cannot be used to enumerate
// accounts.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	resetToken, err := s.tokens.GenerateResetToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate reset token", "user_id", user.ID, "error", err)
		return nil
	}

	s.queue.Submit(func() {
		if err := s.mailer.SendPasswordResetEmail(context.Background(), user.Email, resetToken); err != nil {
			s.logger.Error("failed to send password reset email", "user_id", user.ID, "error", err)
		}
	})

	return nil
}

// ResetPassword redeems a reset token: rehash, bump token_version (stale out
// every outstanding access token) and empty the refresh-token ledger for the
// user.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	if err := dto.ValidatePassword(input.NewPassword); err != nil {
		return err
	}

	claims, err := s.tokens.VerifyActionToken(input.Token)
	if err != nil {
		return autherror.ErrInvalidOrExpiredToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), authconstant.BcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, claims.UserID, string(hashedPassword)); err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return autherror.ErrInvalidOrExpiredToken
		}
		return err
	}

	if err := s.ledger.RevokeAll(ctx, claims.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}

func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	refreshToken, expiresAt, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	record := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
		Revoked:   false,
	}
	if err := s.ledger.Store(ctx, record); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}
