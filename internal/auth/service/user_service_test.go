package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	"github.com/dev-charan/Digi-Locker/internal/auth/dto"
	"github.com/dev-charan/Digi-Locker/internal/auth/service"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	"github.com/dev-charan/Digi-Locker/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// syncQueue runs submitted tasks inline so side effects are observable
// before the test returns.
type syncQueue struct{}

func (syncQueue) Submit(task func()) { task() }

type serviceMocks struct {
	users  *mocks.MockUserRepository
	ledger *mocks.MockRefreshTokenLedger
	logs   *mocks.MockLoginLogRepository
	tokens *mocks.MockTokenGenerator
	mailer *mocks.MockMailer
	geo    *mocks.MockGeoResolver
}

func newUserService(ctrl *gomock.Controller) (*service.UserService, serviceMocks) {
	m := serviceMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		ledger: mocks.NewMockRefreshTokenLedger(ctrl),
		logs:   mocks.NewMockLoginLogRepository(ctrl),
		tokens: mocks.NewMockTokenGenerator(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
		geo:    mocks.NewMockGeoResolver(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditor := service.NewLoginAuditor(m.logs, m.geo, m.mailer, logger)
	s := service.NewUserService(m.users, m.ledger, m.tokens, m.mailer, auditor, syncQueue{}, logger)

	return s, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	input := dto.SignupInput{Email: "test@example.com", Password: "Passw0rd!"}

	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.tokens.EXPECT().GenerateVerificationToken(gomock.Any()).Return("verify-token", nil)
	m.mailer.EXPECT().SendVerificationEmail(gomock.Any(), input.Email, "verify-token").Return(nil)

	user, err := s.Signup(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Email, user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.False(t, user.Verified)
	assert.Zero(t, user.TokenVersion)
}

func TestUserService_Signup_RejectsWeakPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newUserService(ctrl)

	// No repository expectations: validation failures must not persist
	// anything.
	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1"},
		{name: "no uppercase", password: "passw0rd!"},
		{name: "no digit", password: "Password!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Signup(context.Background(), dto.SignupInput{
				Email:    "test@example.com",
				Password: tt.password,
			})
			assert.ErrorIs(t, err, autherror.ErrWeakPassword)
		})
	}
}

func TestUserService_Signup_RejectsInvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newUserService(ctrl)

	_, err := s.Signup(context.Background(), dto.SignupInput{
		Email:    "not-an-email",
		Password: "Passw0rd!",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidEmail)
}

func TestUserService_Signup_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	input := dto.SignupInput{Email: "test@example.com", Password: "Passw0rd!"}
	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(&domain.User{
		ID:    "existing-id",
		Email: input.Email,
	}, nil)

	user, err := s.Signup(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, user)
}

func TestUserService_Signup_EmailFailureDoesNotFailSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	input := dto.SignupInput{Email: "test@example.com", Password: "Passw0rd!"}

	m.users.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.tokens.EXPECT().GenerateVerificationToken(gomock.Any()).Return("verify-token", nil)
	m.mailer.EXPECT().SendVerificationEmail(gomock.Any(), input.Email, "verify-token").
		Return(errors.New("smtp down"))

	user, err := s.Signup(context.Background(), input)

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.tokens.EXPECT().VerifyActionToken("good-token").
		Return(&service.JWTCustomClaims{UserID: "user-123"}, nil)
	m.users.EXPECT().MarkVerified(gomock.Any(), "user-123").Return(nil)

	assert.NoError(t, s.VerifyEmail(context.Background(), "good-token"))
}

func TestUserService_VerifyEmail_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.tokens.EXPECT().VerifyActionToken("bad-token").Return(nil, errors.New("signature invalid"))

	err := s.VerifyEmail(context.Background(), "bad-token")
	assert.ErrorIs(t, err, autherror.ErrInvalidOrExpiredToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, err := s.Login(context.Background(), dto.LoginInput{
		Email:    "nobody@example.com",
		Password: "Passw0rd!",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "Passw0rd!"),
	}
	m.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := s.Login(context.Background(), dto.LoginInput{
		Email:    user.Email,
		Password: "WrongPassw0rd",
	})

	// Same error as an unknown email: the caller cannot tell which part was
	// wrong.
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestUserService_Login_FirstLoginNoAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "Passw0rd!"),
		TokenVersion: 2,
	}
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	m.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken(user.ID, 2).Return("access-token", nil)
	m.tokens.EXPECT().GenerateRefreshToken(user.ID).Return("refresh-token", expiresAt, nil)
	m.ledger.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rt *domain.RefreshToken) error {
			assert.Equal(t, user.ID, rt.UserID)
			assert.Equal(t, "refresh-token", rt.Token)
			assert.False(t, rt.Revoked)
			return nil
		})
	m.geo.EXPECT().Lookup(gomock.Any(), "203.0.113.9").Return("Berlin", "Germany", nil)
	m.logs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	// No prior login: the suspicious-login mail must not fire.
	m.logs.EXPECT().GetPreviousLogin(gomock.Any(), user.ID, gomock.Any()).Return(nil, nil)

	pair, err := s.Login(context.Background(), dto.LoginInput{
		Email:    user.Email,
		Password: "Passw0rd!",
		IP:       "203.0.113.9",
		Device:   "curl/8.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
	assert.Equal(t, expiresAt, pair.RefreshExpiresAt)
}

func TestUserService_Login_NewIPSendsAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "Passw0rd!"),
	}

	m.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken(user.ID, 0).Return("access-token", nil)
	m.tokens.EXPECT().GenerateRefreshToken(user.ID).Return("refresh-token", time.Now().Add(time.Hour), nil)
	m.ledger.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	m.geo.EXPECT().Lookup(gomock.Any(), "198.51.100.7").Return("Oslo", "Norway", nil)
	m.logs.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.logs.EXPECT().GetPreviousLogin(gomock.Any(), user.ID, gomock.Any()).
		Return(&domain.LoginLog{IP: "203.0.113.9"}, nil)
	m.mailer.EXPECT().
		SendSuspiciousLoginEmail(gomock.Any(), user.Email, "198.51.100.7", "curl/8.0", "Oslo", "Norway").
		Return(nil)

	_, err := s.Login(context.Background(), dto.LoginInput{
		Email:    user.Email,
		Password: "Passw0rd!",
		IP:       "198.51.100.7",
		Device:   "curl/8.0",
	})

	require.NoError(t, err)
}

func TestUserService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	stored := &domain.RefreshToken{
		ID:        "rt-old",
		UserID:    "user-123",
		Token:     "old-refresh",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &domain.User{ID: "user-123", Email: "test@example.com", TokenVersion: 3}
	newExpiry := time.Now().Add(7 * 24 * time.Hour)

	m.ledger.EXPECT().FindActive(gomock.Any(), "old-refresh").Return(stored, nil)
	m.tokens.EXPECT().VerifyRefreshToken("old-refresh").
		Return(&service.JWTCustomClaims{UserID: "user-123"}, nil)
	m.users.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken("user-123", 3).Return("new-access", nil)
	m.tokens.EXPECT().GenerateRefreshToken("user-123").Return("new-refresh", newExpiry, nil)
	m.ledger.EXPECT().Rotate(gomock.Any(), "rt-old", gomock.Any()).DoAndReturn(
		func(_ context.Context, oldID string, rt *domain.RefreshToken) error {
			assert.Equal(t, "new-refresh", rt.Token)
			assert.Equal(t, "user-123", rt.UserID)
			return nil
		})

	pair, err := s.Refresh(context.Background(), "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestUserService_Refresh_TokenNotInLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	// A signature-valid token that is absent from the ledger is rejected
	// before any signature check happens.
	m.ledger.EXPECT().FindActive(gomock.Any(), "revoked-token").Return(nil, nil)

	_, err := s.Refresh(context.Background(), "revoked-token")
	assert.ErrorIs(t, err, autherror.ErrInvalidOrExpiredToken)
}

func TestUserService_Refresh_ConcurrentRotationLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	stored := &domain.RefreshToken{ID: "rt-old", UserID: "user-123", Token: "old-refresh"}
	user := &domain.User{ID: "user-123", TokenVersion: 0}

	m.ledger.EXPECT().FindActive(gomock.Any(), "old-refresh").Return(stored, nil)
	m.tokens.EXPECT().VerifyRefreshToken("old-refresh").
		Return(&service.JWTCustomClaims{UserID: "user-123"}, nil)
	m.users.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	m.tokens.EXPECT().GenerateAccessToken("user-123", 0).Return("new-access", nil)
	m.tokens.EXPECT().GenerateRefreshToken("user-123").Return("new-refresh", time.Now().Add(time.Hour), nil)
	m.ledger.EXPECT().Rotate(gomock.Any(), "rt-old", gomock.Any()).
		Return(autherror.ErrRefreshTokenNotFound)

	_, err := s.Refresh(context.Background(), "old-refresh")
	assert.ErrorIs(t, err, autherror.ErrInvalidOrExpiredToken)
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.ledger.EXPECT().RevokeByToken(gomock.Any(), "refresh-token").Return(nil)

	assert.NoError(t, s.Logout(context.Background(), "refresh-token"))
}

func TestUserService_ForgotPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	// No token generated, no mail sent, no error: the response must not
	// reveal whether the account exists.
	m.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	assert.NoError(t, s.ForgotPassword(context.Background(), "nobody@example.com"))
}

func TestUserService_ForgotPassword_SendsResetLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	user := &domain.User{ID: "user-123", Email: "test@example.com"}
	m.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	m.tokens.EXPECT().GenerateResetToken(user.ID).Return("reset-token", nil)
	m.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), user.Email, "reset-token").Return(nil)

	assert.NoError(t, s.ForgotPassword(context.Background(), user.Email))
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.tokens.EXPECT().VerifyActionToken("reset-token").
		Return(&service.JWTCustomClaims{UserID: "user-123"}, nil)
	m.users.EXPECT().UpdatePassword(gomock.Any(), "user-123", gomock.Any()).Return(nil)
	// Password reset is logout-everywhere: the ledger is emptied.
	m.ledger.EXPECT().RevokeAll(gomock.Any(), "user-123").Return(nil)

	err := s.ResetPassword(context.Background(), dto.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "NewPassw0rd",
	})

	assert.NoError(t, err)
}

func TestUserService_ResetPassword_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newUserService(ctrl)

	err := s.ResetPassword(context.Background(), dto.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "short",
	})

	assert.ErrorIs(t, err, autherror.ErrWeakPassword)
}

func TestUserService_ResetPassword_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newUserService(ctrl)

	m.tokens.EXPECT().VerifyActionToken("expired-token").Return(nil, errors.New("token is expired"))

	err := s.ResetPassword(context.Background(), dto.ResetPasswordInput{
		Token:       "expired-token",
		NewPassword: "NewPassw0rd",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidOrExpiredToken)
}
