package domain

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, userID string) error
	// UpdatePassword sets the new hash and bumps token_version in a single
	// statement so every outstanding access token goes stale atomically.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type RefreshTokenLedger interface {
	Store(ctx context.Context, rt *RefreshToken) error
	// FindActive matches only non-revoked, unexpired rows. The ledger, not
	// the signature, is the authority at refresh time.
	FindActive(ctx context.Context, token string) (*RefreshToken, error)
	// Rotate deletes the old row and inserts the new one in one transaction.
	// Of two concurrent rotations of the same row, exactly one wins.
	Rotate(ctx context.Context, oldID string, newToken *RefreshToken) error
	RevokeAll(ctx context.Context, userID string) error
	RevokeByToken(ctx context.Context, token string) error
}

type LoginLogRepository interface {
	Insert(ctx context.Context, entry *LoginLog) error
	// GetPreviousLogin returns the most recent login for the user other than
	// excludeID, or nil when this is the first login.
	GetPreviousLogin(ctx context.Context, userID, excludeID string) (*LoginLog, error)
}
