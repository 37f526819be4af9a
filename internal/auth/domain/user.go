package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Verified     bool
	TokenVersion int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// LoginLog is append-only. Rows are written on every successful login and
// only ever read back for the previous-IP comparison.
type LoginLog struct {
	ID        string
	UserID    string
	IP        string
	Device    string
	City      string
	Country   string
	CreatedAt time.Time
}
