package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repository needs. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, verified, token_version, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Verified,
		&user.TokenVersion, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, verified, token_version, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Verified,
		&user.TokenVersion, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, verified, token_version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Email, user.PasswordHash, user.Verified, user.TokenVersion,
		user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET verified = true, updated_at = now() WHERE id = $1
	`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

// UpdatePassword also bumps token_version so every outstanding access token
// for the user goes stale in the same statement.
func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, token_version = token_version + 1, updated_at = now()
		WHERE id = $1
	`, userID, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrUserNotFound
	}

	return nil
}

func (r *PostgresRepository) Store(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at, revoked)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.Token, rt.ExpiresAt, rt.CreatedAt, rt.Revoked)

	return err
}

func (r *PostgresRepository) FindActive(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, created_at, revoked
		FROM refresh_tokens
		WHERE token = $1 AND revoked = false AND expires_at > now()
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, token)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt, &rt.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	return &rt, nil
}

// Rotate deletes the old ledger row and inserts its replacement in a single
// transaction. The delete is keyed by id; when a concurrent refresh already
// rotated the row, zero rows are affected and the whole rotation fails with
// ErrRefreshTokenNotFound.
func (r *PostgresRepository) Rotate(ctx context.Context, oldID string, newToken *domain.RefreshToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, oldID)
	if err != nil {
		return fmt.Errorf("failed to delete old refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return autherror.ErrRefreshTokenNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at, revoked)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, newToken.ID, newToken.UserID, newToken.Token, newToken.ExpiresAt,
		newToken.CreatedAt, newToken.Revoked)
	if err != nil {
		return fmt.Errorf("failed to store rotated refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rotation: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RevokeAll(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *PostgresRepository) RevokeByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	return err
}

func (r *PostgresRepository) Insert(ctx context.Context, entry *domain.LoginLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_logs (id, user_id, ip, device, city, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.UserID, entry.IP, entry.Device, entry.City, entry.Country, entry.CreatedAt)

	return err
}

func (r *PostgresRepository) GetPreviousLogin(ctx context.Context, userID, excludeID string) (*domain.LoginLog, error) {
	query := `
		SELECT id, user_id, ip, device, city, country, created_at
		FROM login_logs
		WHERE user_id = $1 AND id <> $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, userID, excludeID)

	var entry domain.LoginLog
	err := row.Scan(&entry.ID, &entry.UserID, &entry.IP, &entry.Device,
		&entry.City, &entry.Country, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get previous login: %w", err)
	}

	return &entry, nil
}
