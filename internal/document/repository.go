package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB mirrors the subset of pgxpool.Pool the repository uses, so pgxmock can
// stand in for tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const docColumns = `id, user_id, title, description, file_name, stored_path, mime_type, size_bytes, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, doc *Document) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO documents (id, user_id, title, description, file_name, stored_path, mime_type, size_bytes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, doc.ID, doc.UserID, doc.Title, doc.Description, doc.FileName, doc.StoredPath,
		doc.MimeType, doc.SizeBytes, doc.CreatedAt, doc.UpdatedAt)

	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM documents WHERE user_id = $1 ORDER BY created_at DESC
	`, docColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		if err := scanDocument(rows, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*Document, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM documents WHERE id = $1 AND user_id = $2 LIMIT 1
	`, docColumns), id, userID)

	var doc Document
	if err := scanDocument(row, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &doc, nil
}

func (r *PostgresRepository) UpdateMeta(ctx context.Context, id, userID, title, description string) (*Document, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE documents
		SET title = $3, description = $4, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, docColumns), id, userID, title, description)

	var doc Document
	if err := scanDocument(row, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return &doc, nil
}

// Delete removes the row and returns it so the caller can unlink the file on
// disk.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) (*Document, error) {
	row := r.db.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM documents WHERE id = $1 AND user_id = $2 RETURNING %s
	`, docColumns), id, userID)

	var doc Document
	if err := scanDocument(row, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return &doc, nil
}

func scanDocument(row pgx.Row, doc *Document) error {
	return row.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Description, &doc.FileName,
		&doc.StoredPath, &doc.MimeType, &doc.SizeBytes, &doc.CreatedAt, &doc.UpdatedAt)
}
