package document

import (
	"context"
	"time"
)

type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName"`
	StoredPath  string    `json:"-"`
	MimeType    string    `json:"mimeType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository queries are always scoped by user id; ownership is enforced in
// SQL, not in the handler.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	GetByID(ctx context.Context, id, userID string) (*Document, error)
	UpdateMeta(ctx context.Context, id, userID, title, description string) (*Document, error)
	Delete(ctx context.Context, id, userID string) (*Document, error)
}
