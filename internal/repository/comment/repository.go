package comment

import (
	"context"

	"aurora-store/internal/domain"
)

type CreateCommentInput struct {
	ProductID int64
	SessionID string
	Author    string
	Content   string
}

type Repository interface {
	ListByProduct(ctx context.Context, productID int64) ([]domain.Comment, error)
	Create(ctx context.Context, in CreateCommentInput) (*domain.Comment, error)
	// UpdateContent changes a comment's content only when sessionID matches
	// the owning session; a mismatch is a silent no-op.
	UpdateContent(ctx context.Context, id int64, sessionID, content string) error
	// Delete removes a comment only when sessionID matches the owning
	// session; a mismatch is a silent no-op.
	Delete(ctx context.Context, id int64, sessionID string) error
}
