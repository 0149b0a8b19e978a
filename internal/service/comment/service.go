package comment

import (
	"context"
	"errors"
	"strings"

	"aurora-store/internal/domain"
	commentrepo "aurora-store/internal/repository/comment"
)

const (
	maxAuthorLen  = 60
	maxContentLen = 800
)

type Service struct {
	repo commentrepo.Repository
}

func New(repo commentrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByProduct(ctx context.Context, productID int64) ([]domain.Comment, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// Create stores a comment for the calling session. Author and content are
// required; both are trimmed and truncated to their column limits.
func (s *Service) Create(ctx context.Context, productID int64, sessionID, author, content string) (*domain.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return nil, errors.New("author and content required")
	}
	return s.repo.Create(ctx, commentrepo.CreateCommentInput{
		ProductID: productID,
		SessionID: sessionID,
		Author:    truncate(author, maxAuthorLen),
		Content:   truncate(content, maxContentLen),
	})
}

// Edit updates the comment content. A caller that does not own the comment
// changes nothing; that outcome is not distinguishable from success, so the
// authorization boundary never leaks whether the target existed.
func (s *Service) Edit(ctx context.Context, id int64, sessionID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	return s.repo.UpdateContent(ctx, id, sessionID, truncate(content, maxContentLen))
}

// Delete removes the comment when the caller owns it, silently doing
// nothing otherwise.
func (s *Service) Delete(ctx context.Context, id int64, sessionID string) error {
	return s.repo.Delete(ctx, id, sessionID)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
