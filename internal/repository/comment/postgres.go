package comment

import (
	"context"
	"io"
	"log"

	"aurora-store/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Comment, error) {
	const q = `
SELECT id, product_id, session_id, author, content, created_at
FROM comments
WHERE product_id = $1
ORDER BY id DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		r.logger.Printf("comment repo: list product_id=%d error=%v", productID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ProductID, &c.SessionID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateCommentInput) (*domain.Comment, error) {
	c := domain.Comment{
		ProductID: in.ProductID,
		SessionID: in.SessionID,
		Author:    in.Author,
		Content:   in.Content,
	}
	err := r.pool.QueryRow(ctx, `
INSERT INTO comments (product_id, session_id, author, content)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`, in.ProductID, in.SessionID, in.Author, in.Content).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.logger.Printf("comment repo: create product_id=%d error=%v", in.ProductID, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) UpdateContent(ctx context.Context, id int64, sessionID, content string) error {
	// Ownership is part of the predicate; zero rows affected means either
	// the comment does not exist or the caller does not own it, and neither
	// is surfaced.
	_, err := r.pool.Exec(ctx, `
UPDATE comments
SET content = $1
WHERE id = $2 AND session_id = $3
`, content, id, sessionID)
	if err != nil {
		r.logger.Printf("comment repo: update id=%d error=%v", id, err)
	}
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id int64, sessionID string) error {
	_, err := r.pool.Exec(ctx, `
DELETE FROM comments
WHERE id = $1 AND session_id = $2
`, id, sessionID)
	if err != nil {
		r.logger.Printf("comment repo: delete id=%d error=%v", id, err)
	}
	return err
}
