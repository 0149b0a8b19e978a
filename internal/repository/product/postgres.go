package product

import (
	"context"
	"errors"
	"io"
	"log"

	"aurora-store/internal/domain"
	"github.com/jackc/pgx/v5"
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

const productColumns = `id, sku, name_en, name_ar, price_cents, image,
COALESCE(category_en, ''), COALESCE(category_ar, ''),
COALESCE(badge_en, ''), COALESCE(badge_ar, ''),
COALESCE(description_en, ''), COALESCE(description_ar, '')`

// List returns all products in seed order (ascending id).
func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or updates a product by SKU. Used by seed and import only.
func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (
    sku, name_en, name_ar, price_cents, image,
    category_en, category_ar, badge_en, badge_ar,
    description_en, description_ar
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (sku) DO UPDATE SET
    name_en = EXCLUDED.name_en,
    name_ar = EXCLUDED.name_ar,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image,
    category_en = EXCLUDED.category_en,
    category_ar = EXCLUDED.category_ar,
    badge_en = EXCLUDED.badge_en,
    badge_ar = EXCLUDED.badge_ar,
    description_en = EXCLUDED.description_en,
    description_ar = EXCLUDED.description_ar
RETURNING id
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.SKU,
		product.NameEN,
		product.NameAR,
		product.PriceCents,
		product.Image,
		product.CategoryEN,
		product.CategoryAR,
		product.BadgeEN,
		product.BadgeAR,
		product.DescriptionEN,
		product.DescriptionAR,
	).Scan(&res.ID)
	if err != nil {
		r.logger.Printf("product repo: upsert sku=%s error=%v", product.SKU, err)
		return nil, err
	}
	return &res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.SKU,
		&p.NameEN,
		&p.NameAR,
		&p.PriceCents,
		&p.Image,
		&p.CategoryEN,
		&p.CategoryAR,
		&p.BadgeEN,
		&p.BadgeAR,
		&p.DescriptionEN,
		&p.DescriptionAR,
	)
	return p, err
}
