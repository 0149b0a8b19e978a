package order

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

func (r *postgresRepo) CreateWithItems(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("order requires at least one item")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order := domain.Order{
		Email:      in.Email,
		TotalCents: in.TotalCents,
		Currency:   in.Currency,
		Status:     domain.OrderStatusPending,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (email, total_cents, currency, status)
VALUES (NULLIF($1, ''), $2, $3, $4)
RETURNING id, created_at
`, in.Email, in.TotalCents, in.Currency, domain.OrderStatusPending).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return nil, err
	}

	for _, item := range in.Items {
		var line domain.OrderItem
		err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`, order.ID, item.ProductID, item.Quantity, item.PriceCents).Scan(&line.ID)
		if err != nil {
			r.logger.Printf("order repo: create item order_id=%d product_id=%d error=%v", order.ID, item.ProductID, err)
			return nil, err
		}
		line.OrderID = order.ID
		line.ProductID = item.ProductID
		line.Quantity = item.Quantity
		line.PriceCents = item.PriceCents
		order.Items = append(order.Items, line)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d total_cents=%d items=%d", order.ID, order.TotalCents, len(order.Items))
	return &order, nil
}

func (r *postgresRepo) SetPaymentSession(ctx context.Context, orderID int64, sessionID string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET payment_session_id = $1
WHERE id = $2
`, sessionID, orderID)
	if err != nil {
		r.logger.Printf("order repo: set payment session id=%d error=%v", orderID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) MarkPaidByPaymentSession(ctx context.Context, sessionID string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1
WHERE payment_session_id = $2
`, domain.OrderStatusPaid, sessionID)
	if err != nil {
		r.logger.Printf("order repo: mark paid session=%s error=%v", sessionID, err)
		return err
	}
	r.logger.Printf("order repo: mark paid session=%s rows=%d", sessionID, cmd.RowsAffected())
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id, COALESCE(email, ''), total_cents, currency, status, payment_session_id, created_at
FROM orders
WHERE id = $1
`, id).Scan(
		&order.ID,
		&order.Email,
		&order.TotalCents,
		&order.Currency,
		&order.Status,
		&order.PaymentSessionID,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, order_id, product_id, quantity, price_cents
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCents); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}
