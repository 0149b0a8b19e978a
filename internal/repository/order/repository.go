package order

import (
	"context"

	"aurora-store/internal/domain"
)

type CreateItem struct {
	ProductID  int64
	Quantity   int
	PriceCents int64
}

type CreateOrderInput struct {
	Email      string
	TotalCents int64
	Currency   string
	Items      []CreateItem
}

type Repository interface {
	// CreateWithItems persists the order and all its items atomically.
	CreateWithItems(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	// SetPaymentSession records the external payment session id on the order.
	SetPaymentSession(ctx context.Context, orderID int64, sessionID string) error
	// MarkPaidByPaymentSession transitions the matching order to paid.
	// Unknown session ids and already-paid orders are no-ops.
	MarkPaidByPaymentSession(ctx context.Context, sessionID string) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
