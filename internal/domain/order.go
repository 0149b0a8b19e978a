package domain

import "time"

// Order status values. Paid is terminal; an order that never receives a
// provider callback stays pending indefinitely.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

type Order struct {
	ID               int64       `json:"id"`
	Email            string      `json:"email,omitempty"`
	TotalCents       int64       `json:"totalCents"`
	Currency         string      `json:"currency"`
	Status           string      `json:"status"`
	PaymentSessionID *string     `json:"-"`
	CreatedAt        time.Time   `json:"createdAt"`
	Items            []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the unit price at purchase time. Later catalog price
// changes never alter a placed order's recorded total.
type OrderItem struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"orderId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"priceCents"`
}
