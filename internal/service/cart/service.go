package cart

import (
	"context"
	"errors"
	"strconv"

	"aurora-store/internal/domain"
	"aurora-store/internal/session"
)

type productGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Service mutates and prices per-session carts. A cart is a product-id to
// quantity mapping stored under the caller's session identity; products are
// only resolved against the catalog at pricing time.
type Service struct {
	store    *session.Store
	products productGetter
}

func New(store *session.Store, products productGetter) *Service {
	return &Service{store: store, products: products}
}

// Add puts qty of a product into the session's cart and returns the new
// total item count. Quantities below 1 are clamped to 1; adding a product
// already in the cart sums quantities. The product id is not checked against
// the catalog here.
func (s *Service) Add(sid, productID string, qty int) int {
	if qty < 1 {
		qty = 1
	}
	return s.store.AddItem(sid, productID, qty)
}

// Remove drops a product from the session's cart. Removing an absent
// product is a no-op.
func (s *Service) Remove(sid, productID string) int {
	return s.store.RemoveItem(sid, productID)
}

// Clear empties the session's cart.
func (s *Service) Clear(sid string) {
	s.store.ClearCart(sid)
}

// Count returns the sum of all quantities in the session's cart.
func (s *Service) Count(sid string) int {
	return s.store.Count(sid)
}

// Price joins the session's cart against the catalog. Entries whose product
// id does not resolve are skipped entirely: they contribute neither a line
// nor to the total, so a removed product never blocks checkout of the rest.
func (s *Service) Price(ctx context.Context, sid string) ([]domain.CartLine, int64, error) {
	var (
		lines []domain.CartLine
		total int64
	)
	for _, entry := range s.store.Cart(sid) {
		id, err := strconv.ParseInt(entry.ProductID, 10, 64)
		if err != nil {
			continue
		}
		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		lineTotal := product.PriceCents * int64(entry.Quantity)
		total += lineTotal
		lines = append(lines, domain.CartLine{
			Product:    *product,
			Quantity:   entry.Quantity,
			TotalCents: lineTotal,
		})
	}
	return lines, total, nil
}
