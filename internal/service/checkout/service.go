package checkout

import (
	"context"
	"fmt"
	"io"
	"log"

	"aurora-store/internal/domain"
	"aurora-store/internal/notify"
	"aurora-store/internal/payment"
	orderrepo "aurora-store/internal/repository/order"
)

// Redirect paths returned when checkout does not hand off to the provider.
// PathCart is the storefront frontend's cart page; this API itself serves
// the cart state at /api/cart.
const (
	PathCart    = "/cart"
	PathSuccess = "/checkout/success"
)

type cartPricer interface {
	Price(ctx context.Context, sid string) ([]domain.CartLine, int64, error)
}

type orderStore interface {
	CreateWithItems(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	SetPaymentSession(ctx context.Context, orderID int64, sessionID string) error
}

// Initiator starts a checkout for a session's cart and returns the redirect
// target for the buyer's browser. Which implementation runs is decided once
// at startup from configuration.
type Initiator interface {
	Start(ctx context.Context, sid, email string) (string, error)
}

// HostedService is the configured-provider flow: persist a pending order,
// create the provider session, record the session id on the order, and send
// the buyer to the provider's hosted page.
type HostedService struct {
	carts      cartPricer
	orders     orderStore
	gateway    payment.Gateway
	currency   string
	successURL string
	cancelURL  string
	logger     *log.Logger
}

func NewHosted(carts cartPricer, orders orderStore, gateway payment.Gateway, currency, successURL, cancelURL string, logger *log.Logger) *HostedService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HostedService{
		carts:      carts,
		orders:     orders,
		gateway:    gateway,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

func (s *HostedService) Start(ctx context.Context, sid, email string) (string, error) {
	lines, total, err := s.carts.Price(ctx, sid)
	if err != nil {
		return "", fmt.Errorf("price cart: %w", err)
	}
	if len(lines) == 0 {
		// An empty cart never produces an order.
		return PathCart, nil
	}

	items := make([]orderrepo.CreateItem, 0, len(lines))
	sessionLines := make([]payment.SessionLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, orderrepo.CreateItem{
			ProductID:  line.Product.ID,
			Quantity:   line.Quantity,
			PriceCents: line.Product.PriceCents,
		})
		sessionLines = append(sessionLines, payment.SessionLine{
			Name:            line.Product.NameEN,
			UnitAmountCents: line.Product.PriceCents,
			Quantity:        line.Quantity,
		})
	}

	order, err := s.orders.CreateWithItems(ctx, orderrepo.CreateOrderInput{
		Email:      email,
		TotalCents: total,
		Currency:   s.currency,
		Items:      items,
	})
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	sess, err := s.gateway.CreateSession(ctx, payment.SessionInput{
		OrderID:    order.ID,
		Email:      email,
		Currency:   s.currency,
		Lines:      sessionLines,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		// The pending order stays behind with no payment session; that is a
		// legal terminal state, the buyer just retries checkout.
		return "", fmt.Errorf("create payment session: %w", err)
	}

	if err := s.orders.SetPaymentSession(ctx, order.ID, sess.ID); err != nil {
		return "", fmt.Errorf("record payment session: %w", err)
	}

	s.logger.Printf("checkout: order=%d total_cents=%d payment_session=%s", order.ID, total, sess.ID)
	return sess.URL, nil
}

// DirectService is the simulated flow used when no payment provider is
// configured: no order and no payment session are created, the buyer gets
// the confirmation notification and lands on the success page.
type DirectService struct {
	carts    cartPricer
	notifier notify.Notifier
	logger   *log.Logger
}

func NewDirect(carts cartPricer, notifier notify.Notifier, logger *log.Logger) *DirectService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &DirectService{carts: carts, notifier: notifier, logger: logger}
}

func (s *DirectService) Start(ctx context.Context, sid, email string) (string, error) {
	lines, _, err := s.carts.Price(ctx, sid)
	if err != nil {
		return "", fmt.Errorf("price cart: %w", err)
	}
	if len(lines) == 0 {
		return PathCart, nil
	}

	if email != "" {
		// Notification failure never blocks the checkout response.
		if err := s.notifier.SendPaymentConfirmation(email); err != nil {
			s.logger.Printf("checkout: confirmation email to %s failed: %v", email, err)
		}
	}
	return PathSuccess, nil
}
