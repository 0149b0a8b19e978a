package reconcile

import (
	"context"
	"fmt"
	"io"
	"log"

	"aurora-store/internal/payment"
)

type orderStore interface {
	MarkPaidByPaymentSession(ctx context.Context, sessionID string) error
}

// Service consumes authenticated provider callbacks and advances the
// matching order. It is the only component allowed to change an order's
// status after creation.
type Service struct {
	verifier payment.CallbackVerifier
	orders   orderStore
	logger   *log.Logger
}

func New(verifier payment.CallbackVerifier, orders orderStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{verifier: verifier, orders: orders, logger: logger}
}

// HandleCallback verifies the raw payload before any lookup. Unverified
// payloads are rejected with no side effect. A verified event of any kind
// other than checkout completion is a no-op, as is a completed event whose
// session id matches no order. Replays re-assert the same terminal status.
func (s *Service) HandleCallback(ctx context.Context, payload []byte, signature string) error {
	event, err := s.verifier.Verify(payload, signature)
	if err != nil {
		return fmt.Errorf("verify callback: %w", err)
	}

	if event.Type != payment.EventCheckoutCompleted {
		return nil
	}

	if err := s.orders.MarkPaidByPaymentSession(ctx, event.SessionID); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	s.logger.Printf("reconcile: payment session %s completed", event.SessionID)
	return nil
}
