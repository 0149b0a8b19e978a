package payment

import "context"

// EventCheckoutCompleted is the only callback event kind that advances an
// order; everything else is ignored.
const EventCheckoutCompleted = "checkout.session.completed"

type SessionLine struct {
	Name            string
	UnitAmountCents int64
	Quantity        int
}

type SessionInput struct {
	OrderID    int64
	Email      string
	Currency   string
	Lines      []SessionLine
	SuccessURL string
	CancelURL  string
}

// Session is a hosted payment session created by the external provider.
type Session struct {
	ID  string
	URL string
}

// Gateway creates hosted payment sessions with an external provider. It is
// called only after the order has been durably persisted.
type Gateway interface {
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
}

// Event is a verified provider callback.
type Event struct {
	Type      string
	SessionID string
}

// CallbackVerifier authenticates a raw provider callback before any state
// is touched. An invalid signature returns an error and no Event.
type CallbackVerifier interface {
	Verify(payload []byte, signature string) (Event, error)
}
