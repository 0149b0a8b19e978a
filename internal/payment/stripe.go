package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeGateway creates Stripe hosted checkout sessions.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in SessionInput) (*Session, error) {
	params := sessionParams(in)
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func sessionParams(in SessionInput) *stripe.CheckoutSessionParams {
	// Stripe expects lowercase ISO currency codes.
	currency := strings.ToLower(in.Currency)

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.Lines))
	for _, line := range in.Lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
				UnitAmount: stripe.Int64(line.UnitAmountCents),
			},
			Quantity: stripe.Int64(int64(line.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	if in.Email != "" {
		params.CustomerEmail = stripe.String(in.Email)
	}
	return params
}

// StripeVerifier checks webhook payloads against the shared signing secret.
type StripeVerifier struct {
	secret string
}

func NewStripeVerifier(secret string) *StripeVerifier {
	return &StripeVerifier{secret: secret}
}

func (v *StripeVerifier) Verify(payload []byte, signature string) (Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return Event{}, err
	}

	out := Event{Type: string(event.Type)}
	if id, ok := event.Data.Object["id"].(string); ok {
		out.SessionID = id
	}
	return out, nil
}
