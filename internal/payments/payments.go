// Package payments wraps the slice of the Stripe API this service
// touches: one-off coupons, hosted checkout sessions and the finalized
// line items of a completed session.
package payments

import "context"

// LineItemParams describes one priced entry shown to the payer.
type LineItemParams struct {
	// Name is what checkout displays ("Living Room", "2 x Bedroom").
	Name string
	// Description groups the item ("Room Package" or "Addon").
	Description string
	// UnitAmount is in minor currency units (pence).
	UnitAmount int64
}

// SessionParams assembles a hosted checkout session request.
type SessionParams struct {
	LineItems     []LineItemParams
	CouponID      string // empty when no discount applies
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// Session is the subset of the created session the caller needs.
type Session struct {
	ID  string
	URL string
}

// LineItem is one finalized item of a completed session.
type LineItem struct {
	Description string
	// AmountTotal is in minor currency units.
	AmountTotal int64
}

// Client is the processor surface used by the handlers. The production
// implementation talks to Stripe; tests swap in a fake.
type Client interface {
	// CreateCoupon creates a single-use, fixed-amount-off coupon and
	// returns its id.
	CreateCoupon(ctx context.Context, amountOff int64, name string) (string, error)
	// CreateCheckoutSession creates a hosted payment session.
	CreateCheckoutSession(ctx context.Context, params SessionParams) (Session, error)
	// SessionLineItems fetches the finalized line items of a session,
	// with product detail expanded.
	SessionLineItems(ctx context.Context, sessionID string) ([]LineItem, error)
}
