package payments

import (
	"context"

	"github.com/stripe/stripe-go/v72"
	checkout "github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/coupon"
)

// StripeClient implements Client against the official Stripe SDK.
type StripeClient struct{}

var _ Client = (*StripeClient)(nil)

// NewStripeClient sets the global Stripe key and returns a client.
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (sc *StripeClient) CreateCoupon(ctx context.Context, amountOff int64, name string) (string, error) {
	params := &stripe.CouponParams{
		AmountOff: stripe.Int64(amountOff),
		Currency:  stripe.String(string(stripe.CurrencyGBP)),
		Duration:  stripe.String(string(stripe.CouponDurationOnce)),
		Name:      stripe.String(name),
	}
	params.Context = ctx

	c, err := coupon.New(params)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (sc *StripeClient) CreateCheckoutSession(ctx context.Context, p SessionParams) (Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyGBP)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(li.Name),
					Description: stripe.String(li.Description),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			// The quantity multiplier is baked into the price, so the
			// Stripe quantity is always one.
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(p.CustomerEmail),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if p.CouponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(p.CouponID)},
		}
	}

	s, err := checkout.New(params)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

func (sc *StripeClient) SessionLineItems(ctx context.Context, sessionID string) ([]LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{}
	params.Context = ctx
	params.AddExpand("data.price.product")

	var items []LineItem
	iter := checkout.ListLineItems(sessionID, params)
	for iter.Next() {
		li := iter.LineItem()
		items = append(items, LineItem{
			Description: li.Description,
			AmountTotal: li.AmountTotal,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
