package domain

// RoomSelection is one cart entry: a room package with the quantity the
// customer picked and the already-priced total for that quantity.
type RoomSelection struct {
	Quantity   int     `json:"quantity" validate:"min=1"`
	TotalPrice float64 `json:"totalPrice"`
}

// AddonSelection is one optional extra picked alongside the rooms.
type AddonSelection struct {
	Price float64 `json:"price"`
}

// Totals carries the storefront's own price breakdown. The invariant
// FinalTotal == SubtotalBeforeDiscount - Discount - VoucherDiscount is
// trusted from the caller, not enforced here.
type Totals struct {
	SubtotalBeforeDiscount float64 `json:"subtotalBeforeDiscount"`
	Discount               float64 `json:"discount"`
	VoucherDiscount        float64 `json:"voucherDiscount"`
	FinalTotal             float64 `json:"finalTotal"`
}

type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Voucher is the discount code the customer applied, if any. Amount is
// a percentage, kept only for display in the coupon description.
type Voucher struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// CheckoutRequest is the body posted by the storefront to create a
// hosted payment session.
type CheckoutRequest struct {
	Cart       map[string]RoomSelection  `json:"cart" validate:"required,min=1,dive"`
	Addons     map[string]AddonSelection `json:"addons"`
	Totals     Totals                    `json:"totals"`
	Customer   Customer                  `json:"customer"`
	Voucher    *Voucher                  `json:"voucher,omitempty"`
	SuccessURL string                    `json:"successUrl" validate:"required,url,startswith=http"`
	CancelURL  string                    `json:"cancelUrl" validate:"required,url,startswith=http"`
}

// CheckoutResponse is returned once the processor session exists.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	SessionID   string `json:"sessionId"`
}

// APIError is the JSON error body for every failed request.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
