package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/ksuid"
	"github.com/whereroomsbegin/payments-api/domain"
	"github.com/whereroomsbegin/payments-api/internal/payments"
)

// validate is a singleton instance of the validator.
var validate = validator.New()

// The processor substitutes the real session id into the success URL
// after payment.
const sessionIDPlaceholder = "?session_id={CHECKOUT_SESSION_ID}"

// CreateCheckout converts the storefront cart into priced line items
// plus at most one consolidated coupon, and requests a hosted payment
// session from the processor.
func (api *API) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		returnError(w, domain.APIError{Error: "Method Not Allowed"}, http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.checkoutError(w, fmt.Errorf("invalid JSON body: %w", err))
		return
	}
	if err := validate.Struct(req); err != nil {
		api.checkoutError(w, err)
		return
	}

	slog.Info("creating checkout session", "email", req.Customer.Email)

	combined := domain.CombinedDiscount(req.Totals)

	// The processor accepts a single discount object per session, so
	// the multi-room and voucher amounts are combined into one coupon.
	var couponID string
	if combined > 0 {
		id, err := api.payments.CreateCoupon(ctx, domain.Pence(combined), domain.DiscountDescription(req.Totals, req.Voucher))
		if err != nil {
			api.checkoutError(w, err)
			return
		}
		couponID = id
	}

	reference := "WRB-" + ksuid.New().String()

	session, err := api.payments.CreateCheckoutSession(ctx, payments.SessionParams{
		LineItems:     buildLineItems(req),
		CouponID:      couponID,
		CustomerEmail: req.Customer.Email,
		Metadata:      sessionMetadata(req, combined, reference),
		SuccessURL:    req.SuccessURL + sessionIDPlaceholder,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		// A coupon created above is not deleted here; an orphaned
		// coupon is accepted over a partial-failure rollback.
		api.checkoutError(w, err)
		return
	}

	slog.Info("checkout session created", "session_id", session.ID, "reference", reference)

	writeJSON(w, http.StatusOK, domain.CheckoutResponse{
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	})
}

// sortedKeys mirrors slices.Sorted(maps.Keys(m)); those iterator
// helpers need Go 1.23 and this module builds on Go 1.21.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// buildLineItems prices every cart and addon entry. Rooms come first,
// each sorted by name so the session is deterministic.
func buildLineItems(req domain.CheckoutRequest) []payments.LineItemParams {
	items := make([]payments.LineItemParams, 0, len(req.Cart)+len(req.Addons))

	for _, name := range sortedKeys(req.Cart) {
		room := req.Cart[name]
		itemName := name
		if room.Quantity > 1 {
			itemName = fmt.Sprintf("%d x %s", room.Quantity, name)
		}
		items = append(items, payments.LineItemParams{
			Name:        itemName,
			Description: "Room Package",
			UnitAmount:  domain.Pence(room.TotalPrice),
		})
	}

	for _, name := range sortedKeys(req.Addons) {
		items = append(items, payments.LineItemParams{
			Name:        name,
			Description: "Addon",
			UnitAmount:  domain.Pence(req.Addons[name].Price),
		})
	}

	return items
}

// sessionMetadata flattens the order context onto the session. The
// processor only accepts string values, so amounts travel as decimal
// strings; the webhook handler reads them back for the emails.
func sessionMetadata(req domain.CheckoutRequest, combined float64, reference string) map[string]string {
	var voucherCode string
	if req.Voucher != nil {
		voucherCode = req.Voucher.Code
	}
	return map[string]string{
		"customer_name":       req.Customer.Name,
		"customer_phone":      req.Customer.Phone,
		"voucher_code":        voucherCode,
		"subtotal":            domain.DecimalString(req.Totals.SubtotalBeforeDiscount),
		"multi_room_discount": domain.DecimalString(req.Totals.Discount),
		"voucher_discount":    domain.DecimalString(req.Totals.VoucherDiscount),
		"total_discount":      domain.DecimalString(combined),
		"final_total":         domain.DecimalString(req.Totals.FinalTotal),
		"order_reference":     reference,
	}
}

func (api *API) checkoutError(w http.ResponseWriter, err error) {
	slog.Error("checkout session creation failed", "error", err)
	returnError(w, domain.APIError{
		Error:   err.Error(),
		Details: "Failed to create checkout session",
	}, http.StatusInternalServerError)
}
