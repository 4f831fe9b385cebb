package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
	"github.com/whereroomsbegin/payments-api/domain"
	"github.com/whereroomsbegin/payments-api/internal/email"
	"github.com/whereroomsbegin/payments-api/internal/payments"
)

const eventCheckoutCompleted = "checkout.session.completed"

type webhookAck struct {
	Received bool `json:"received"`
}

// StripeWebhook receives the asynchronous payment notification. The
// signature is verified before any content is trusted; only completed
// checkout sessions trigger the email pipeline, and email failures
// never turn into a non-200 so the processor does not redeliver for a
// mail-provider hiccup.
func (api *API) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		returnError(w, domain.APIError{Error: "failed to read request body"}, http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEvent(body, r.Header.Get("Stripe-Signature"), api.cfg.StripeWebhookSecret)
	if err != nil {
		slog.Error("webhook signature verification failed", "error", err)
		returnError(w, domain.APIError{Error: "Webhook signature verification failed"}, http.StatusBadRequest)
		return
	}

	if event.Type != eventCheckoutCompleted {
		writeJSON(w, http.StatusOK, webhookAck{Received: true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		returnError(w, domain.APIError{Error: "invalid event payload"}, http.StatusBadRequest)
		return
	}
	// The SDK does not bind the session's created timestamp, so it is
	// decoded from the payload directly.
	var stamp struct {
		Created int64 `json:"created"`
	}
	if err := json.Unmarshal(event.Data.Raw, &stamp); err != nil {
		returnError(w, domain.APIError{Error: "invalid event payload"}, http.StatusBadRequest)
		return
	}

	slog.Info("payment successful", "session_id", session.ID, "email", session.CustomerEmail)

	// The event payload does not carry expanded product detail, so the
	// finalized line items are re-fetched from the processor.
	items, err := api.payments.SessionLineItems(r.Context(), session.ID)
	if err != nil {
		slog.Error("failed to fetch session line items", "error", err, "session_id", session.ID)
		returnError(w, domain.APIError{
			Error:   err.Error(),
			Details: "Failed to fetch session line items",
		}, http.StatusInternalServerError)
		return
	}

	api.sendOrderEmails(r.Context(), buildOrder(&session, stamp.Created, items))

	writeJSON(w, http.StatusOK, webhookAck{Received: true})
}

// buildOrder assembles the transient email view of the completed
// session: line items bucketed for display and the discount breakdown
// read back out of the session metadata.
func buildOrder(session *stripe.CheckoutSession, created int64, items []payments.LineItem) email.Order {
	order := email.Order{
		SessionID:         session.ID,
		Reference:         session.Metadata["order_reference"],
		CustomerName:      session.Metadata["customer_name"],
		CustomerEmail:     session.CustomerEmail,
		CustomerPhone:     session.Metadata["customer_phone"],
		VoucherCode:       session.Metadata["voucher_code"],
		AmountTotalPence:  session.AmountTotal,
		Subtotal:          domain.ParseDecimal(session.Metadata["subtotal"]),
		MultiRoomDiscount: domain.ParseDecimal(session.Metadata["multi_room_discount"]),
		VoucherDiscount:   domain.ParseDecimal(session.Metadata["voucher_discount"]),
		TotalDiscount:     domain.ParseDecimal(session.Metadata["total_discount"]),
		CreatedAt:         time.Unix(created, 0).UTC(),
	}
	if session.PaymentIntent != nil {
		order.PaymentIntentID = session.PaymentIntent.ID
	}

	for _, li := range items {
		item := email.Item{Description: li.Description, AmountPence: li.AmountTotal}
		switch domain.Classify(li.Description) {
		case domain.CategoryAddon:
			order.Addons = append(order.Addons, item)
		default:
			order.Rooms = append(order.Rooms, item)
		}
	}

	return order
}

var (
	renderCustomer = email.RenderCustomer
	renderOps      = email.RenderOps
)

// sendOrderEmails dispatches the receipt and then the ops notification.
// Failures are logged and swallowed; a failed customer send also skips
// the ops send, but a customer render failure still notifies ops.
func (api *API) sendOrderEmails(ctx context.Context, order email.Order) {
	if html, err := renderCustomer(order); err != nil {
		slog.Error("failed to render confirmation email", "error", err)
	} else if err := api.mailer.Send(ctx, email.Message{
		From:    api.cfg.FromAddress,
		To:      []string{order.CustomerEmail},
		Subject: email.CustomerSubject,
		HTML:    html,
	}); err != nil {
		slog.Error("failed to send confirmation email", "error", err, "to", order.CustomerEmail)
		return
	} else {
		slog.Info("confirmation email sent", "to", order.CustomerEmail)
	}

	opsHTML, err := renderOps(order)
	if err != nil {
		slog.Error("failed to render ops notification", "error", err)
		return
	}
	if err := api.mailer.Send(ctx, email.Message{
		From:    api.cfg.FromAddress,
		To:      api.cfg.OperatorEmails,
		Subject: email.OpsSubject(order),
		HTML:    opsHTML,
	}); err != nil {
		slog.Error("failed to send ops notification", "error", err)
		return
	}
	slog.Info("ops notification sent", "to", api.cfg.OperatorEmails)
}
