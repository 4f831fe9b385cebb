package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/whereroomsbegin/payments-api/internal/email"
	"github.com/whereroomsbegin/payments-api/internal/payments"
)

// stripeSignature builds a valid t=...,v1=... signature header for the
// payload, the same scheme the processor signs deliveries with.
func stripeSignature(payload []byte, secret string) string {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + string(payload)))
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func completedSessionEvent() []byte {
	return []byte(`{
		"id": "evt_test_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_123",
				"object": "checkout.session",
				"amount_total": 42500,
				"customer_email": "ada@example.com",
				"created": 1770000000,
				"payment_intent": "pi_test_1",
				"metadata": {
					"customer_name": "Ada",
					"customer_phone": "07700900000",
					"voucher_code": "",
					"subtotal": "500",
					"multi_room_discount": "75",
					"voucher_discount": "0",
					"total_discount": "75",
					"final_total": "425",
					"order_reference": "WRB-test"
				}
			}
		}
	}`)
}

func postWebhook(api *API, payload []byte, signature string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader(payload))
	if signature != "" {
		r.Header.Set("Stripe-Signature", signature)
	}
	rr := httptest.NewRecorder()
	api.StripeWebhook(rr, r)
	return rr
}

func TestWebhookBadSignature(t *testing.T) {
	fp := &fakePayments{}
	fm := &fakeMailer{}
	api := newTestAPI(fp, fm)

	payload := completedSessionEvent()
	rr := postWebhook(api, payload, stripeSignature(payload, "whsec_wrong_secret"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if len(fp.lineItemCalls) != 0 {
		t.Fatalf("line items fetched despite bad signature")
	}
	if len(fm.sent) != 0 {
		t.Fatalf("emails sent despite bad signature")
	}
}

func TestWebhookMissingSignature(t *testing.T) {
	api := newTestAPI(&fakePayments{}, &fakeMailer{})

	rr := postWebhook(api, completedSessionEvent(), "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing signature, got %d", rr.Code)
	}
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	fp := &fakePayments{}
	fm := &fakeMailer{}
	api := newTestAPI(fp, fm)

	payload := []byte(`{"id":"evt_test_2","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_test_2","object":"payment_intent"}}}`)
	rr := postWebhook(api, payload, stripeSignature(payload, testWebhookSecret))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var ack webhookAck
	if err := json.NewDecoder(rr.Body).Decode(&ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if !ack.Received {
		t.Fatalf("expected received ack")
	}
	if len(fp.lineItemCalls) != 0 {
		t.Fatalf("line items fetched for an ignored event type")
	}
	if len(fm.sent) != 0 {
		t.Fatalf("emails sent for an ignored event type")
	}
}

func TestWebhookCompletedSession(t *testing.T) {
	fp := &fakePayments{
		lineItems: []payments.LineItem{
			{Description: "Living Room", AmountTotal: 50000},
			{Description: "Concept Sketch", AmountTotal: 2500},
		},
	}
	fm := &fakeMailer{}
	api := newTestAPI(fp, fm)

	payload := completedSessionEvent()
	rr := postWebhook(api, payload, stripeSignature(payload, testWebhookSecret))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(fp.lineItemCalls) != 1 || fp.lineItemCalls[0] != "cs_test_123" {
		t.Fatalf("line item calls = %v", fp.lineItemCalls)
	}
	if len(fm.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(fm.sent))
	}

	customer := fm.sent[0]
	if len(customer.To) != 1 || customer.To[0] != "ada@example.com" {
		t.Fatalf("customer email to = %v", customer.To)
	}
	if customer.Subject != "Booking Confirmation" {
		t.Fatalf("customer subject = %q", customer.Subject)
	}
	for _, want := range []string{"Hi Ada,", "Living Room", "Add-ons", "Concept Sketch", "Total savings", "£425.00"} {
		if !strings.Contains(customer.HTML, want) {
			t.Fatalf("customer email missing %q", want)
		}
	}

	ops := fm.sent[1]
	if len(ops.To) != 2 || ops.To[0] != "ops@example.com" {
		t.Fatalf("ops email to = %v", ops.To)
	}
	if ops.Subject != "New Order from Ada - £425.00" {
		t.Fatalf("ops subject = %q", ops.Subject)
	}
	for _, want := range []string{
		"New Order Received",
		"https://dashboard.stripe.com/test/payments/pi_test_1",
		"WRB-test",
		"02 Feb 2026, 02:40",
		`href="mailto:ada@example.com"`,
		"Concept Sketch",
	} {
		if !strings.Contains(ops.HTML, want) {
			t.Fatalf("ops email missing %q", want)
		}
	}
}

func TestWebhookCustomerRenderFailureStillNotifiesOps(t *testing.T) {
	orig := renderCustomer
	renderCustomer = func(email.Order) (string, error) {
		return "", errors.New("template: boom")
	}
	t.Cleanup(func() { renderCustomer = orig })

	fp := &fakePayments{
		lineItems: []payments.LineItem{{Description: "Living Room", AmountTotal: 50000}},
	}
	fm := &fakeMailer{}
	api := newTestAPI(fp, fm)

	payload := completedSessionEvent()
	rr := postWebhook(api, payload, stripeSignature(payload, testWebhookSecret))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 despite render failure, got %d", rr.Code)
	}
	if len(fm.sent) != 1 {
		t.Fatalf("expected only the ops email, got %d", len(fm.sent))
	}
	if got := fm.sent[0]; len(got.To) != 2 || got.To[0] != "ops@example.com" {
		t.Fatalf("ops email to = %v", got.To)
	}
}

func TestWebhookEmailFailureStillAcknowledged(t *testing.T) {
	fp := &fakePayments{
		lineItems: []payments.LineItem{{Description: "Living Room", AmountTotal: 50000}},
	}
	fm := &fakeMailer{err: errors.New("resend: rate limited")}
	api := newTestAPI(fp, fm)

	payload := completedSessionEvent()
	rr := postWebhook(api, payload, stripeSignature(payload, testWebhookSecret))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 despite email failure, got %d", rr.Code)
	}
	var ack webhookAck
	if err := json.NewDecoder(rr.Body).Decode(&ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if !ack.Received {
		t.Fatalf("expected received ack despite email failure")
	}
}

func TestWebhookLineItemFetchFailure(t *testing.T) {
	fp := &fakePayments{lineItemsErr: errors.New("stripe: unavailable")}
	fm := &fakeMailer{}
	api := newTestAPI(fp, fm)

	payload := completedSessionEvent()
	rr := postWebhook(api, payload, stripeSignature(payload, testWebhookSecret))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on line item fetch failure, got %d", rr.Code)
	}
	if len(fm.sent) != 0 {
		t.Fatalf("emails sent despite fetch failure")
	}
}
