// Package handlers implements the two HTTP entry points of the payments
// API: checkout session creation and the Stripe payment webhook.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/whereroomsbegin/payments-api/config"
	"github.com/whereroomsbegin/payments-api/domain"
	"github.com/whereroomsbegin/payments-api/internal/email"
	"github.com/whereroomsbegin/payments-api/internal/payments"
)

type API struct {
	cfg      *config.Config
	payments payments.Client
	mailer   email.Mailer
}

func NewAPI(cfg *config.Config, pc payments.Client, mailer email.Mailer) *API {
	return &API{
		cfg:      cfg,
		payments: pc,
		mailer:   mailer,
	}
}

func returnError(w http.ResponseWriter, apiErr domain.APIError, status int) {
	writeJSON(w, status, apiErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
