package config

import (
	"os"
	"strings"
)

// Config holds everything the two handlers need from the environment.
// Operator emails and the From address are configuration rather than
// literals so deployments can vary them without code changes.
type Config struct {
	Port string

	StripeSecretKey     string
	StripeWebhookSecret string
	ResendAPIKey        string

	// FromAddress is the sender for both outbound emails.
	FromAddress string
	// OperatorEmails receive the internal new-order notification.
	OperatorEmails []string
}

// Load reads the process environment. Missing secrets are not validated
// here; the downstream calls fail with the provider's own error.
func Load() *Config {
	return &Config{
		Port:                or(os.Getenv("PORT"), "8080"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		FromAddress:         or(os.Getenv("EMAIL_FROM"), "Where Rooms Begin <hello@whereroomsbegin.com>"),
		OperatorEmails:      splitEmails(or(os.Getenv("OPERATOR_EMAILS"), "matt@autara.studio,hello@whereroomsbegin.com")),
	}
}

// or mirrors cmp.Or for strings; cmp.Or needs Go 1.22 and this module
// builds on Go 1.21.
func or(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func splitEmails(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
