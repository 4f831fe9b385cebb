// Package email renders and dispatches the order confirmation emails.
package email

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer sends a rendered message. Tests swap in a fake.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// ResendMailer implements Mailer against the Resend API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (rm *ResendMailer) Send(ctx context.Context, m Message) error {
	_, err := rm.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.From,
		To:      m.To,
		Subject: m.Subject,
		Html:    m.HTML,
	})
	return err
}
