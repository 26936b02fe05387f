// Package resend implements mailer.Sender using the Resend API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// Config holds Resend provider configuration.
type Config struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// Sender delivers email through the Resend HTTP API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if len(email.To) == 0 {
		return mailer.ErrNoRecipient
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", mailer.ErrTransport, err)
	}
	return nil
}
