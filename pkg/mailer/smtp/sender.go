// Package smtp implements mailer.Sender over a classic SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"strings"

	mail "github.com/go-mail/mail/v2"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// Config holds the relay settings.
type Config struct {
	Host        string
	Port        int
	SenderName  string
	SenderEmail string
	Password    string
	// UseSSL selects implicit TLS on connect; otherwise the connection is
	// upgraded with mandatory STARTTLS.
	UseSSL bool
}

// Sender delivers email through an SMTP relay using go-mail.
type Sender struct {
	dialer *mail.Dialer
	config Config
}

// New creates an SMTP sender. The sender address doubles as the login name,
// which is what consumer relays (QQ, 163, Gmail app passwords) expect.
func New(cfg Config) *Sender {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.SenderEmail, cfg.Password)
	d.SSL = cfg.UseSSL
	if !cfg.UseSSL {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}
	return &Sender{dialer: d, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return mailer.ErrNoRecipient
	}

	if err := s.dialer.DialAndSend(s.compose(email)); err != nil {
		return classify(err)
	}
	return nil
}

// SelfTest verifies the configuration end to end: it connects to the relay,
// authenticates, and sends a test message to the sender's own address.
func (s *Sender) SelfTest(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sc, err := s.dialer.Dial()
	if err != nil {
		return classify(err)
	}
	defer sc.Close()

	m := s.compose(&mailer.Email{
		To:      []string{s.config.SenderEmail},
		Subject: "Mail merge configuration test",
		HTML:    "<p>This is a test message confirming your mail settings work.</p>",
	})
	if err := mail.Send(sc, m); err != nil {
		return classify(err)
	}
	return nil
}

func (s *Sender) compose(email *mailer.Email) *mail.Message {
	m := mail.NewMessage()

	from := email.From
	if from == "" {
		from = m.FormatAddress(s.config.SenderEmail, s.config.SenderName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}
	return m
}

// classify maps relay failures onto the mailer error taxonomy. SMTP reports
// bad credentials with a 535 reply (or 534 for some providers).
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "535") || strings.Contains(msg, "534") ||
		strings.Contains(msg, "auth") || strings.Contains(msg, "username and password not accepted") {
		return fmt.Errorf("%w: %v", mailer.ErrAuthentication, err)
	}
	return fmt.Errorf("%w: %v", mailer.ErrTransport, err)
}
