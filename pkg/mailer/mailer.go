package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient indicates no recipient address was set.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrAuthentication indicates the relay rejected the credentials.
	ErrAuthentication = errors.New("mail server authentication failed")

	// ErrTransport indicates a protocol or network failure during send.
	ErrTransport = errors.New("failed to deliver email")
)

// Sender is the minimal interface email providers implement.
type Sender interface {
	// Send delivers one email. The Email must have To, Subject, and HTML set.
	Send(ctx context.Context, email *Email) error
}

// Email is a fully-prepared message ready for sending.
type Email struct {
	From    string   // overrides the provider's configured sender when set
	ReplyTo string   // optional reply-to address
	To      []string // at least one required
	Subject string
	HTML    string
	Text    string // optional plain-text alternative
}

// Recipient formats a display name and address into RFC 5322 form.
// Returns just the address when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
