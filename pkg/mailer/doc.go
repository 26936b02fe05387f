// Package mailer defines the transport seam of the mail-merge pipeline: a
// minimal Sender interface plus the Email message type providers consume.
//
// Two providers ship with the module:
//
//   - smtp: classic mail relay via go-mail, implicit TLS or STARTTLS,
//     with a connectivity self-test (connect, authenticate, send-to-self).
//   - resend: the Resend HTTP API, for senders without an SMTP relay.
//
// The dispatch controller only sees the Sender interface; swapping providers
// never touches the pipeline.
package mailer
