package ports

import "context"

// MailSender relays a composed plain-text message to a list of recipients
// through an outbound mail transport.
type MailSender interface {
	Send(ctx context.Context, subject, body string, recipients []string) error
}
