package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/quietpage/quietpage/internal/contact/ports"
)

// Config carries the SMTP transport settings. The sender address doubles as
// the authentication username.
type Config struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// SMTPSender relays messages over an authenticated STARTTLS connection.
type SMTPSender struct {
	client *gomail.Client
	sender string
}

// NewSMTPSender builds the SMTP client. The connection itself is only
// opened per send.
func NewSMTPSender(config Config) (*SMTPSender, error) {
	client, err := gomail.NewClient(config.Host,
		gomail.WithPort(config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(config.Sender),
		gomail.WithPassword(config.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("SMTPSender: create client: %w", err)
	}

	return &SMTPSender{client: client, sender: config.Sender}, nil
}

// Send composes a plain-text message and delivers it in one dial. Any
// connection or authentication failure is returned as-is; the caller
// decides what to surface.
func (s *SMTPSender) Send(ctx context.Context, subject, body string, recipients []string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.sender); err != nil {
		return fmt.Errorf("SMTPSender: set sender: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("SMTPSender: set recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("SMTPSender: send: %w", err)
	}

	return nil
}

var _ ports.MailSender = (*SMTPSender)(nil)
