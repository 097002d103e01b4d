package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/quietpage/quietpage/internal/contact/domain"
	"github.com/quietpage/quietpage/internal/contact/ports"
	"github.com/quietpage/quietpage/internal/platform/apperror"
	"github.com/quietpage/quietpage/internal/platform/eventbus"
	"github.com/quietpage/quietpage/internal/platform/events"
	"github.com/quietpage/quietpage/internal/platform/logger"
)

// Error definitions for notifier operations
var (
	ErrInvalidContactData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidContactData,
		"invalid contact message",
		http.StatusBadRequest,
	)

	ErrNotificationFailed = apperror.New(
		apperror.CodeUnavailable,
		apperror.BusinessCodeNotificationFailed,
		"failed to relay contact message",
		http.StatusServiceUnavailable,
	)
)

// Config carries the notifier's delivery settings.
type Config struct {
	// Recipients is the list of addresses every contact message is sent to.
	Recipients []string

	// DeveloperName is the blog operator's display name, used in the
	// message body greeting.
	DeveloperName string
}

// NotifierService formats contact messages and relays them by email.
type NotifierService struct {
	sender   ports.MailSender
	config   Config
	eventBus *eventbus.Bus
	logger   logger.Logger
}

// NewNotifierService creates a new contact notifier.
func NewNotifierService(
	sender ports.MailSender,
	config Config,
	eventBus *eventbus.Bus,
	logger logger.Logger,
) *NotifierService {
	return &NotifierService{
		sender:   sender,
		config:   config,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Notify composes the fixed plain-text template and sends it to the
// configured recipients. Transport failures are returned to the caller
// without retry; the message itself is not retained either way.
func (s *NotifierService) Notify(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return ErrInvalidContactData.WithDetails(err.Error())
	}

	subject := fmt.Sprintf("Notification from %s with email %s.", msg.Name, msg.Email)
	body := fmt.Sprintf(
		"Hello %s, %s has left you a message.\n"+
			"Details below:\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Mobile: %s\n"+
			"Message: %s\n",
		s.config.DeveloperName, msg.Name, msg.Name, msg.Email, msg.Phone, msg.Message,
	)

	err := s.sender.Send(ctx, subject, body, s.config.Recipients)

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.ContactRelayedTopic,
		Payload: events.ContactRelayedEvent{
			SenderName:  msg.Name,
			SenderEmail: msg.Email,
			Delivered:   err == nil,
			OccurredAt:  time.Now(),
		},
	})

	if err != nil {
		s.logger.Error(ctx, "mail transport failed", "error", err, "recipients", len(s.config.Recipients))
		return apperror.Wrap(
			err,
			apperror.CodeUnavailable,
			apperror.BusinessCodeNotificationFailed,
			"failed to relay contact message",
			http.StatusServiceUnavailable,
		)
	}

	return nil
}
