package events

import (
	"time"

	"github.com/quietpage/quietpage/internal/platform/eventbus"
)

// ContactRelayedTopic is published after a contact message has been
// handed to the mail transport, whether or not the send succeeded.
const ContactRelayedTopic eventbus.Topic = "contact.relayed"

// ContactRelayedEvent carries the outcome of a contact notification.
// The message body itself is not retained.
type ContactRelayedEvent struct {
	SenderName  string
	SenderEmail string
	Delivered   bool
	OccurredAt  time.Time
}
