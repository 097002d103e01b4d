package events

import (
	"context"

	"github.com/quietpage/quietpage/internal/platform/eventbus"
	"github.com/quietpage/quietpage/internal/platform/logger"
)

// RegisterLogging subscribes a structured-log observer to every lifecycle
// topic. It is the only subscriber the application ships with.
func RegisterLogging(bus *eventbus.Bus, log logger.Logger) {
	bus.Subscribe(PostCreatedTopic, func(ctx context.Context, event eventbus.Event) error {
		if p, ok := event.Payload.(PostCreatedEvent); ok {
			log.Info(ctx, "post created", "post_id", p.PostID, "title", p.Title, "author", p.Author)
		}
		return nil
	})

	bus.Subscribe(PostEditedTopic, func(ctx context.Context, event eventbus.Event) error {
		if p, ok := event.Payload.(PostEditedEvent); ok {
			log.Info(ctx, "post edited", "post_id", p.PostID, "title", p.Title)
		}
		return nil
	})

	bus.Subscribe(PostDeletedTopic, func(ctx context.Context, event eventbus.Event) error {
		if p, ok := event.Payload.(PostDeletedEvent); ok {
			log.Info(ctx, "post deleted", "post_id", p.PostID)
		}
		return nil
	})

	bus.Subscribe(ContactRelayedTopic, func(ctx context.Context, event eventbus.Event) error {
		if p, ok := event.Payload.(ContactRelayedEvent); ok {
			log.Info(ctx, "contact message relayed",
				"sender", p.SenderName,
				"email", p.SenderEmail,
				"delivered", p.Delivered,
			)
		}
		return nil
	})
}
