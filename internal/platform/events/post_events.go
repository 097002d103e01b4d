package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/quietpage/quietpage/internal/platform/eventbus"
)

// Event topics for posts
const (
	PostCreatedTopic eventbus.Topic = "posts.created"
	PostEditedTopic  eventbus.Topic = "posts.edited"
	PostDeletedTopic eventbus.Topic = "posts.deleted"
)

// PostCreatedEvent is published when a new post is created.
type PostCreatedEvent struct {
	PostID     uuid.UUID
	Title      string
	Author     string
	OccurredAt time.Time
}

// PostEditedEvent is published when an existing post is updated in place.
type PostEditedEvent struct {
	PostID     uuid.UUID
	Title      string
	OccurredAt time.Time
}

// PostDeletedEvent is published when a post is deleted.
type PostDeletedEvent struct {
	PostID     uuid.UUID
	OccurredAt time.Time
}
