package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quietpage/quietpage/internal/posts/domain"
)

// Repository errors - these are the canonical errors that repository
// implementations should return. The PostgreSQL implementation translates
// pgx.ErrNoRows and unique-constraint violations to these errors.
var (
	// ErrPostNotFound is returned when a post cannot be found.
	ErrPostNotFound = errors.New("post not found")

	// ErrDuplicateTitle is returned when the unique title constraint rejects
	// a write. Title uniqueness is the edit-merge invariant, so the store
	// enforces it as a hard constraint instead of letting two writers race.
	ErrDuplicateTitle = errors.New("post title already exists")

	// ErrDuplicateID is returned on an identifier collision. This should not
	// happen under normal use since identifiers are randomly generated.
	ErrDuplicateID = errors.New("post id already exists")
)

// PostRepository defines the interface for post persistence.
// Every mutating call is immediately durable: a later read in the same
// process observes the write.
type PostRepository interface {
	// Insert saves a new post.
	Insert(ctx context.Context, post *domain.Post) error

	// FindByID retrieves a post by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// FindByTitle retrieves the post with the given title, of which there is
	// at most one.
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)

	// ListAll retrieves every post, unordered. Callers sort.
	ListAll(ctx context.Context) ([]*domain.Post, error)

	// Update rewrites the mutable columns of an existing post in place.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post. Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
