package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietpage/quietpage/internal/platform/eventbus"
	"github.com/quietpage/quietpage/internal/posts/application"
	"github.com/quietpage/quietpage/internal/posts/domain"
	"github.com/quietpage/quietpage/internal/posts/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}

// memRepo is an in-memory PostRepository that mirrors the real store's
// constraints: unique ids and unique titles.
type memRepo struct {
	mu    sync.Mutex
	posts map[uuid.UUID]domain.Post
}

func newMemRepo() *memRepo {
	return &memRepo{posts: make(map[uuid.UUID]domain.Post)}
}

func (r *memRepo) Insert(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; ok {
		return ports.ErrDuplicateID
	}
	for _, p := range r.posts {
		if p.Title == post.Title {
			return ports.ErrDuplicateTitle
		}
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *memRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		return &p, nil
	}
	return nil, ports.ErrPostNotFound
}

func (r *memRepo) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Title == title {
			found := p
			return &found, nil
		}
	}
	return nil, ports.ErrPostNotFound
}

func (r *memRepo) ListAll(ctx context.Context) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		found := p
		out = append(out, &found)
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return ports.ErrPostNotFound
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

var _ ports.PostRepository = (*memRepo)(nil)

func newService(t *testing.T) (*application.ContentService, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	bus := eventbus.NewBus(nopLogger{})
	return application.NewContentService(repo, bus, nopLogger{}), repo
}

func validParams() application.SubmitPostParams {
	return application.SubmitPostParams{
		Title:    "Hello World",
		Subtitle: "First",
		Author:   "A",
		ImageURL: "http://x.com/i.png",
		Body:     "Hi",
	}
}

func TestSubmitPostCreatesNewRecord(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	now := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

	post, err := svc.SubmitPost(ctx, validParams(), now)
	require.NoError(t, err)

	assert.Equal(t, "January 01, 2024", post.PublishedOn())
	assert.Equal(t, "January 01, 2024", post.LastEditedOn())

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestSubmitPostEditsExistingRecordByTitle(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	created, err := svc.SubmitPost(ctx, validParams(),
		time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	edited := validParams()
	edited.Body = "Hi v2"
	result, err := svc.SubmitPost(ctx, edited,
		time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Exactly one record with that title, identifier stable, publish date
	// preserved, last-edit moved.
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, "Hello World", result.Title)
	assert.Equal(t, "January 01, 2024", result.PublishedOn())
	assert.Equal(t, "February 01, 2024", result.LastEditedOn())
	assert.Equal(t, "Hi v2", result.Body)
}

func TestSubmitPostRejectsInvalidFields(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*application.SubmitPostParams)
	}{
		{"missing title", func(p *application.SubmitPostParams) { p.Title = "" }},
		{"missing subtitle", func(p *application.SubmitPostParams) { p.Subtitle = "" }},
		{"missing author", func(p *application.SubmitPostParams) { p.Author = "" }},
		{"malformed image URL", func(p *application.SubmitPostParams) { p.ImageURL = "not-a-url" }},
		{"missing body", func(p *application.SubmitPostParams) { p.Body = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			_, err := svc.SubmitPost(ctx, params, now)
			assert.ErrorIs(t, err, application.ErrInvalidPostData)

			// Nothing mutated on a validation failure.
			all, listErr := repo.ListAll(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, all)
		})
	}
}

func TestSubmitPostSanitizesBody(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	params := validParams()
	params.Body = `<p>Hi</p><script>alert("x")</script>`

	post, err := svc.SubmitPost(ctx, params, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", post.Body)
}

func TestDeletePostIsIdempotent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	post, err := svc.SubmitPost(ctx, validParams(), time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, post.ID))

	got, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete of the same id does not fail.
	require.NoError(t, svc.DeletePost(ctx, post.ID))
}

func TestListPostsSortedByPublishDateAscending(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	titles := []string{"Third", "First", "Second"}

	for i, d := range dates {
		params := validParams()
		params.Title = titles[i]
		_, err := svc.SubmitPost(ctx, params, d)
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].PublishedAt.Before(posts[i-1].PublishedAt),
			"listing not sorted ascending at index %d", i)
	}
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "Third", posts[2].Title)
}

func TestSubmitPostRoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	params := validParams()
	created, err := svc.SubmitPost(ctx, params, time.Now())
	require.NoError(t, err)

	fetched, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, params.Title, fetched.Title)
	assert.Equal(t, params.Subtitle, fetched.Subtitle)
	assert.Equal(t, params.Author, fetched.Author)
	assert.Equal(t, params.ImageURL, fetched.ImageURL)
	assert.Equal(t, params.Body, fetched.Body)
}

func TestGetPostMissingIDYieldsNone(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.GetPost(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPrepareEditFormLocksTitle(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	post, err := svc.SubmitPost(ctx, validParams(), time.Now())
	require.NoError(t, err)

	form, err := svc.PrepareEditForm(ctx, post.ID)
	require.NoError(t, err)

	assert.True(t, form.TitleLocked)
	assert.Equal(t, post.ID, form.Post.ID)
	assert.Equal(t, post.Title, form.Post.Title)

	_, err = svc.PrepareEditForm(ctx, uuid.New())
	assert.ErrorIs(t, err, application.ErrPostNotFound)
}

// conflictRepo simulates the losing side of a concurrent same-title submit:
// the title lookup sees nothing, then the unique constraint rejects the insert.
type conflictRepo struct {
	*memRepo
}

func (r *conflictRepo) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	return nil, ports.ErrPostNotFound
}

func (r *conflictRepo) Insert(ctx context.Context, post *domain.Post) error {
	return ports.ErrDuplicateTitle
}

func TestSubmitPostSurfacesTitleConflict(t *testing.T) {
	bus := eventbus.NewBus(nopLogger{})
	svc := application.NewContentService(&conflictRepo{newMemRepo()}, bus, nopLogger{})

	_, err := svc.SubmitPost(context.Background(), validParams(), time.Now())
	assert.ErrorIs(t, err, application.ErrTitleConflict)
}
