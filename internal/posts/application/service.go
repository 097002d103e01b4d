package application

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/quietpage/quietpage/internal/platform/apperror"
	"github.com/quietpage/quietpage/internal/platform/eventbus"
	"github.com/quietpage/quietpage/internal/platform/events"
	"github.com/quietpage/quietpage/internal/platform/logger"
	"github.com/quietpage/quietpage/internal/posts/domain"
	"github.com/quietpage/quietpage/internal/posts/ports"
)

// Error definitions for service operations
var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	ErrTitleConflict = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeDuplicateTitle,
		"a post with this title already exists",
		http.StatusConflict,
	)

	ErrInvalidPostData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidPostData,
		"invalid post data",
		http.StatusBadRequest,
	)
)

// ContentService orchestrates post listing, lookup and the title-keyed
// create-or-edit merge.
type ContentService struct {
	repo      ports.PostRepository
	eventBus  *eventbus.Bus
	logger    logger.Logger
	sanitizer *bluemonday.Policy
	listing   *listingCache
}

// NewContentService creates a new content service.
func NewContentService(
	repo ports.PostRepository,
	eventBus *eventbus.Bus,
	logger logger.Logger,
) *ContentService {
	return &ContentService{
		repo:      repo,
		eventBus:  eventBus,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
		listing:   &listingCache{},
	}
}

// ListPosts returns all posts sorted ascending by publish date and
// refreshes the listing cache with the result.
func (s *ContentService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list posts", "error", err)
		return nil, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to list posts",
			http.StatusInternalServerError,
		)
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].PublishedAt.Before(posts[j].PublishedAt)
		}
		return posts[i].Title < posts[j].Title
	})

	s.listing.set(posts)
	return posts, nil
}

// GetPost looks up a post by id in the cached listing, refreshing the cache
// when stale. A missing post yields (nil, nil): the detail page renders
// empty rather than failing.
func (s *ContentService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	posts, ok := s.listing.snapshot()
	if !ok {
		var err error
		posts, err = s.ListPosts(ctx)
		if err != nil {
			return nil, err
		}
	}

	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, nil
}

// SubmitPostParams carries the submitted form fields. All are required.
type SubmitPostParams struct {
	Title    string
	Subtitle string
	Author   string
	ImageURL string
	Body     string
}

// SubmitPost creates a new post or edits an existing one, keyed by title.
//
// When no post carries the submitted title, a new record is created with
// publish and last-edit dates equal to now. When one does, that record is
// updated in place: identifier and publish date preserved, the remaining
// fields replaced, last-edit date set to now. The caller supplies now once
// per request so the rendered page and the stored record always agree.
func (s *ContentService) SubmitPost(ctx context.Context, params SubmitPostParams, now time.Time) (*domain.Post, error) {
	body := s.sanitizer.Sanitize(params.Body)

	existing, err := s.repo.FindByTitle(ctx, params.Title)
	if err != nil && !errors.Is(err, ports.ErrPostNotFound) {
		s.logger.Error(ctx, "failed to look up post by title", "error", err, "title", params.Title)
		return nil, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to look up post",
			http.StatusInternalServerError,
		)
	}

	if existing == nil {
		return s.createPost(ctx, params, body, now)
	}
	return s.editPost(ctx, existing, params, body, now)
}

func (s *ContentService) createPost(ctx context.Context, params SubmitPostParams, body string, now time.Time) (*domain.Post, error) {
	post, err := domain.NewPost(params.Title, params.Subtitle, params.Author, params.ImageURL, body, now)
	if err != nil {
		return nil, ErrInvalidPostData.WithDetails(err.Error())
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		// A concurrent submit of the same title loses to the unique
		// constraint rather than silently duplicating the merge key.
		if errors.Is(err, ports.ErrDuplicateTitle) {
			return nil, ErrTitleConflict
		}
		s.logger.Error(ctx, "failed to create post", "error", err, "title", post.Title)
		return nil, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to create post",
			http.StatusInternalServerError,
		)
	}

	s.listing.invalidate()
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostCreatedTopic,
		Payload: events.PostCreatedEvent{
			PostID:     post.ID,
			Title:      post.Title,
			Author:     post.Author,
			OccurredAt: now,
		},
	})

	return post, nil
}

func (s *ContentService) editPost(ctx context.Context, post *domain.Post, params SubmitPostParams, body string, now time.Time) (*domain.Post, error) {
	if err := post.ApplyEdit(params.Subtitle, params.Author, params.ImageURL, body, now); err != nil {
		return nil, ErrInvalidPostData.WithDetails(err.Error())
	}

	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.Error(ctx, "failed to edit post", "error", err, "postID", post.ID)
		return nil, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to edit post",
			http.StatusInternalServerError,
		)
	}

	s.listing.invalidate()
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostEditedTopic,
		Payload: events.PostEditedEvent{
			PostID:     post.ID,
			Title:      post.Title,
			OccurredAt: now,
		},
	})

	return post, nil
}

// EditForm pre-fills the make-post form for an existing post. The title is
// locked because it is the merge key: changing it would turn the edit into
// an unrelated create.
type EditForm struct {
	Post        *domain.Post
	TitleLocked bool
}

// PrepareEditForm fetches a post by id and returns the pre-filled edit
// descriptor.
func (s *ContentService) PrepareEditForm(ctx context.Context, id uuid.UUID) (*EditForm, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to find post", "error", err, "postID", id)
		return nil, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to retrieve post",
			http.StatusInternalServerError,
		)
	}

	return &EditForm{Post: post, TitleLocked: true}, nil
}

// DeletePost removes a post. Deleting an id that is already gone succeeds.
func (s *ContentService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "failed to delete post", "error", err, "postID", id)
		return apperror.Wrap(
			err,
			apperror.CodeInternalError,
			apperror.BusinessCodeGeneral,
			"failed to delete post",
			http.StatusInternalServerError,
		)
	}

	s.listing.invalidate()
	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostDeletedTopic,
		Payload: events.PostDeletedEvent{
			PostID:     id,
			OccurredAt: time.Now(),
		},
	})

	return nil
}
