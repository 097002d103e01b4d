package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DateLayout renders dates the way the blog displays them, e.g. "May 10, 2019".
const DateLayout = "January 02, 2006"

// Business rule constants
const (
	MaxTitleLength    = 250
	MaxSubtitleLength = 250
	MaxAuthorLength   = 250
	MaxImageURLLength = 250
)

// Validation errors
var (
	ErrInvalidTitle    = errors.New("title is required and must not exceed 250 characters")
	ErrInvalidSubtitle = errors.New("subtitle is required and must not exceed 250 characters")
	ErrInvalidAuthor   = errors.New("author is required and must not exceed 250 characters")
	ErrInvalidImageURL = errors.New("image URL is required and must be a valid absolute URL")
	ErrInvalidBody     = errors.New("body is required")
)

// Post represents a blog article.
//
// The title doubles as the edit-merge key: submitting a post whose title
// matches an existing record is treated as an edit of that record, so the
// title is unique across all posts and locked on the edit form.
type Post struct {
	ID           uuid.UUID
	Title        string
	Subtitle     string
	Author       string
	ImageURL     string
	Body         string // Rich HTML content
	PublishedAt  time.Time
	LastEditedAt time.Time
}

// NewPost creates a new post with validation. Both the publish date and the
// last-edit date are set to the supplied request time.
func NewPost(title, subtitle, author, imageURL, body string, now time.Time) (*Post, error) {
	if err := validateFields(title, subtitle, author, imageURL, body); err != nil {
		return nil, err
	}

	return &Post{
		ID:           uuid.New(),
		Title:        title,
		Subtitle:     subtitle,
		Author:       author,
		ImageURL:     imageURL,
		Body:         body,
		PublishedAt:  now,
		LastEditedAt: now,
	}, nil
}

// ApplyEdit replaces the mutable fields of the post with the submitted
// values. The identifier, title and publish date stay as they are; only the
// last-edit date moves to the supplied request time.
func (p *Post) ApplyEdit(subtitle, author, imageURL, body string, now time.Time) error {
	if err := validateFields(p.Title, subtitle, author, imageURL, body); err != nil {
		return err
	}

	p.Subtitle = subtitle
	p.Author = author
	p.ImageURL = imageURL
	p.Body = body
	p.LastEditedAt = now
	return nil
}

// PublishedOn returns the publish date formatted for display.
func (p *Post) PublishedOn() string {
	return p.PublishedAt.Format(DateLayout)
}

// LastEditedOn returns the last-edit date formatted for display.
func (p *Post) LastEditedOn() string {
	return p.LastEditedAt.Format(DateLayout)
}

// Validation helpers

func validateFields(title, subtitle, author, imageURL, body string) error {
	if title == "" || len(title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	if subtitle == "" || len(subtitle) > MaxSubtitleLength {
		return ErrInvalidSubtitle
	}
	if author == "" || len(author) > MaxAuthorLength {
		return ErrInvalidAuthor
	}
	if err := validateImageURL(imageURL); err != nil {
		return err
	}
	if body == "" {
		return ErrInvalidBody
	}
	return nil
}

func validateImageURL(raw string) error {
	if raw == "" || len(raw) > MaxImageURLLength {
		return ErrInvalidImageURL
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidImageURL
	}
	return nil
}
