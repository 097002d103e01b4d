package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quietpage/quietpage/internal/platform/postgres"
	"github.com/quietpage/quietpage/internal/posts/domain"
	"github.com/quietpage/quietpage/internal/posts/ports"
)

const uniqueViolation = "23505"

// PostRepository implements ports.PostRepository using PostgreSQL.
type PostRepository struct {
	postgres.BaseRepository
}

// NewPostRepository creates a new PostgreSQL posts repository.
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// Insert persists a new post. Identifier and title collisions map to the
// canonical repository errors.
func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Insert("posts").
		Columns(
			"id", "title", "subtitle", "author", "image_url", "body",
			"published_at", "last_edited_at",
		).
		Values(
			pgtype.UUID{Bytes: post.ID, Valid: true},
			post.Title,
			post.Subtitle,
			post.Author,
			post.ImageURL,
			post.Body,
			pgtype.Timestamptz{Time: post.PublishedAt, Valid: true},
			pgtype.Timestamptz{Time: post.LastEditedAt, Valid: true},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Insert: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("PostRepository.Insert: %w", err)
	}

	return nil
}

// Update rewrites the mutable columns of an existing post in place.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Update("posts").
		Set("subtitle", post.Subtitle).
		Set("author", post.Author).
		Set("image_url", post.ImageURL).
		Set("body", post.Body).
		Set("published_at", pgtype.Timestamptz{Time: post.PublishedAt, Valid: true}).
		Set("last_edited_at", pgtype.Timestamptz{Time: post.LastEditedAt, Valid: true}).
		Where(sq.Eq{"id": pgtype.UUID{Bytes: post.ID, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Update: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. Deleting an absent id succeeds.
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.SB.
		Delete("posts").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: build query: %w", err)
	}

	if _, err := r.DB.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("PostRepository.Delete: %w", err)
	}

	return nil
}

// FindByID retrieves a post by its identifier.
func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := r.selectPosts().
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByID: build query: %w", err)
	}

	post, err := scanPost(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrPostNotFound
		}
		return nil, fmt.Errorf("PostRepository.FindByID: %w", err)
	}

	return post, nil
}

// FindByTitle retrieves the post with the given title. The unique index
// guarantees there is at most one.
func (r *PostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	query, args, err := r.selectPosts().
		Where(sq.Eq{"title": title}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByTitle: build query: %w", err)
	}

	post, err := scanPost(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrPostNotFound
		}
		return nil, fmt.Errorf("PostRepository.FindByTitle: %w", err)
	}

	return post, nil
}

// ListAll retrieves every post, unordered.
func (r *PostRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	query, args, err := r.selectPosts().ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListAll: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListAll: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("PostRepository.ListAll: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PostRepository.ListAll: rows error: %w", err)
	}

	return posts, nil
}

// Helper methods

func (r *PostRepository) selectPosts() sq.SelectBuilder {
	return r.SB.Select(
		"id", "title", "subtitle", "author", "image_url", "body",
		"published_at", "last_edited_at",
	).From("posts")
}

// duplicateError translates a unique violation into the canonical
// repository error, nil otherwise.
func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	if pgErr.ConstraintName == "posts_pkey" {
		return ports.ErrDuplicateID
	}
	return ports.ErrDuplicateTitle
}

// scanPost scans a single post from pgx.Row.
func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var idBytes pgtype.UUID
	var publishedAt, lastEditedAt pgtype.Timestamptz

	err := row.Scan(
		&idBytes,
		&post.Title,
		&post.Subtitle,
		&post.Author,
		&post.ImageURL,
		&post.Body,
		&publishedAt,
		&lastEditedAt,
	)
	if err != nil {
		return nil, err
	}

	post.ID = uuid.UUID(idBytes.Bytes)
	post.PublishedAt = publishedAt.Time
	post.LastEditedAt = lastEditedAt.Time

	return &post, nil
}

// Compile-time check to ensure PostRepository implements ports.PostRepository
var _ ports.PostRepository = (*PostRepository)(nil)
