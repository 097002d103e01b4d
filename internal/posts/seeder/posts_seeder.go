package seeder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"github.com/quietpage/quietpage/internal/adapters/postgres"
	"github.com/quietpage/quietpage/internal/platform/logger"
	"github.com/quietpage/quietpage/internal/posts/domain"
	"github.com/quietpage/quietpage/internal/posts/ports"
)

type seedFile struct {
	Posts []seedPost `yaml:"posts"`
}

type seedPost struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	ImageURL string `yaml:"image_url"`
	Body     string `yaml:"body"`
}

// PostsSeeder loads starter posts from a YAML file. Posts whose title is
// already present are skipped, so re-running it never duplicates or
// overwrites anything.
type PostsSeeder struct {
	path   string
	logger logger.Logger
}

// NewPostsSeeder creates a posts seeder reading from the given YAML file.
func NewPostsSeeder(path string, logger logger.Logger) *PostsSeeder {
	return &PostsSeeder{path: path, logger: logger}
}

// Name returns the seeder name for logging.
func (s *PostsSeeder) Name() string {
	return "posts"
}

// Seed inserts every post from the file that does not exist yet.
func (s *PostsSeeder) Seed(ctx context.Context, db *pgxpool.Pool) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	repo := postgres.NewPostRepository(db)

	seeded := 0
	for _, entry := range file.Posts {
		_, err := repo.FindByTitle(ctx, entry.Title)
		if err == nil {
			s.logger.Debug(ctx, "post already present, skipping", "title", entry.Title)
			continue
		}
		if !errors.Is(err, ports.ErrPostNotFound) {
			return fmt.Errorf("look up post %q: %w", entry.Title, err)
		}

		post, err := domain.NewPost(entry.Title, entry.Subtitle, entry.Author, entry.ImageURL, entry.Body, time.Now())
		if err != nil {
			return fmt.Errorf("invalid seed post %q: %w", entry.Title, err)
		}

		if err := repo.Insert(ctx, post); err != nil {
			return fmt.Errorf("insert post %q: %w", entry.Title, err)
		}
		seeded++
	}

	s.logger.Info(ctx, "posts seeded", "inserted", seeded, "total", len(file.Posts))
	return nil
}
