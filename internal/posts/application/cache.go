package application

import (
	"sync"

	"github.com/quietpage/quietpage/internal/posts/domain"
)

// listingCache holds the most recent sorted listing snapshot.
//
// The contract is explicit: ListPosts refreshes it on every call, mutating
// operations invalidate it, and nothing else writes to it. Lookups by id
// scan the snapshot, which bounds staleness to "since the last refresh or
// mutation in this process".
type listingCache struct {
	mu    sync.RWMutex
	posts []*domain.Post
	valid bool
}

func (c *listingCache) set(posts []*domain.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = posts
	c.valid = true
}

func (c *listingCache) snapshot() ([]*domain.Post, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.posts, c.valid
}

func (c *listingCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = nil
	c.valid = false
}
