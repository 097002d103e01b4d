package postgres

import (
	"github.com/google/wire"

	"github.com/quietpage/quietpage/internal/posts/ports"
)

// ProviderSet is the wire provider set for postgres repositories.
var ProviderSet = wire.NewSet(
	NewPostRepository,
	wire.Bind(new(ports.PostRepository), new(*PostRepository)),
)
