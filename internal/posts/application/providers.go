package application

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the content service.
var ProviderSet = wire.NewSet(
	NewContentService,
)
