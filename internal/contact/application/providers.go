package application

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the contact notifier.
var ProviderSet = wire.NewSet(
	NewNotifierService,
)
