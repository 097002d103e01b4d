package logger

import (
	"context"
)

// Logger is the logging interface used across the application.
// Keeping it an interface lets tests inject a silent logger.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
