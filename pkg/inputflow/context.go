package inputflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Context provides run context to playback.
// It extends context.Context with a logger and run identity.
//
// Context is immutable after creation.
type Context interface {
	context.Context

	// Logger returns the configured logger.
	// Never returns nil - defaults to slog.Default() if not configured.
	Logger() *slog.Logger

	// RunID returns the unique identifier for this playback run.
	// Auto-generated if not configured.
	RunID() string
}

// playContext is the internal implementation of Context.
type playContext struct {
	context.Context

	logger *slog.Logger
	runID  string
}

// Logger returns the configured logger.
func (c *playContext) Logger() *slog.Logger {
	return c.logger
}

// RunID returns the run identifier.
func (c *playContext) RunID() string {
	return c.runID
}

// ContextOption configures a Context.
type ContextOption func(*playContext)

// WithLogger sets the logger for the context.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *playContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithContextRunID sets the run identifier for the context.
// If not set, a UUID will be auto-generated. A RunOption from WithRunID
// takes precedence during Run.
func WithContextRunID(id string) ContextOption {
	return func(c *playContext) {
		c.runID = id
	}
}

// NewContext creates a playback context from a standard context.
//
// Example:
//
//	ctx := inputflow.NewContext(context.Background(),
//	    inputflow.WithLogger(myLogger),
//	    inputflow.WithContextRunID("run-123"))
func NewContext(ctx context.Context, opts ...ContextOption) Context {
	pc := &playContext{
		Context: ctx,
		logger:  slog.Default(),
		runID:   uuid.New().String(),
	}

	for _, opt := range opts {
		opt(pc)
	}

	return pc
}
