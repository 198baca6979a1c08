// Package svcctx provides service context for dependency injection via
// context. This package is separate from server to avoid import cycles
// with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/skim/internal/home"
	"github.com/jackzampolin/skim/internal/outline"
)

// Services holds the core services that flow through request context.
type Services struct {
	Extractor *outline.Extractor
	Home      *home.Dir
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ExtractorFrom extracts the outline extractor from context.
func ExtractorFrom(ctx context.Context) *outline.Extractor {
	if s := ServicesFrom(ctx); s != nil {
		return s.Extractor
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
