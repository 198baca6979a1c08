package endpoints

import (
	"github.com/jackzampolin/skim/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	// MaxUploadBytes caps in-memory multipart parsing for uploads.
	MaxUploadBytes int64
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		&RootEndpoint{},
		&HealthEndpoint{},
		&ExtractEndpoint{MaxUploadBytes: cfg.MaxUploadBytes},
	}
}
