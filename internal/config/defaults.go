package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        "8080",
			MaxUploadMB: 64,
		},
		Extract: ExtractConfig{
			Workers: runtime.NumCPU(),
		},
	}
}

// WriteDefault writes the default configuration to path as YAML.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# skim configuration
# Values here can be overridden with SKIM_* environment variables,
# e.g. SKIM_SERVER_PORT=3000 or SKIM_LOG_LEVEL=debug.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
