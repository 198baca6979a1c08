// Package config loads skim configuration from defaults, an optional
// YAML config file, and SKIM_* environment overrides, with fsnotify-based
// hot reload.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config is the full skim configuration.
type Config struct {
	LogLevel string        `mapstructure:"log_level" yaml:"log_level"`
	Server   ServerConfig  `mapstructure:"server" yaml:"server"`
	Extract  ExtractConfig `mapstructure:"extract" yaml:"extract"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string `mapstructure:"host" yaml:"host"`
	Port        string `mapstructure:"port" yaml:"port"`
	MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
}

// ExtractConfig holds outline-extraction settings.
type ExtractConfig struct {
	// Workers bounds the per-page scoring pool. 0 means NumCPU.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// SlogLevel maps the configured log level to a slog.Level, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	v *viper.Viper

	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a manager and loads the initial config. cfgFile may
// be empty, in which case ./config.yaml and ~/.skim/config.yaml are
// searched; a missing config file is not an error.
func NewManager(cfgFile string) (*Manager, error) {
	m := &Manager{v: viper.New()}

	defaults := DefaultConfig()
	m.v.SetDefault("log_level", defaults.LogLevel)
	m.v.SetDefault("server.host", defaults.Server.Host)
	m.v.SetDefault("server.port", defaults.Server.Port)
	m.v.SetDefault("server.max_upload_mb", defaults.Server.MaxUploadMB)
	m.v.SetDefault("extract.workers", defaults.Extract.Workers)

	m.v.SetEnvPrefix("SKIM")
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()

	if cfgFile != "" {
		m.v.SetConfigFile(cfgFile)
	} else {
		m.v.SetConfigName("config")
		m.v.SetConfigType("yaml")
		m.v.AddConfigPath(".")
		m.v.AddConfigPath("$HOME/.skim")
	}

	if err := m.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	m.config = cfg

	return m, nil
}

// load parses the current viper state into a Config.
func (m *Manager) load() (*Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after every successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// WatchConfig enables hot reloading of the config file.
func (m *Manager) WatchConfig() {
	m.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := m.load()
		if err != nil {
			return
		}

		m.mu.Lock()
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	m.v.WatchConfig()
}
