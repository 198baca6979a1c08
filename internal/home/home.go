// Package home manages the skim home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the skim home directory.
	DefaultDirName = ".skim"

	// UploadsDirName is the subdirectory for staged PDF uploads.
	UploadsDirName = "uploads"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the skim home directory structure.
type Dir struct {
	path string
}

// New creates a Dir with the given path. Empty means ~/.skim.
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}
	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// UploadsPath returns the staging directory for uploaded PDFs.
func (d *Dir) UploadsPath() string {
	return filepath.Join(d.path, UploadsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory tree if needed.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.UploadsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home dir.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
