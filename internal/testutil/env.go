package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

// ServerConfig returns configuration values for creating a test server.
// This avoids importing the server package directly.
type ServerConfig struct {
	Host       string
	Port       string
	HomePath   string
	ConfigFile string
	Logger     *slog.Logger
}

// NewServerConfig creates configuration for a test server with a unique
// port and a throwaway home directory.
func NewServerConfig(t *testing.T) ServerConfig {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	tempDir := t.TempDir()

	httpPort, err := FindFreePort()
	if err != nil {
		t.Fatalf("failed to find free port for HTTP: %v", err)
	}

	return ServerConfig{
		Host:       "127.0.0.1",
		Port:       httpPort,
		HomePath:   tempDir,
		ConfigFile: tempDir + "/config.yaml",
		Logger:     logger,
	}
}

// URL returns the server URL for the given config.
func (c ServerConfig) URL() string {
	return fmt.Sprintf("http://%s:%s", c.Host, c.Port)
}

// WaitForServer polls the health endpoint until the server answers.
func WaitForServer(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url + "/api/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server not ready after %v", timeout)
}

// WaitForShutdown waits for a channel to receive a value or timeout.
func WaitForShutdown(done <-chan error, timeout time.Duration) error {
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("timeout waiting for shutdown")
	}
}

// HTTPClient returns an HTTP client for making requests.
func HTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// FindFreePort finds an available TCP port and returns it as a string.
func FindFreePort() (string, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer listener.Close()
	return fmt.Sprintf("%d", listener.Addr().(*net.TCPAddr).Port), nil
}

// StartServer manages server lifecycle in tests.
type StartServer struct {
	Cancel context.CancelFunc
	Done   <-chan error
}

// Stop cancels the server context and waits for shutdown.
func (s *StartServer) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
	if s.Done != nil {
		<-s.Done
	}
}
