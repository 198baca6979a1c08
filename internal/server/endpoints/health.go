package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/api"
)

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthEndpoint handles GET /api/health.
type HealthEndpoint struct{}

var _ api.Endpoint = (*HealthEndpoint)(nil)

func (e *HealthEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/health", e.handler
}

func (e *HealthEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (e *HealthEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp HealthResponse
			if err := client.Get(cmd.Context(), "/api/health", &resp); err != nil {
				return err
			}
			fmt.Printf("Status: %s\n", resp.Status)
			return nil
		},
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}
