package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/api"
)

// RootResponse is the response for the root endpoint.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// RootEndpoint handles GET /.
type RootEndpoint struct{}

var _ api.Endpoint = (*RootEndpoint)(nil)

func (e *RootEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/{$}", e.handler
}

func (e *RootEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "PDF Heading Extractor API",
		Status:  "running",
	})
}

func (e *RootEndpoint) Command(_ func() string) *cobra.Command {
	return nil
}
