package endpoints

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/api"
	"github.com/jackzampolin/skim/internal/doc"
	"github.com/jackzampolin/skim/internal/outline"
	"github.com/jackzampolin/skim/internal/pdf"
	"github.com/jackzampolin/skim/internal/svcctx"
)

// ExtractResponse is the response for the heading extraction endpoint.
type ExtractResponse struct {
	Success        bool            `json:"success"`
	Filename       string          `json:"filename"`
	Title          string          `json:"title"`
	Outline        []outline.Entry `json:"outline"`
	ProcessingTime float64         `json:"processing_time"`
	TotalHeadings  int             `json:"total_headings"`
}

// ExtractEndpoint handles POST /api/extract-headings with a multipart
// PDF upload.
type ExtractEndpoint struct {
	// MaxUploadBytes caps in-memory multipart parsing. Zero means 64MB.
	MaxUploadBytes int64

	// Decode overrides the PDF decoder, for tests.
	Decode func(path string) (doc.Document, error)
}

var _ api.Endpoint = (*ExtractEndpoint)(nil)

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract-headings", e.handler
}

func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	maxMemory := e.MaxUploadBytes
	if maxMemory <= 0 {
		maxMemory = 64 << 20
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".pdf") {
		writeError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	extractor := svcctx.ExtractorFrom(r.Context())
	if extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "extractor not initialized")
		return
	}

	homeDir := svcctx.HomeFrom(r.Context())
	if homeDir == nil {
		writeError(w, http.StatusServiceUnavailable, "home directory not initialized")
		return
	}

	// Spool the upload to disk under a random name so concurrent uploads
	// of the same filename never collide.
	tmpPath := filepath.Join(homeDir.UploadsPath(), uuid.NewString()+".pdf")
	dst, err := os.Create(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save upload: %v", err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save upload: %v", err))
		return
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save upload: %v", err))
		return
	}
	defer os.Remove(tmpPath)

	decode := e.Decode
	if decode == nil {
		decode = pdf.Decode
	}

	// Timing covers decode plus extraction, not the upload itself.
	start := time.Now()
	document, err := decode(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing PDF: %v", err))
		return
	}
	result := extractor.Extract(document)
	elapsed := time.Since(start).Seconds()

	entries := result.Outline
	if entries == nil {
		entries = []outline.Entry{}
	}

	writeJSON(w, http.StatusOK, ExtractResponse{
		Success:        true,
		Filename:       header.Filename,
		Title:          result.Title,
		Outline:        entries,
		ProcessingTime: math.Round(elapsed*1000) / 1000,
		TotalHeadings:  len(entries),
	})
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract-headings <file.pdf>",
		Short: "Upload a PDF and extract its title and heading outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ExtractResponse
			if err := client.Upload(cmd.Context(), "/api/extract-headings", "file", args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
