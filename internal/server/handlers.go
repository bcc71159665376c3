package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	_ "golang.org/x/image/bmp"

	"github.com/sujinee01/Image-Verification-Automation-System/internal/extract"
	"github.com/sujinee01/Image-Verification-Automation-System/internal/pipeline"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ErrorResponse is the error payload for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}
	s.writeJSON(w, http.StatusOK, response)
}

// verifyHandler accepts a multipart image upload, runs the verification
// pipeline and returns the result. Validation failures are part of the
// result body; only infrastructure failures map to error statuses.
func (s *Server) verifyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	maxBytes := s.cfg.MaxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.writeError(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, "No image file provided", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxBytes {
		s.writeError(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}
	uploadSizeBytes.Observe(float64(header.Size))

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		s.writeError(w, "Failed to read image data", http.StatusInternalServerError)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		s.writeError(w, "Invalid image format", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := s.pipeline.VerifyImage(r.Context(), img)
	if err != nil {
		recordVerification("error", time.Since(start).Seconds(), 0)
		var engineErr *extract.EngineError
		if errors.As(err, &engineErr) {
			s.writeError(w, fmt.Sprintf("OCR engine failed: %v", err), http.StatusServiceUnavailable)
			return
		}
		s.writeError(w, fmt.Sprintf("Verification failed: %v", err), http.StatusInternalServerError)
		return
	}
	res.Path = header.Filename

	outcome := "invalid"
	if res.Report.IsValid {
		outcome = "valid"
	}
	recordVerification(outcome, time.Since(start).Seconds(), len(res.Text))

	switch r.FormValue("format") {
	case pipeline.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprint(w, pipeline.ToPlainText(res, true))
	case pipeline.FormatYAML:
		out, err := pipeline.ToYAML(res)
		if err != nil {
			s.writeError(w, "Failed to format result", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = fmt.Fprint(w, out)
	default:
		s.writeJSON(w, http.StatusOK, res)
	}
}

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
