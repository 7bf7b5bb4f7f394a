package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ethpandaops/test-runs/internal/results"
)

// timeNow abstracts time for tests.
var timeNow = time.Now

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": timeNow().UTC().Format(time.RFC3339),
	})
}

// handleListTestRuns returns every result summary, newest first.
func (s *Server) handleListTestRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.catalog.List(r.Context())
	if err != nil {
		s.log.WithError(err).Error("error reading test results")
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// handleGetTestRun echoes a single result document.
// Missing, unreadable, malformed and rejected names are all reported as not found.
func (s *Server) handleGetTestRun(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	doc, err := s.catalog.Get(r.Context(), filename)
	if err != nil {
		entry := s.log.WithError(err).WithField("filename", filename)
		if errors.Is(err, results.ErrInvalidFilename) {
			entry.Warn("rejected test result filename")
		} else {
			entry.Debug("error reading test result")
		}

		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
