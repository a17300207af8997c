package web

import (
	"net/http"

	"github.com/JonMunkholm/labelgen/internal/logging"
	"github.com/JonMunkholm/labelgen/internal/metrics"
)

type parseRequest struct {
	// Text is the pasted tab-delimited table, header row included.
	Text string `json:"text" validate:"required"`

	// Schema selects the input schema; empty uses the configured default.
	Schema string `json:"schema"`
}

// handleCreateSession starts an empty session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	view := s.service.CreateSession()
	metrics.SessionsActive.Set(float64(s.service.SessionCount()))

	logging.FromContext(r.Context()).Info("session created", "session_id", view.ID)
	writeJSON(w, http.StatusCreated, view)
}

// handleGetSession returns the session and its records.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.Session(sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleDeleteSession destroys a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteSession(sessionID(r)); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	metrics.SessionsActive.Set(float64(s.service.SessionCount()))

	logging.FromContext(r.Context()).Info("session deleted", "session_id", sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

// handleParse parses pasted table text into the session and returns the
// parse result: appended records plus the skipped-row accounting the
// client shows the user.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err, decodeStatus(err))
		return
	}
	if fields := validateStruct(req); fields != nil {
		s.respondValidationError(w, r, fields)
		return
	}

	schemaKey := s.schemaOrDefault(req.Schema)
	result, err := s.service.ParseInto(sessionID(r), req.Text, schemaKey)
	if err != nil {
		metrics.ParsesTotal.WithLabelValues(schemaKey, metrics.OutcomeError).Inc()
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.ParsesTotal.WithLabelValues(schemaKey, metrics.OutcomeOK).Inc()
	metrics.ParseRowsSkipped.WithLabelValues(schemaKey).Add(float64(result.Skipped))

	logging.FromContext(r.Context()).Info("paste parsed",
		"session_id", sessionID(r),
		"schema", schemaKey,
		"records", len(result.Records),
		"skipped", result.Skipped,
	)
	writeJSON(w, http.StatusOK, result)
}
