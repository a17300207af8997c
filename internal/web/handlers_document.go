package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/labelgen/internal/core"
	"github.com/JonMunkholm/labelgen/internal/logging"
	"github.com/JonMunkholm/labelgen/internal/metrics"
)

type convertRequest struct {
	// Text is the pasted tab-delimited table, header row included.
	Text string `json:"text" validate:"required"`

	// Schema and Profile select registry entries; empty uses the
	// configured defaults.
	Schema  string `json:"schema"`
	Profile string `json:"profile"`
}

// handleDocument encodes the session's records and serves the printer file
// as a download. The session is left untouched so the user can re-encode
// with a different profile.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	profileKey := s.profileOrDefault(r.URL.Query().Get("profile"))

	doc, name, err := s.service.EncodeSession(sessionID(r), profileKey)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.DocumentsTotal.WithLabelValues(profileKey).Inc()
	metrics.DocumentBytes.Observe(float64(len(doc)))

	logging.FromContext(r.Context()).Info("document encoded",
		"session_id", sessionID(r),
		"profile", profileKey,
		"bytes", len(doc),
	)
	serveDocument(w, r, doc, name)
}

// handleDocumentPreview renders the encoded document with control bytes
// replaced by readable placeholders, one command per line.
func (s *Server) handleDocumentPreview(w http.ResponseWriter, r *http.Request) {
	profileKey := s.profileOrDefault(r.URL.Query().Get("profile"))

	doc, _, err := s.service.EncodeSession(sessionID(r), profileKey)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(core.HumanReadable(doc))); err != nil {
		logging.FromContext(r.Context()).Error("preview write failed", "error", err)
	}
}

// handleConvert is the stateless one-shot conversion: paste in, printer
// file out, no session. Parse accounting travels in response headers so
// the body stays a clean download.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err, decodeStatus(err))
		return
	}
	if fields := validateStruct(req); fields != nil {
		s.respondValidationError(w, r, fields)
		return
	}

	schemaKey := s.schemaOrDefault(req.Schema)
	profileKey := s.profileOrDefault(req.Profile)

	doc, result, name, err := s.service.EncodeText(req.Text, schemaKey, profileKey)
	if err != nil {
		metrics.ParsesTotal.WithLabelValues(schemaKey, metrics.OutcomeError).Inc()
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.ParsesTotal.WithLabelValues(schemaKey, metrics.OutcomeOK).Inc()
	metrics.ParseRowsSkipped.WithLabelValues(schemaKey).Add(float64(result.Skipped))
	metrics.DocumentsTotal.WithLabelValues(profileKey).Inc()
	metrics.DocumentBytes.Observe(float64(len(doc)))

	logging.FromContext(r.Context()).Info("one-shot conversion",
		"schema", schemaKey,
		"profile", profileKey,
		"records", len(result.Records),
		"skipped", result.Skipped,
		"bytes", len(doc),
	)

	w.Header().Set("X-Parse-Records", strconv.Itoa(len(result.Records)))
	w.Header().Set("X-Parse-Skipped", strconv.Itoa(result.Skipped))
	serveDocument(w, r, doc, name)
}

// serveDocument writes printer bytes as an attachment download.
func serveDocument(w http.ResponseWriter, r *http.Request, doc []byte, name string) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	if _, err := w.Write(doc); err != nil {
		// Headers are sent; nothing to do but record it.
		logging.FromContext(r.Context()).Error("document write failed", "error", err)
	}
}
