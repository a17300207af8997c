// Package web provides HTTP handlers for the label document service.
// This file contains shared utilities used across handlers.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes a JSON request body into dst. A body cut off by the
// size limiter surfaces with its own message so MapError can name it.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return fmt.Errorf("request body too large: limit %d bytes: %w", maxBytes.Limit, err)
	}
	return fmt.Errorf("invalid request body: %w", err)
}

// decodeStatus picks the status code for a body decode failure.
func decodeStatus(err error) int {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// sessionID returns the sessionID route parameter.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}

// recordID returns the recordID route parameter.
func recordID(r *http.Request) string {
	return chi.URLParam(r, "recordID")
}

// schemaOrDefault falls back to the configured default schema key.
func (s *Server) schemaOrDefault(key string) string {
	if key == "" {
		return s.cfg.Defaults.Schema
	}
	return key
}

// profileOrDefault falls back to the configured default profile key.
func (s *Server) profileOrDefault(key string) string {
	if key == "" {
		return s.cfg.Defaults.Profile
	}
	return key
}
