package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err, statusCode)
//  3. Error is mapped via core.MapError to get user-friendly message
//  4. Technical error + context is logged with request ID for correlation
//  5. User message is rendered as JSON

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/labelgen/internal/core"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Action  string            `json:"action,omitempty"`
	Code    string            `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondError handles error responses with user-friendly messages.
// It logs the technical error server-side and returns the mapped message
// as JSON.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	// Get request ID for correlation
	requestID := middleware.GetReqID(r.Context())

	// Log the technical error with context
	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", requestID,
	)

	writeJSON(w, statusCode, ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// respondValidationError renders per-field validation failures. The field
// map is the user message here, so it bypasses the pattern table.
func (s *Server) respondValidationError(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	slog.Warn("request validation failed",
		"path", r.URL.Path,
		"method", r.Method,
		"fields", fields,
		"request_id", middleware.GetReqID(r.Context()),
	)

	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Message: "The request has missing or invalid fields",
		Action:  "Correct the listed fields and resubmit",
		Code:    "REQ004",
		Fields:  fields,
	})
}

// statusForError maps service errors to HTTP status codes. Handlers use it
// when one call can fail for several reasons.
func statusForError(err error) int {
	var missing *core.MissingColumnError
	var mismatch *core.ProfileMismatchError

	switch {
	case errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrNoValidRows):
		return http.StatusUnprocessableEntity

	case errors.Is(err, core.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, core.ErrSessionFull):
		return http.StatusConflict

	case errors.Is(err, core.ErrInsufficientRows),
		errors.Is(err, core.ErrUnknownSchema),
		errors.Is(err, core.ErrUnknownProfile),
		errors.Is(err, core.ErrInvalidQuantity),
		errors.Is(err, core.ErrEmptyField),
		errors.As(err, &missing),
		errors.As(err, &mismatch):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
