package web

import (
	"net/http"

	"github.com/JonMunkholm/labelgen/internal/metrics"
)

type addRecordRequest struct {
	Code        string `json:"code" validate:"required,max=64"`
	Description string `json:"description" validate:"required,max=200"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

type setQuantityRequest struct {
	// Quantity is a pointer so an omitted field fails validation instead
	// of silently becoming zero.
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// handleAddRecord appends a manually entered record to the session.
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var req addRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err, decodeStatus(err))
		return
	}
	if fields := validateStruct(req); fields != nil {
		s.respondValidationError(w, r, fields)
		return
	}

	rec, err := s.service.AddRecord(sessionID(r), req.Code, req.Description, req.Quantity)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.RecordOps.WithLabelValues(metrics.OpAdd).Inc()
	writeJSON(w, http.StatusCreated, rec)
}

// handleSetQuantity changes the label quantity of one record.
func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err, decodeStatus(err))
		return
	}
	if fields := validateStruct(req); fields != nil {
		s.respondValidationError(w, r, fields)
		return
	}

	rec, err := s.service.SetQuantity(sessionID(r), recordID(r), *req.Quantity)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.RecordOps.WithLabelValues(metrics.OpUpdate).Inc()
	writeJSON(w, http.StatusOK, rec)
}

// handleRemoveRecord deletes one record from the session.
func (s *Server) handleRemoveRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.service.RemoveRecord(sessionID(r), recordID(r)); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.RecordOps.WithLabelValues(metrics.OpRemove).Inc()
	w.WriteHeader(http.StatusNoContent)
}

// handleClearRecords empties the session without destroying it.
func (s *Server) handleClearRecords(w http.ResponseWriter, r *http.Request) {
	if err := s.service.ClearRecords(sessionID(r)); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	metrics.RecordOps.WithLabelValues(metrics.OpClear).Inc()
	w.WriteHeader(http.StatusNoContent)
}
