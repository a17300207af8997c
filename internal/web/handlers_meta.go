package web

import (
	"net/http"

	"github.com/JonMunkholm/labelgen/internal/core"
	"github.com/JonMunkholm/labelgen/internal/version"
)

type healthResponse struct {
	Status string `json:"status"`
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleReadyz reports readiness. Empty registries mean the built-in schema
// or profile packages were not imported, so the service cannot do useful
// work yet.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if len(core.Schemas()) == 0 || len(core.Profiles()) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// handleVersion returns build information for deployment verification.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

// handleListSchemas returns the registered input schemas sorted by key.
func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.Schemas())
}

// handleListProfiles returns the registered format profiles sorted by key.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.Profiles())
}
