package server

import (
	"encoding/json"
	"log"
	"net/http"

	"grabctl/pkg/config"
	"grabctl/pkg/downloads"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: code, Details: details}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

type Handler struct {
	manager *downloads.Manager
	cfg     config.AppConfig
}

func NewHandler(manager *downloads.Manager, cfg config.AppConfig) *Handler {
	return &Handler{
		manager: manager,
		cfg:     cfg,
	}
}

// VersionHandler godoc
// @Summary Get grabctl version
// @Description Returns the version of the grabctl server
// @Tags version
// @Produces text/plain
// @Success 200 {string} string "Version information"
// @Router /version [get]
func (h *Handler) VersionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("Version: " + h.cfg.Version + "\n")); err != nil {
			log.Printf("Failed to write version response: %v", err)
		}
	}
}
