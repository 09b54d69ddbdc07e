package handlers

import (
	"net/http"
	"time"

	"media-picker/internal/session"
	"media-picker/internal/tempfiles"

	"github.com/gorilla/mux"
)

type Handlers struct {
	plugin  *session.Plugin
	temp    *tempfiles.Manager
	started time.Time
}

func New(plugin *session.Plugin, temp *tempfiles.Manager) *Handlers {
	return &Handlers{
		plugin:  plugin,
		temp:    temp,
		started: time.Now(),
	}
}

// Register adds every route served by h to router.
func (h *Handlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet).Name("health")
	router.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet).Name("healthz")
	router.HandleFunc("/livez", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead).Name("livez")
	router.HandleFunc("/readyz", h.ReadinessCheck).Methods(http.MethodGet).Name("readyz")
	router.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet).Name("version")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/{action}", h.Command).Methods(http.MethodPost).Name("command")
}
