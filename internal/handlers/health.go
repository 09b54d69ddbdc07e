package handlers

import (
	"net/http"
	"runtime"
	"time"

	"media-picker/internal/logging"
	"media-picker/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	ActiveSessions int    `json:"activeSessions"`
	TempDir        string `json:"tempDir"`
	OwnedFiles     int    `json:"ownedFiles"`
	OwnedBytes     int64  `json:"ownedBytes"`
	TempDirError   string `json:"tempDirError,omitempty"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. An unreadable temp
// directory degrades the status but still answers 200.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:         statusHealthy,
		Version:        startup.Version,
		Uptime:         time.Since(h.started).Round(time.Second).String(),
		ActiveSessions: h.plugin.ActiveSessions(),
		TempDir:        h.temp.Dir(),
		GoVersion:      runtime.Version(),
		NumCPU:         runtime.NumCPU(),
		NumGoroutine:   runtime.NumGoroutine(),
	}

	stats, err := h.temp.GetStats()
	if err != nil {
		logging.Warn("Health check could not read temp directory: %v", err)
		response.Status = statusDegraded
		response.TempDirError = err.Error()
	} else {
		response.OwnedFiles = stats.OwnedFiles
		response.OwnedBytes = stats.OwnedBytes
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 only when the temp directory can be listed
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	if _, err := h.temp.GetStats(); err != nil {
		writeJSONError(w, "not_ready", http.StatusServiceUnavailable)
		return
	}
	writeJSONStatus(w, "ready")
}
