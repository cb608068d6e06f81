package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name string
	p    pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler checking the database and the
// session cache. A nil cache is skipped.
func NewHealthHandler(db, cache pinger, version string) *HealthHandler {
	h := &HealthHandler{version: version}
	h.components = append(h.components, component{name: "database", p: db})
	if cache != nil {
		h.components = append(h.components, component{name: "cache", p: cache})
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. 200 if every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	for _, c := range h.components {
		if err := c.p.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	overallStatus := "ok"

	for _, c := range h.components {
		start := time.Now()
		err := c.p.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[c.name] = CompStatus{Status: "down"}
			overallStatus = "down"
			continue
		}
		components[c.name] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
