package handlers

import (
	"context"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks,omitempty"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	version string
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, checks: checks, timeout: 5 * time.Second}
}

// GetOverallHealth godoc
// @Summary Service health
// @Description Pings the document store, the SQL store and the cache.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetOverallHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Service: "fluxx-sales-api",
		Version: h.version,
		Checks:  make(map[string]HealthCheck, len(h.checks)),
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	allHealthy := true
	for name, p := range h.checks {
		start := time.Now()
		err := p.Ping(ctx)
		check := HealthCheck{Status: "healthy", Latency: time.Since(start).String()}
		if err != nil {
			allHealthy = false
			check.Status = "unhealthy"
			check.Error = err.Error()
		}
		response.Checks[name] = check
	}

	code := http.StatusOK
	response.Status = "healthy"
	if !allHealthy {
		code = http.StatusServiceUnavailable
		response.Status = "unhealthy"
	}
	respondWithJSON(w, code, response)
}
