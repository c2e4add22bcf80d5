package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/pkg/errors"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	service calendar.Service
	logger  *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service calendar.Service, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check that the system zone loads from the zone database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	zone, err := h.service.SystemZone(ctx)
	if err == nil {
		_, err = h.service.ToLocal(ctx, calendar.InstantQuery{Instant: "1970-01-01T00:00:00Z", Zone: zone})
	}
	if err != nil {
		h.logger.ErrorWithErr(err, "Zone database check failed")
		utils.WriteError(w, errors.ServiceUnavailable("Zone database unavailable"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ready",
		"zone":   zone,
	})
}
