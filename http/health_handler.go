package http

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"realestate-api/metrics"
	"realestate-api/service"
)

const serviceName = "real-estate-observability-api"

const dbPingTimeout = 2 * time.Second

// HealthHandler serves the health check and the root welcome endpoint.
type HealthHandler struct {
	service     *service.PropertyService
	logger      *zap.Logger
	metrics     metrics.Recorder
	environment string
	region      string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service *service.PropertyService, logger *zap.Logger, recorder metrics.Recorder, environment, region string) *HealthHandler {
	return &HealthHandler{
		service:     service,
		logger:      logger,
		metrics:     recorder,
		environment: environment,
		region:      region,
	}
}

// Handle serves GET / and GET /health. A failing store degrades the
// database block but never fails the endpoint.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}
	if r.URL.Path != "/" && r.URL.Path != "/health" {
		writeError(w, http.StatusNotFound, "Resource not found", codeNotFound)
		return
	}

	h.logger.Info("health check requested", zap.String("path", r.URL.Path))
	h.metrics.Add(metrics.HealthCheckRequests, 1)

	data := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
		"region":      h.region,
		"service":     serviceName,
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		h.logger.Warn("database health check failed", zap.Error(err))
		h.metrics.Add(metrics.DatabaseHealthCheckFailed, 1)
		data["database"] = map[string]string{"status": "unhealthy"}
	} else {
		data["database"] = map[string]string{"status": "healthy"}
	}

	if r.URL.Path == "/" {
		data["message"] = "Welcome to Real Estate Observability API"
		data["endpoints"] = map[string]string{
			"health":     "/health",
			"properties": "/properties",
			"cash_flow":  "/calculate/cash-flow",
		}
	}

	writeSuccess(w, http.StatusOK, data)
}
