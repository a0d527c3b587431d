package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"realestate-api/domain"
	"realestate-api/metrics"
	"realestate-api/service"
)

// PropertyHandler serves the property record endpoints.
type PropertyHandler struct {
	service *service.PropertyService
	logger  *zap.Logger
	metrics metrics.Recorder
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(service *service.PropertyService, logger *zap.Logger, recorder metrics.Recorder) *PropertyHandler {
	return &PropertyHandler{service: service, logger: logger, metrics: recorder}
}

// Handle dispatches /properties by method.
func (h *PropertyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (h *PropertyHandler) create(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("create property requested")
	h.metrics.Add(metrics.CreatePropertyRequests, 1)

	var req domain.PropertyCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid JSON in request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid JSON format", codeMalformedInput)
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("property validation failed", zap.Int("violations", len(verr.Fields)))
			writeValidationError(w, verr)
		case errors.Is(err, domain.ErrDuplicateAddress):
			writeError(w, http.StatusConflict, err.Error(), codeValidation)
		default:
			h.logger.Error("failed to create property", zap.Error(err))
			h.metrics.Add(metrics.CreatePropertyErrors, 1)
			writeError(w, http.StatusInternalServerError, "Failed to create property", codeInternal)
		}
		return
	}

	h.logger.Info("property created",
		zap.String("property_id", p.ID),
		zap.String("address", p.Address),
		zap.Float64("price", p.Price),
	)
	h.metrics.Add(metrics.PropertiesCreated, 1)
	writeSuccess(w, http.StatusCreated, p)
}

func (h *PropertyHandler) list(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("get properties requested")
	h.metrics.Add(metrics.GetPropertiesRequests, 1)

	query := r.URL.Query()
	filter := domain.PropertyFilter{
		Status:   query.Get("status"),
		Location: query.Get("location"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			verr := &domain.ValidationError{}
			verr.Add("limit", "must be a positive integer")
			writeValidationError(w, verr)
			return
		}
		filter.Limit = limit
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to retrieve properties", zap.Error(err))
		h.metrics.Add(metrics.GetPropertiesErrors, 1)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve properties", codeInternal)
		return
	}

	h.logger.Info("properties retrieved", zap.Int("count", list.Count))
	h.metrics.Add(metrics.PropertiesRetrieved, float64(list.Count))
	writeSuccess(w, http.StatusOK, list)
}
