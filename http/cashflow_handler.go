package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"realestate-api/domain"
	"realestate-api/metrics"
	"realestate-api/service"
)

// CashFlowHandler serves the cash-flow calculation endpoint.
type CashFlowHandler struct {
	service *service.CashFlowService
	logger  *zap.Logger
	metrics metrics.Recorder
}

// NewCashFlowHandler creates a new CashFlowHandler.
func NewCashFlowHandler(service *service.CashFlowService, logger *zap.Logger, recorder metrics.Recorder) *CashFlowHandler {
	return &CashFlowHandler{service: service, logger: logger, metrics: recorder}
}

// Calculate handles POST /calculate/cash-flow.
func (h *CashFlowHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	h.logger.Info("cash flow calculation requested")
	h.metrics.Add(metrics.CashFlowCalculations, 1)

	var req domain.CashFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			h.logger.Warn("invalid request data", zap.String("field", typeErr.Field), zap.Error(err))
			verr := &domain.ValidationError{}
			verr.Add(typeErr.Field, "must be of type "+typeErr.Type.String())
			h.metrics.Add(metrics.CashFlowCalculationErrors, 1)
			writeValidationError(w, verr)
			return
		}
		h.logger.Warn("invalid JSON in request body", zap.Error(err))
		h.metrics.Add(metrics.CashFlowCalculationErrors, 1)
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body", codeMalformedInput)
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.logger.Warn("invalid request data", zap.Int("violations", len(verr.Fields)))
			h.metrics.Add(metrics.CashFlowCalculationErrors, 1)
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("cash flow calculation failed", zap.Error(err))
		h.metrics.Add(metrics.CashFlowCalculationErrors, 1)
		writeError(w, http.StatusInternalServerError, "Internal server error while calculating cash flow", codeInternal)
		return
	}

	h.logger.Info("cash flow calculation completed",
		zap.Float64("noi", result.NOI),
		zap.Float64("btcf", result.BTCF),
		zap.Float64("atcf", result.ATCF),
	)
	writeSuccess(w, http.StatusOK, result)
}
