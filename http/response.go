package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"realestate-api/domain"
)

// Error codes surfaced in the error envelope.
const (
	codeMalformedInput = "MALFORMED_INPUT"
	codeValidation     = "VALIDATION_ERROR"
	codeNotFound       = "NOT_FOUND"
	codeInternal       = "INTERNAL_ERROR"
)

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Message   string              `json:"message"`
	Code      string              `json:"code,omitempty"`
	Timestamp string              `json:"timestamp"`
	Details   []domain.FieldError `json:"details,omitempty"`
}

// writeJSON encodes into a buffer first so no header is written if
// encoding fails.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-Api-Key")
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorEnvelope{
		Error: errorBody{
			Message:   message,
			Code:      code,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{
		Error: errorBody{
			Message:   "Invalid request data",
			Code:      codeValidation,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Details:   verr.Fields,
		},
	})
}
