package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goldenstack/enchantd/internal/logger"
)

// ValidationErrorResponse carries per-field messages for a rejected request.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeValid decodes the JSON body into dst and runs struct validation.
// When it returns false the error response has already been written and the
// handler should return immediately.
func decodeValid(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", op), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return false
	}
	log.Debug(fmt.Sprintf("%s request decoded", op))

	if err := GetValidator().ValidateStruct(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// requiredQuery fetches a query parameter that must be present. When it
// returns false the error response has already been written.
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", name))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, name), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// queryDefault fetches an optional query parameter, falling back when absent.
func queryDefault(r *http.Request, name, fallback string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}
	return fallback
}
