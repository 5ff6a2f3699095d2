package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goldenstack/enchantd/internal/domain"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CatalogChecker reports whether the enchantment catalog is usable.
type CatalogChecker interface {
	AllKeys() []domain.EnchantmentID
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status: "ok",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}

// HandleReadyz provides a readiness check that validates the catalog is loaded
func HandleReadyz(catalog CatalogChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(catalog.AllKeys()) == 0 {
			slog.Error("Readiness check failed", "error", "enchantment catalog is empty")

			response := HealthResponse{
				Status:  "unavailable",
				Message: "enchantment catalog is empty",
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(response)
			return
		}

		response := HealthResponse{
			Status: "ok",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}
