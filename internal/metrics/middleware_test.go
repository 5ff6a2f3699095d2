package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatusCaptureRecordsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	capture := &statusCapture{ResponseWriter: rec, status: http.StatusOK}

	capture.WriteHeader(http.StatusNotFound)

	if capture.status != http.StatusNotFound {
		t.Errorf("captured status %d, want %d", capture.status, http.StatusNotFound)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("underlying recorder got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRoutePatternUsesChiPattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)

	var pattern string
	r.Get("/api/v1/enchantments/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		pattern = routePattern(req)
	})

	req := httptest.NewRequest("GET", "/api/v1/enchantments/mending", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if pattern != "/api/v1/enchantments/{id}" {
		t.Errorf("routePattern = %q, want the chi pattern", pattern)
	}
}

func TestRoutePatternFallsBackToPath(t *testing.T) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	if got := routePattern(req); got != "/metrics" {
		t.Errorf("routePattern = %q, want /metrics", got)
	}
}

func TestMiddlewareCountsRequests(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	counter := HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/enchant", "201")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest("POST", "/api/v1/enchant", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("middleware altered the response status: %d", rec.Code)
	}
	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("request counter went from %v to %v, want +1", before, after)
	}
}
