package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"busyness.nyctaxi.org/internal/metrics"
)

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped handler status, got %d", rr.Code)
	}

	expected := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"Cache-Control":           "no-store, no-cache, must-revalidate",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'self'; frame-ancestors 'none'",
	}
	for header, want := range expected {
		if got := rr.Header().Get(header); got != want {
			t.Errorf("Header %s = %q, want %q", header, got, want)
		}
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("Expected a UUID request id, got %q", id)
		}
		if seen != id {
			t.Errorf("Expected context id %q, got %q", id, seen)
		}
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if got := rr.Header().Get(RequestIDHeader); got != incoming {
			t.Errorf("Expected incoming id %q, got %q", incoming, got)
		}
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if got := rr.Header().Get(RequestIDHeader); got == "<script>" {
			t.Error("Expected malformed id to be replaced")
		}
	})

	if RequestIDFromContext(context.Background()) != "" {
		t.Error("Expected empty id for a bare context")
	}
}

func TestInstrument(t *testing.T) {
	handler := Instrument("/instrumented", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	labels := map[string]string{"route": "/instrumented", "method": "GET", "status": "400"}
	before, err := metrics.ReadCounterVec(metrics.HTTPRequests, labels)
	if err != nil {
		t.Fatalf("Failed to read counter: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/instrumented?x=1", nil))

	after, err := metrics.ReadCounterVec(metrics.HTTPRequests, labels)
	if err != nil {
		t.Fatalf("Failed to read counter: %v", err)
	}
	if after-before != 1 {
		t.Errorf("Expected counter to increase by 1, got %v", after-before)
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 to pass through, got %d", rr.Code)
	}
}

func TestCachedPromHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "cached_test_gauge", Help: "test"})
	registry.MustRegister(gauge)
	gauge.Set(7)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := NewCachedPromHandler(ctx, registry, time.Hour)

	// Cached output does not see this change until the next refresh.
	gauge.Set(8)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "cached_test_gauge 7") {
		t.Errorf("Expected cached gauge value 7 in body, got %q", body)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text/plain content type, got %q", ct)
	}

	handler.refresh()
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rr.Body.String(), "cached_test_gauge 8") {
		t.Errorf("Expected refreshed gauge value 8, got %q", rr.Body.String())
	}
}
