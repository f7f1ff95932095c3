package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsByStatusClass(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/bookings", http.StatusOK, 5*time.Millisecond)
	m.Observe(http.MethodGet, "/api/bookings", http.StatusOK, 5*time.Millisecond)
	m.Observe(http.MethodPost, "/api/chat/messages", http.StatusInternalServerError, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/bookings", "2xx")); got != 2 {
		t.Fatalf("expected 2 GET requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/chat/messages", "5xx")); got != 1 {
		t.Fatalf("expected 1 failed POST, got %v", got)
	}
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("", "", http.StatusOK, time.Millisecond)
}
