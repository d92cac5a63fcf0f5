package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(Metrics(WithRegistry(reg), WithNamespace("testapp")))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	for i := 0; i < 3; i++ {
		resp, err := http.Get(srv.URL + "/items/7")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		resp.Body.Close()
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	var found bool
	for _, mf := range families {
		if mf.GetName() != "testapp_http_requests_total" {
			continue
		}
		found = true
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] != "/items/{id}" {
				t.Errorf("route label = %q, want pattern /items/{id}", labels["route"])
			}
			if labels["status"] != "200" {
				t.Errorf("status label = %q, want 200", labels["status"])
			}
			if got := m.GetCounter().GetValue(); got != 3 {
				t.Errorf("counter = %v, want 3", got)
			}
		}
	}
	if !found {
		t.Error("requests_total not registered")
	}
}

func TestMetricsRecordsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(Metrics(WithRegistry(reg)))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/boom")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	families, _ := reg.Gather()
	var sawStatus string
	for _, mf := range families {
		if mf.GetName() != "reactor_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "status" {
					sawStatus = lp.GetValue()
				}
			}
		}
	}
	if sawStatus != "500" {
		t.Errorf("status label = %q, want 500", sawStatus)
	}
}

func TestOpenTelemetryPassesThrough(t *testing.T) {
	// No tracer provider installed: spans are no-ops, the handler must
	// still run and the filter must be honored.
	var served int
	h := OpenTelemetry(
		WithRequestFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/healthz")
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, path := range []string{"/", "/healthz"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNoContent {
			t.Errorf("GET %s status = %d, want 204", path, rec.Code)
		}
	}
	if served != 2 {
		t.Errorf("served = %d, want 2", served)
	}
}

func TestStatusRecorderDefaultsTo200(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.Write([]byte("hello"))

	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.status)
	}
	if rec.written != 5 {
		t.Errorf("written = %d, want 5", rec.written)
	}
}
