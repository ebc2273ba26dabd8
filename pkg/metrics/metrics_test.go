package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) []*dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	assert.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()
		}
	}
	return nil
}

func label(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestWrapCountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg, "catalog_service")

	h := m.Wrap("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("missing") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/9?missing=1", nil))

	counts := map[string]float64{}
	for _, metric := range gather(t, reg, "catalog_service_requests_total") {
		check.Equal(t, "/api/products/{id}", label(metric, "endpoint"))
		counts[label(metric, "status")] = metric.GetCounter().GetValue()
	}
	check.Equal(t, map[string]float64{"200": 2, "404": 1}, counts)

	latency := gather(t, reg, "catalog_service_request_duration_seconds")
	assert.Equal(t, 1, len(latency))
	check.Equal(t, uint64(3), latency[0].GetHistogram().GetSampleCount())
}

func TestGaugeIsNamespaced(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg, "tradein_service")

	g := m.Gauge("quotes_total", "Quotes stored")
	g.Set(3)

	metrics := gather(t, reg, "tradein_service_quotes_total")
	assert.Equal(t, 1, len(metrics))
	check.Equal(t, 3.0, metrics[0].GetGauge().GetValue())
}
