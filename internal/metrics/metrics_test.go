package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe("iterate", "ok", 3*time.Millisecond)
	m.Observe("iterate", "ok", time.Millisecond)
	m.Observe("sample", "invalid", time.Millisecond)
	m.Iterations.Observe(14)
	m.GraphPages.Observe(4)

	body := scrape(t, m)
	assert.Contains(t, body, `linkrank_rank_requests_total{method="iterate",status="ok"} 2`)
	assert.Contains(t, body, `linkrank_rank_requests_total{method="sample",status="invalid"} 1`)
	assert.Contains(t, body, `linkrank_rank_duration_seconds_count{method="iterate"} 2`)
	assert.Contains(t, body, "linkrank_iterations_count 1")
	assert.Contains(t, body, "linkrank_graph_pages_sum 4")
}

func TestNew_TwoRegistriesDoNotClash(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(nil)
		New(nil)
	})
}
