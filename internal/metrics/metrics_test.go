package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_AggregateWritten(t *testing.T) {
	m := metrics.New()

	m.AggregateWritten(&order.Order{})
	m.AggregateWritten(&order.Order{})

	assert.Contains(t, scrape(t, m), `kitchenpos_aggregates_written_total{aggregate="order.Order"} 2`)
}

func TestMetrics_MenuAuditFinished(t *testing.T) {
	m := metrics.New()

	m.MenuAuditFinished(3, nil)
	m.MenuAuditFinished(0, errors.New("database is down"))

	body := scrape(t, m)
	assert.Contains(t, body, `kitchenpos_menu_audit_runs_total{outcome="failed"} 1`)
	assert.Contains(t, body, `kitchenpos_menu_audit_runs_total{outcome="succeeded"} 1`)
	assert.Contains(t, body, `kitchenpos_menus_hidden_total 3`)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/products", http.StatusOK, 15*time.Millisecond)

	assert.Contains(t, scrape(t, m),
		`kitchenpos_http_request_duration_seconds_count{method="GET",route="/api/products",status="200"} 1`)
}
