package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Poller(t *testing.T) {
	m := New()

	m.ObservePoll(PollApplied)
	m.ObservePoll(PollApplied)
	m.ObservePoll(PollStale)
	m.ObserveAlert(1)
	m.ObserveAlert(4)
	m.SetReadyOrders(3)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues(PollApplied)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues(PollStale)), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues(PollFailed)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.AlertsTotal.WithLabelValues("single")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.AlertsTotal.WithLabelValues("aggregate")), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.ReadyOrders), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/orders", "ok", 120*time.Millisecond)
	m.ObserveToast("action", "default")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `waiter_gateway_requests_total{method="GET",outcome="ok",route="/orders"} 1`)
	assert.Contains(t, string(body), "waiter_gateway_request_duration_seconds_bucket")
	assert.Contains(t, string(body), `waiter_notification_toasts_total{kind="action",variant="default"} 1`)
}

func TestNew_IsolatedRegistries(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	a, b := New(), New()
	a.ObservePoll(PollFailed)

	assert.InDelta(t, 0.0, testutil.ToFloat64(b.PollsTotal.WithLabelValues(PollFailed)), 0)
}
