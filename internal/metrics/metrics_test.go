package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWatch(t *testing.T) {
	m := New("test")

	m.RecordWatch(OutcomeBilled, 5, 2*time.Millisecond)
	m.RecordWatch(OutcomeBilled, 3, time.Millisecond)
	m.RecordWatch(OutcomeRepeat, 0, time.Millisecond)
	m.RecordWatch(OutcomeNoCampaign, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.watchRequests.WithLabelValues(OutcomeBilled)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.watchRequests.WithLabelValues(OutcomeRepeat)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.watchRequests.WithLabelValues(OutcomeNoCampaign)))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.billedAmount))
	assert.Equal(t, 3, testutil.CollectAndCount(m.watchTimer))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New("test"), New("test")
	a.RecordWatch(OutcomeError, 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.watchRequests.WithLabelValues(OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.watchRequests.WithLabelValues(OutcomeError)))
}

func TestHandlerExposition(t *testing.T) {
	m := New("adrelay")
	m.RecordWatch(OutcomeBilled, 5, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `adrelay_watch_requests_total{outcome="billed"} 1`), body)
	assert.Contains(t, body, "adrelay_billed_amount_total 5")
}
