package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware("test"))
	r.Post("/ticks/{key}/toggle", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, key := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ticks/"+key+"/toggle", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}

	got := testutil.ToFloat64(httpRequests.WithLabelValues("test", http.MethodPost, "/ticks/{key}/toggle", "202"))
	assert.Equal(t, float64(2), got)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(searches.WithLabelValues(OutcomeSuppressed))
	RecordSearch(OutcomeSuppressed)
	assert.Equal(t, before+1, testutil.ToFloat64(searches.WithLabelValues(OutcomeSuppressed)))

	passBefore := testutil.ToFloat64(verdicts.WithLabelValues("pass"))
	RecordVerdicts(2, 1)
	assert.Equal(t, passBefore+2, testutil.ToFloat64(verdicts.WithLabelValues("pass")))

	SetActiveSessions(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(activeSessions))
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordRun(OutcomeOK)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "interviewdeck_playground_runs_total"))
}
