package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePass(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ObservePass("test_ok", PassCounts{Applied: 3, Missed: 1, BuffsReplaced: 2}, time.Millisecond, nil)

		assert.Equal(t, 1.0, testutil.ToFloat64(OverridePasses.WithLabelValues("test_ok", StatusSuccess)))
		assert.Equal(t, 3.0, testutil.ToFloat64(OverrideEntries.WithLabelValues("test_ok", OutcomeApplied)))
		assert.Equal(t, 1.0, testutil.ToFloat64(OverrideEntries.WithLabelValues("test_ok", OutcomeMissed)))
		assert.Equal(t, 0.0, testutil.ToFloat64(OverrideEntries.WithLabelValues("test_ok", OutcomeUnmatched)))
		assert.Equal(t, 2.0, testutil.ToFloat64(OverrideBuffLists.WithLabelValues("test_ok")))
	})

	t.Run("failure still records partial counts", func(t *testing.T) {
		ObservePass("test_err", PassCounts{Applied: 1}, time.Millisecond, errors.New("boom"))

		assert.Equal(t, 1.0, testutil.ToFloat64(OverridePasses.WithLabelValues("test_err", StatusError)))
		assert.Equal(t, 0.0, testutil.ToFloat64(OverridePasses.WithLabelValues("test_err", StatusSuccess)))
		assert.Equal(t, 1.0, testutil.ToFloat64(OverrideEntries.WithLabelValues("test_err", OutcomeApplied)))
	})
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/test/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/test/items/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/test/items/{id}", "418")))
	assert.Equal(t, 0.0, testutil.ToFloat64(HTTPRequestsInFlight))
}
