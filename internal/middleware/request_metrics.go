package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/olivermegias/trainingtop/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// statusRecorder remembers the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(statusCode int) {
	sr.status = statusCode
	sr.ResponseWriter.WriteHeader(statusCode)
}

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			metricsManager.HistogramRequestDuration.
				With(prometheus.Labels{"method": r.Method}).
				Observe(time.Since(start).Seconds())
			metricsManager.CounterRequests.With(prometheus.Labels{
				"method": r.Method,
				"status": strconv.Itoa(recorder.status),
			}).Inc()
		})
	}
}
