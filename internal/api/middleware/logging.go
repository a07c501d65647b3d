package middleware

import (
	"net/http"
	"time"

	"qa-insights-go/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestID makes sure every request carries an X-Request-ID and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := logger.RequestID(r)
		r.Header.Set(logger.RequestIDHeader, id)
		w.Header().Set(logger.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// Logger logs one line per request with its status and latency.
func Logger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			entry := log.WithRequest(r).
				WithField("status", rec.status).
				WithField("duration_ms", time.Since(start).Milliseconds())
			if rec.status >= http.StatusInternalServerError {
				entry.Error("request")
				return
			}
			entry.Info("request")
		})
	}
}
