package middleware

import (
	"net/http"
	"runtime/debug"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithRequest(r).
						WithField("panic", err).
						WithField("stack", string(debug.Stack())).
						Error("panic recovered")
					response.Error(w, http.StatusInternalServerError,
						"INTERNAL_ERROR", "An unexpected error occurred", nil)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
