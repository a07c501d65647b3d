package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"qa-insights-go/internal/api/handler"
	mw "qa-insights-go/internal/api/middleware"
	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/logger"
)

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(h *handler.Handlers, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger(log))
	r.Use(mw.Recovery(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Post("/analyze", h.Analyze)
		r.Post("/analyze/batch", h.AnalyzeBatch)

		r.Get("/dashboard", h.Dashboard)
		r.Get("/dashboard/highlights", h.Highlights)
		r.Get("/dashboard/reasons/{reason}", h.ReasonCalls)
		r.Get("/dashboard/drivers/{driver}", h.DriverCalls)

		r.Get("/feed", h.Feed)
		r.Get("/search", h.Search)

		r.Route("/calls/{hash}", func(r chi.Router) {
			r.Get("/", h.Call)
			r.Put("/note", h.SetNote)
			r.Post("/reviewed", h.ToggleReviewed)
			r.Put("/troubleshooting/{step}", h.SetTroubleshooting)
			r.Get("/report", h.Report)
		})

		r.Get("/export.csv", h.ExportCSV)
		r.Get("/export.xlsx", h.ExportXLSX)
	})

	return r
}
