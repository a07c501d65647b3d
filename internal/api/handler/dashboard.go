package handler

import (
	"errors"
	"net/http"

	"qa-insights-go/internal/actionable"
	"qa-insights-go/internal/aggregator"
	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/search"
	"qa-insights-go/internal/types"
)

type dashboardResponse struct {
	Metrics       types.DashboardMetrics `json:"metrics"`
	RedFlags      []types.RedFlag        `json:"redFlags"`
	Commendations []types.Commendation   `json:"commendations"`
	Drivers       types.DriverBreakdown  `json:"drivers"`
	CallTypes     []string               `json:"callTypes"`
	Driver        string                 `json:"driver"`
}

// filtered applies the dashboard's date range and call-driver filters. It
// returns the full collection and the filtered view.
func (h *Handlers) filtered(w http.ResponseWriter, r *http.Request) (all, view []types.ResultItem, driver string, ok bool) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return nil, nil, "", false
	}
	dr, ok := dateRange(w, r)
	if !ok {
		return nil, nil, "", false
	}
	driver = r.URL.Query().Get("driver")
	if driver == "" {
		driver = search.AllDrivers
	}
	all = h.store.Items(c)
	view = search.FilterByCallType(search.FilterByDateRange(all, dr), driver)
	return all, view, driver, true
}

// Dashboard handles GET /api/v1/dashboard?start=&end=&driver=&sort=&dir=.
// The driver table covers the filtered view when no driver is selected and
// the whole collection otherwise, so the selected driver can be compared.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	all, view, driver, ok := h.filtered(w, r)
	if !ok {
		return
	}
	records := types.Results(view)

	driverSource := view
	if driver != search.AllDrivers {
		driverSource = all
	}
	drivers := aggregator.BuildDriverMetrics(types.Results(driverSource))

	if key := r.URL.Query().Get("sort"); key != "" {
		cfg := types.SortConfig{Key: key, Direction: types.ParseSortDirection(r.URL.Query().Get("dir"), types.Ascending)}
		sorted, err := aggregator.SortDriverMetrics(drivers.Data, cfg)
		if errors.Is(err, aggregator.ErrUnknownDriverColumn) {
			response.Error(w, http.StatusBadRequest, "INVALID_SORT", err.Error(), aggregator.DriverColumns())
			return
		}
		drivers.Data = sorted
	}

	response.JSON(w, dashboardResponse{
		Metrics:       aggregator.GenerateDashboardMetrics(records),
		RedFlags:      actionable.FindRedFlags(records),
		Commendations: actionable.FindCommendations(records),
		Drivers:       drivers,
		CallTypes:     search.CallTypes(all),
		Driver:        driver,
	})
}

// ReasonCalls handles GET /api/v1/dashboard/reasons/{reason}.
func (h *Handlers) ReasonCalls(w http.ResponseWriter, r *http.Request) {
	_, view, _, ok := h.filtered(w, r)
	if !ok {
		return
	}
	response.JSON(w, search.ByReason(view, pathParam(r, "reason")))
}

// DriverCalls handles GET /api/v1/dashboard/drivers/{driver}.
func (h *Handlers) DriverCalls(w http.ResponseWriter, r *http.Request) {
	_, view, _, ok := h.filtered(w, r)
	if !ok {
		return
	}
	response.JSON(w, search.ByCallType(view, pathParam(r, "driver")))
}

// Highlights handles GET /api/v1/dashboard/highlights. They summarize the
// whole collection and ignore the dashboard filters.
func (h *Handlers) Highlights(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	summary := aggregator.GenerateDashboardMetrics(types.Results(h.store.Items(c))).AnalyticsSummary
	out, err := h.highlights.Highlights(r.Context(), c, summary)
	if err != nil {
		h.log.WithRequest(r).WithError(err).Warn("highlights failed")
		response.Error(w, http.StatusBadGateway, "HIGHLIGHTS_FAILED", "Could not generate highlights", nil)
		return
	}
	response.JSON(w, out)
}
