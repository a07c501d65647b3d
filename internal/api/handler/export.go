package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/export"
	"qa-insights-go/internal/search"
	"qa-insights-go/internal/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportItems returns the date-filtered collection, newest first.
func (h *Handlers) exportItems(w http.ResponseWriter, r *http.Request) (types.Campaign, []types.ResultItem, bool) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return "", nil, false
	}
	dr, ok := dateRange(w, r)
	if !ok {
		return "", nil, false
	}
	items, err := search.SortBy(search.FilterByDateRange(h.store.Items(c), dr), search.DefaultSort)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return "", nil, false
	}
	return c, items, true
}

// ExportCSV handles GET /api/v1/export.csv.
func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	c, items, ok := h.exportItems(w, r)
	if !ok {
		return
	}
	body := export.FormatCSV(types.Results(items))
	response.Attachment(w, "text/csv; charset=utf-8", fmt.Sprintf("%s-calls.csv", c), []byte(body))
}

// ExportXLSX handles GET /api/v1/export.xlsx.
func (h *Handlers) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	c, items, ok := h.exportItems(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, c, items); err != nil {
		h.log.WithRequest(r).WithError(err).Error("workbook export failed")
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not build workbook", nil)
		return
	}
	response.Attachment(w, xlsxContentType, fmt.Sprintf("%s-report.xlsx", c), buf.Bytes())
}
