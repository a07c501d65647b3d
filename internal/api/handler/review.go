package handler

import (
	"errors"
	"net/http"
	"strconv"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/search"
	"qa-insights-go/internal/types"
)

// Feed handles GET /api/v1/feed?q=&page=. Calls are listed newest first.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	items, err := search.SortBy(h.store.Items(c), search.DefaultSort)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	feed := search.NewFeed()
	feed.SetQuery(r.URL.Query().Get("q"))
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "page must be an integer", nil)
			return
		}
		feed.SetPage(n)
	}

	page := feed.Apply(items)
	response.Collection(w, page.Items, response.PaginationMeta{
		Page:       page.Page,
		Limit:      search.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		HasNext:    page.Page < page.TotalPages,
	})
}

// Search handles GET /api/v1/search?callId=&agent=&start=&end=&sort=&dir=.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	dr, ok := dateRange(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	rows, err := search.Review(h.store.Items(c), search.Query{
		CallID:    q.Get("callId"),
		AgentName: q.Get("agent"),
		Range:     dr,
		Sort:      types.SortConfig{Key: q.Get("sort"), Direction: types.ParseSortDirection(q.Get("dir"), types.Ascending)},
	})
	if errors.Is(err, search.ErrUnknownSortKey) {
		response.Error(w, http.StatusBadRequest, "INVALID_SORT", err.Error(), search.SortKeys())
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}
	response.JSON(w, rows)
}
