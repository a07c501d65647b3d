package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/logger"
	"qa-insights-go/internal/processor"
	"qa-insights-go/internal/search"
	"qa-insights-go/internal/store"
	"qa-insights-go/internal/types"
)

// Ingestor analyzes uploaded transcripts.
type Ingestor interface {
	Process(ctx context.Context, campaign types.Campaign, fileName, transcript string) (types.ResultItem, error)
	ProcessBatch(ctx context.Context, campaign types.Campaign, uploads []processor.Upload) []processor.BatchResult
}

// Highlighter produces dashboard highlights for a campaign summary.
type Highlighter interface {
	Highlights(ctx context.Context, campaign types.Campaign, summary types.AnalyticsSummary) ([]types.Highlight, error)
}

// Handlers serves the QA insights API for one default campaign; a
// ?campaign= query parameter selects another.
type Handlers struct {
	store      *store.Store
	ingestor   Ingestor
	highlights Highlighter
	campaign   types.Campaign
	log        *logger.Logger
}

func New(s *store.Store, ing Ingestor, hl Highlighter, campaign types.Campaign, log *logger.Logger) *Handlers {
	return &Handlers{store: s, ingestor: ing, highlights: hl, campaign: campaign, log: log.Component("api")}
}

// campaign resolves the request's campaign, writing a 400 when it is unknown.
func (h *Handlers) campaignOf(w http.ResponseWriter, r *http.Request) (types.Campaign, bool) {
	c := h.campaign
	if q := r.URL.Query().Get("campaign"); q != "" {
		c = types.Campaign(q)
	}
	if !c.Valid() {
		response.Error(w, http.StatusBadRequest, "INVALID_CAMPAIGN", "campaign must be internet_cable or banking", nil)
		return "", false
	}
	return c, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
		return false
	}
	return true
}

// dateRange parses ?start= and ?end=, writing a 400 on bad input.
func dateRange(w http.ResponseWriter, r *http.Request) (search.DateRange, bool) {
	dr, err := search.ParseDateRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_DATE", err.Error(), nil)
		return search.DateRange{}, false
	}
	return dr, true
}

// storeError maps store sentinel errors onto HTTP responses.
func (h *Handlers) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Error(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, store.ErrDuplicateCallID), errors.Is(err, store.ErrDuplicateHash),
		errors.Is(err, store.ErrReviewedByOther):
		response.Error(w, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, store.ErrStepOutOfRange), errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrMissingHash):
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	default:
		h.log.WithRequest(r).WithError(err).Error("store failure")
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	response.JSON(w, map[string]any{
		"status":   "ok",
		"campaign": c,
		"calls":    h.store.Len(c),
	})
}

// pathParam returns a decoded URL parameter.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if d, err := url.PathUnescape(v); err == nil {
		return d
	}
	return v
}
