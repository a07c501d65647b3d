package actionable

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qa-insights-go/internal/cache"
	"qa-insights-go/internal/logger"
	"qa-insights-go/internal/types"
)

// HighlightSource writes highlights for a summary; the LLM client is one.
type HighlightSource interface {
	Highlights(ctx context.Context, campaign types.Campaign, summary types.AnalyticsSummary) ([]types.Highlight, error)
}

// Highlighter serves dashboard highlights, generating them only when the
// campaign's call count has changed since the last generation.
type Highlighter struct {
	source HighlightSource
	store  cache.Cache
	ttl    time.Duration
	log    *logger.Logger
}

// NewHighlighter wraps source. A nil store disables reuse.
func NewHighlighter(source HighlightSource, store cache.Cache, ttl time.Duration, log *logger.Logger) *Highlighter {
	return &Highlighter{source: source, store: store, ttl: ttl, log: log.Component("highlights")}
}

// Highlights returns highlights for the summary. An empty collection has none
// and never reaches the source. Cache failures are logged, not returned.
func (h *Highlighter) Highlights(ctx context.Context, campaign types.Campaign, summary types.AnalyticsSummary) ([]types.Highlight, error) {
	if summary.TotalCalls == 0 {
		return []types.Highlight{}, nil
	}
	key := cache.HighlightsKey(campaign, summary.TotalCalls)
	log := h.log.WithField("campaign", campaign).WithField("total_calls", summary.TotalCalls)

	if h.store != nil {
		raw, ok, err := h.store.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warn("highlights cache read failed")
		}
		if ok {
			var saved []types.Highlight
			if err := json.Unmarshal(raw, &saved); err == nil {
				return saved, nil
			}
			log.Warn("discarding unreadable cached highlights")
		}
	}

	out, err := h.source.Highlights(ctx, campaign, summary)
	if err != nil {
		return nil, fmt.Errorf("generate highlights: %w", err)
	}

	if h.store != nil {
		raw, err := json.Marshal(out)
		if err == nil {
			err = h.store.Set(ctx, key, raw, h.ttl)
		}
		if err != nil {
			log.WithError(err).Warn("highlights cache write failed")
		}
	}
	return out, nil
}
