package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qa-insights-go/internal/types"
)

// AnalysisCache stores analysis results by campaign and content hash.
// It is passed explicitly to whoever needs it; there is no package-level instance.
type AnalysisCache struct {
	store Cache
	ttl   time.Duration
}

// NewAnalysisCache wraps store. A ttl of zero keeps entries until evicted.
func NewAnalysisCache(store Cache, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{store: store, ttl: ttl}
}

func (c *AnalysisCache) Get(ctx context.Context, campaign types.Campaign, contentHash string) (types.AnalysisResult, bool, error) {
	raw, ok, err := c.store.Get(ctx, AnalysisKey(campaign, contentHash))
	if err != nil || !ok {
		return types.AnalysisResult{}, false, err
	}
	var r types.AnalysisResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return types.AnalysisResult{}, false, fmt.Errorf("decode cached analysis %s: %w", contentHash, err)
	}
	return r, true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, campaign types.Campaign, contentHash string, r types.AnalysisResult) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode analysis %s: %w", contentHash, err)
	}
	return c.store.Set(ctx, AnalysisKey(campaign, contentHash), raw, c.ttl)
}
