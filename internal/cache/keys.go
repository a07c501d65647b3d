package cache

import (
	"fmt"

	"qa-insights-go/internal/types"
)

// AnalysisKey scopes a transcript's content hash to its campaign; the same
// transcript is analyzed differently per campaign.
func AnalysisKey(campaign types.Campaign, contentHash string) string {
	return fmt.Sprintf("analysis:%s:%s", campaign, contentHash)
}

// HighlightsKey ties generated highlights to the collection size they were
// generated for, so new calls invalidate them.
func HighlightsKey(campaign types.Campaign, totalCalls int) string {
	return fmt.Sprintf("highlights:%s:%d", campaign, totalCalls)
}
