package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"qa-insights-go/internal/types"
	"qa-insights-go/internal/types/fixtures"
)

func feedItems(n int) []types.ResultItem {
	rs := make([]types.AnalysisResult, n)
	for i := range rs {
		agent := "Ana"
		if i%2 == 1 {
			agent = "Ben"
		}
		rs[i] = fixtures.InternetCable(agent, fmt.Sprintf("C%02d", i), 1, 1, 1)
	}
	return fixtures.Items(rs...)
}

func TestPaginate(t *testing.T) {
	items := feedItems(12)

	p := Paginate(items, 1, PageSize)
	assert.Equal(t, []string{"C00", "C01", "C02", "C03", "C04"}, callIDs(p.Items))
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 12, p.Total)

	p = Paginate(items, 3, PageSize)
	assert.Equal(t, []string{"C10", "C11"}, callIDs(p.Items))

	p = Paginate(items, 9, PageSize)
	assert.Equal(t, 3, p.Page, "clamped to last page")

	p = Paginate(items, 0, PageSize)
	assert.Equal(t, 1, p.Page)

	p = Paginate(nil, 2, PageSize)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestFeed_QueryResetsPage(t *testing.T) {
	items := feedItems(12)
	f := NewFeed()

	f.SetPage(3)
	assert.Equal(t, 3, f.Apply(items).Page)

	f.SetQuery("ben")
	p := f.Apply(items)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 6, p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, "ben", f.Query())
}

func TestFeed_NoMatchOnLaterPage(t *testing.T) {
	f := NewFeed()
	f.SetQuery("nobody")
	f.SetPage(3)

	p := f.Apply(feedItems(12))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Total)
	assert.Empty(t, p.Items)
}
