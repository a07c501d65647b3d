package search

import "qa-insights-go/internal/types"

// PageSize is the data feed page size.
const PageSize = 5

type Page struct {
	Items      []types.ResultItem `json:"items"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	Total      int                `json:"total"`
}

// Paginate slices items into 1-based pages. The page is clamped into range.
func Paginate(items []types.ResultItem, page, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if page < 1 {
		page = 1
	}
	switch {
	case pages == 0:
		page = 1
	case page > pages:
		page = pages
	}
	start := (page - 1) * size
	end := min(start+size, total)
	return Page{
		Items:      clone(items[start:end]),
		Page:       page,
		TotalPages: pages,
		Total:      total,
	}
}

// Feed holds the data feed view state.
type Feed struct {
	query string
	page  int
}

func NewFeed() *Feed {
	return &Feed{page: 1}
}

// SetQuery changes the search text and returns to the first page.
func (f *Feed) SetQuery(q string) {
	f.query = q
	f.page = 1
}

func (f *Feed) SetPage(p int) { f.page = p }

func (f *Feed) Query() string { return f.query }

// Apply filters and paginates items, remembering the clamped page.
func (f *Feed) Apply(items []types.ResultItem) Page {
	p := Paginate(FilterByText(items, f.query, FeedFields), f.page, PageSize)
	f.page = p.Page
	return p
}
