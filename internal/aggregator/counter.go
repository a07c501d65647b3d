package aggregator

import (
	"sort"

	"qa-insights-go/internal/types"
)

// counter is a frequency map that remembers first-seen order so ranking
// ties resolve deterministically.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) len() int { return len(c.order) }

// ranked returns keys by count descending, ties in first-seen order.
func (c *counter) ranked() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

func (c *counter) labelValues() []types.LabelValue {
	out := make([]types.LabelValue, 0, c.len())
	for _, k := range c.ranked() {
		out = append(out, types.LabelValue{Label: k, Value: c.counts[k]})
	}
	return out
}

func (c *counter) reasonCounts() []types.ReasonCount {
	out := make([]types.ReasonCount, 0, c.len())
	for _, k := range c.ranked() {
		out = append(out, types.ReasonCount{Reason: k, Count: c.counts[k]})
	}
	return out
}

func (c *counter) top() *string {
	if c.len() == 0 {
		return nil
	}
	k := c.ranked()[0]
	return &k
}

func sortStableDesc[T any](s []T, key func(T) float64) {
	sort.SliceStable(s, func(i, j int) bool { return key(s[i]) > key(s[j]) })
}
