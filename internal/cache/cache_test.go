package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-insights-go/internal/cache"
	"qa-insights-go/internal/types"
	"qa-insights-go/internal/types/fixtures"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCache_Miss(t *testing.T) {
	_, ok, err := cache.NewMemoryCache().Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_CopiesValues(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	v := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", v, 0))
	v[0] = 'z'

	got, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := cache.NewRedisCache("not a url")
	assert.Error(t, err)
}

func TestAnalysisKey(t *testing.T) {
	assert.Equal(t, "analysis:banking:abc", cache.AnalysisKey(types.CampaignBanking, "abc"))
	assert.NotEqual(t,
		cache.AnalysisKey(types.CampaignBanking, "abc"),
		cache.AnalysisKey(types.CampaignInternetCable, "abc"))
}

func TestAnalysisCache_Roundtrip(t *testing.T) {
	ctx := context.Background()
	ac := cache.NewAnalysisCache(cache.NewMemoryCache(), 0)
	r := fixtures.Banking("Ana", "C-1", 80, 70)

	require.NoError(t, ac.Set(ctx, types.CampaignBanking, "h1", r))

	got, ok, err := ac.Get(ctx, types.CampaignBanking, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, got)

	_, ok, err = ac.Get(ctx, types.CampaignInternetCable, "h1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnalysisCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache()
	require.NoError(t, store.Set(ctx, cache.AnalysisKey(types.CampaignBanking, "h1"), []byte("{"), 0))

	_, ok, err := cache.NewAnalysisCache(store, 0).Get(ctx, types.CampaignBanking, "h1")
	assert.Error(t, err)
	assert.False(t, ok)
}
