package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	quote *Quote
	err   error
	calls int
}

func (p *countingProvider) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	p.calls++
	return p.quote, p.err
}

func setupCacheTest(t *testing.T, inner Provider, ttl time.Duration) (*CachedProvider, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &CachedProvider{Inner: inner, Rdb: rdb, TTL: ttl}, mr
}

func TestCachedProvider_ServesSecondLookupFromCache(t *testing.T) {
	inner := &countingProvider{quote: &Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("190.10")}}
	p, _ := setupCacheTest(t, inner, 30*time.Second)

	q1, err := p.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)
	q2, err := p.Lookup(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, q1.Symbol, q2.Symbol)
	assert.Equal(t, "190.10", q2.Price.StringFixed(2))
}

func TestCachedProvider_ExpiresAfterTTL(t *testing.T) {
	inner := &countingProvider{quote: &Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("190.10")}}
	p, mr := setupCacheTest(t, inner, 30*time.Second)

	_, err := p.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)
	mr.FastForward(31 * time.Second)
	_, err = p.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_UnknownSymbolNotCached(t *testing.T) {
	inner := &countingProvider{quote: nil}
	p, _ := setupCacheTest(t, inner, 30*time.Second)

	q, err := p.Lookup(context.Background(), "ZZZZ")
	assert.NoError(t, err)
	assert.Nil(t, q)
	_, _ = p.Lookup(context.Background(), "ZZZZ")
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_ErrorsPassThrough(t *testing.T) {
	inner := &countingProvider{err: errors.New("down")}
	p, _ := setupCacheTest(t, inner, 30*time.Second)

	q, err := p.Lookup(context.Background(), "AAPL")
	assert.Nil(t, q)
	assert.Error(t, err)
}

func TestCachedProvider_ZeroTTLBypassesCache(t *testing.T) {
	inner := &countingProvider{quote: &Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("190.10")}}
	p, _ := setupCacheTest(t, inner, 0)

	_, _ = p.Lookup(context.Background(), "AAPL")
	_, _ = p.Lookup(context.Background(), "AAPL")
	assert.Equal(t, 2, inner.calls)
}
