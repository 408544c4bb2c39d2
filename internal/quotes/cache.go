package quotes

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cachePrefix = "quote:"

// CachedProvider is a read-through Redis cache in front of another Provider.
// Quotes are only held for TTL, so valuations can be at most that stale.
// Unknown symbols are not cached. Cache failures fall through to the inner
// provider rather than failing the lookup.
type CachedProvider struct {
	Inner Provider
	Rdb   *redis.Client
	TTL   time.Duration
}

func (p *CachedProvider) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	if p.TTL <= 0 || p.Rdb == nil {
		return p.Inner.Lookup(ctx, symbol)
	}

	key := cachePrefix + strings.ToUpper(symbol)
	if b, err := p.Rdb.Get(ctx, key).Bytes(); err == nil {
		var q Quote
		if err := json.Unmarshal(b, &q); err == nil {
			return &q, nil
		}
	}

	q, err := p.Inner.Lookup(ctx, symbol)
	if err != nil || q == nil {
		return q, err
	}

	b, _ := json.Marshal(q)
	if err := p.Rdb.Set(ctx, key, b, p.TTL).Err(); err != nil {
		log.Warn().Err(err).Str("symbol", q.Symbol).Msg("quote cache write failed")
	}
	return q, nil
}
