// Package pricefeed serves the USDT exchange rate shown next to the
// pledge form. Quotes are cached for five minutes, in Redis when a
// client is available and in process otherwise, and a hardcoded
// fallback rate keeps the endpoint answering when the upstream is down.
package pricefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	cacheKey = "pricefeed:usdt"
	cacheTTL = 5 * time.Minute
)

// FallbackRate is served when no live quote can be fetched.
var FallbackRate = decimal.RequireFromString("92.50")

// Quote is a single USDT rate with its provenance.
type Quote struct {
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Feed fetches and caches USDT quotes.
type Feed struct {
	URL    string
	Client *http.Client
	Redis  *redis.Client

	mu    sync.Mutex
	local Quote
	until time.Time
}

// New builds a Feed. rdb may be nil, in which case the cache lives in
// process memory only.
func New(url string, rdb *redis.Client) *Feed {
	return &Feed{
		URL:    url,
		Client: &http.Client{Timeout: 8 * time.Second},
		Redis:  rdb,
	}
}

// Rate returns the current USDT quote, serving from cache when the last
// fetch is under five minutes old.
func (f *Feed) Rate(ctx context.Context) Quote {
	if q, ok := f.cached(ctx); ok {
		return q
	}
	q := f.fetch(ctx)
	f.store(ctx, q)
	return q
}

func (f *Feed) cached(ctx context.Context) (Quote, bool) {
	if f.Redis != nil {
		raw, err := f.Redis.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var q Quote
			if json.Unmarshal(raw, &q) == nil {
				return q, true
			}
		}
		return Quote{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if time.Now().Before(f.until) {
		return f.local, true
	}
	return Quote{}, false
}

func (f *Feed) store(ctx context.Context, q Quote) {
	if f.Redis != nil {
		if raw, err := json.Marshal(q); err == nil {
			f.Redis.Set(ctx, cacheKey, raw, cacheTTL)
		}
		return
	}
	f.mu.Lock()
	f.local = q
	f.until = time.Now().Add(cacheTTL)
	f.mu.Unlock()
}

// fetch performs one upstream attempt and falls back on any failure.
func (f *Feed) fetch(ctx context.Context) Quote {
	now := time.Now().UTC()
	if f.URL == "" {
		return Quote{Rate: FallbackRate, Source: "fallback", FetchedAt: now}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return Quote{Rate: FallbackRate, Source: "fallback", FetchedAt: now}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return Quote{Rate: FallbackRate, Source: "fallback", FetchedAt: now}
	}
	defer resp.Body.Close()
	var body struct {
		Rate decimal.Decimal `json:"rate"`
	}
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&body) != nil || body.Rate.IsZero() {
		return Quote{Rate: FallbackRate, Source: "fallback", FetchedAt: now}
	}
	return Quote{Rate: body.Rate, Source: "api", FetchedAt: now}
}
