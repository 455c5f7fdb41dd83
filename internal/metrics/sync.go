// Package metrics implements the daily app-usage sync: one attempt
// against the external analytics API, a hardcoded fallback snapshot on
// any failure, and an upsert of exactly one row keyed by the current
// calendar date. There is deliberately no retry, backoff or backfill.
package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/model"
)

// Fallback snapshot, substituted whenever the analytics API cannot be
// reached or answers with anything but 200.
var (
	FallbackDAU           = int64(1250)
	FallbackMAU           = int64(8500)
	FallbackDownloads     = int64(15400)
	FallbackAvgSessionSec = int64(312)
	FallbackRetentionD30  = decimal.RequireFromString("42.5")
)

// Store persists a daily snapshot. Implemented by repository.MetricsRepo.
type Store interface {
	UpsertDaily(ctx context.Context, m model.AppMetrics) error
}

// Syncer pulls a snapshot from the analytics endpoint and stores it.
type Syncer struct {
	URL    string
	Client *http.Client
	Store  Store
}

// NewSyncer builds a Syncer with the 8 second request timeout the sync
// runs with in production.
func NewSyncer(url string, store Store) *Syncer {
	return &Syncer{
		URL:    url,
		Client: &http.Client{Timeout: 8 * time.Second},
		Store:  store,
	}
}

// apiSnapshot is the analytics endpoint's response body.
type apiSnapshot struct {
	DAU           int64           `json:"dau"`
	MAU           int64           `json:"mau"`
	Downloads     int64           `json:"downloads"`
	AvgSessionSec int64           `json:"avg_session_sec"`
	RetentionD30  decimal.Decimal `json:"retention_d30"`
}

// Sync fetches today's snapshot and upserts it. The returned metrics
// report Source so callers can tell whether the fallback was used. Only
// a storage failure is an error; an upstream failure is absorbed by the
// fallback.
func (s *Syncer) Sync(ctx context.Context) (model.AppMetrics, error) {
	m := s.fetch(ctx)
	m.MetricDate = time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.Store.UpsertDaily(ctx, m); err != nil {
		return m, fmt.Errorf("store metrics: %w", err)
	}
	return m, nil
}

// fetch performs the single API attempt and falls back on any failure.
func (s *Syncer) fetch(ctx context.Context) model.AppMetrics {
	if s.URL == "" {
		return fallback()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return fallback()
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fallback()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallback()
	}
	var snap apiSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return fallback()
	}
	return model.AppMetrics{
		DAU:           snap.DAU,
		MAU:           snap.MAU,
		Downloads:     snap.Downloads,
		AvgSessionSec: snap.AvgSessionSec,
		RetentionD30:  snap.RetentionD30,
		Source:        model.MetricsSourceAPI,
	}
}

func fallback() model.AppMetrics {
	return model.AppMetrics{
		DAU:           FallbackDAU,
		MAU:           FallbackMAU,
		Downloads:     FallbackDownloads,
		AvgSessionSec: FallbackAvgSessionSec,
		RetentionD30:  FallbackRetentionD30,
		Source:        model.MetricsSourceFallback,
	}
}
