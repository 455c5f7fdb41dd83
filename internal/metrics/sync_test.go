package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iliyamo/investor-portal/internal/model"
)

type memStore struct {
	last model.AppMetrics
	err  error
}

func (m *memStore) UpsertDaily(_ context.Context, snap model.AppMetrics) error {
	m.last = snap
	return m.err
}

func TestSyncFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"dau":2000,"mau":9000,"downloads":16000,"avg_session_sec":280,"retention_d30":40.2}`))
	}))
	defer srv.Close()

	store := &memStore{}
	s := NewSyncer(srv.URL, store)
	got, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got.Source != model.MetricsSourceAPI {
		t.Fatalf("source = %q, want %q", got.Source, model.MetricsSourceAPI)
	}
	if got.DAU != 2000 || got.MAU != 9000 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if store.last.DAU != 2000 {
		t.Fatalf("stored snapshot not the fetched one: %+v", store.last)
	}
	if got.MetricDate.IsZero() {
		t.Fatal("metric date not set")
	}
}

func TestSyncFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := &memStore{}
	s := NewSyncer(srv.URL, store)
	got, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got.Source != model.MetricsSourceFallback {
		t.Fatalf("source = %q, want fallback", got.Source)
	}
	if got.DAU != 1250 || got.MAU != 8500 || got.Downloads != 15400 || got.AvgSessionSec != 312 {
		t.Fatalf("unexpected fallback snapshot: %+v", got)
	}
	if !got.RetentionD30.Equal(FallbackRetentionD30) {
		t.Fatalf("retention = %s, want %s", got.RetentionD30, FallbackRetentionD30)
	}
}

func TestSyncFallsBackWithoutURL(t *testing.T) {
	store := &memStore{}
	s := NewSyncer("", store)
	got, err := s.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if got.Source != model.MetricsSourceFallback {
		t.Fatalf("source = %q, want fallback", got.Source)
	}
}

func TestSyncPropagatesStoreError(t *testing.T) {
	store := &memStore{err: context.DeadlineExceeded}
	s := NewSyncer("", store)
	if _, err := s.Sync(context.Background()); err == nil {
		t.Fatal("expected store error")
	}
}
