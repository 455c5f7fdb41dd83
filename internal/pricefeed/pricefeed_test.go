package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateFromAPI(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rate":95.10}`))
	}))
	defer srv.Close()

	f := New(srv.URL, nil)
	q := f.Rate(context.Background())
	if q.Source != "api" {
		t.Fatalf("source = %q, want api", q.Source)
	}
	if q.Rate.String() != "95.1" {
		t.Fatalf("rate = %s, want 95.1", q.Rate)
	}

	// Second call within the TTL must be served from cache.
	f.Rate(context.Background())
	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1", calls)
	}
}

func TestRateFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := New(srv.URL, nil)
	q := f.Rate(context.Background())
	if q.Source != "fallback" {
		t.Fatalf("source = %q, want fallback", q.Source)
	}
	if !q.Rate.Equal(FallbackRate) {
		t.Fatalf("rate = %s, want %s", q.Rate, FallbackRate)
	}
}

func TestRateFallsBackWithoutURL(t *testing.T) {
	f := New("", nil)
	q := f.Rate(context.Background())
	if q.Source != "fallback" || !q.Rate.Equal(FallbackRate) {
		t.Fatalf("unexpected quote: %+v", q)
	}
}
