package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVsTraderFetcher_FetchBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bars" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		q := r.URL.Query()
		if q.Get("symbol") != "SPX500" || q.Get("interval") != "1d" || q.Get("period") != "1mo" {
			t.Errorf("unexpected query %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"timestamp":1704067200,"open":10,"high":11,"low":9,"close":10.5,"volume":100},
			{"timestamp":1704153600,"open":10.5,"high":12,"low":10,"close":11.5,"volume":120}
		]`))
	}))
	defer srv.Close()

	f := NewVsTraderFetcher(srv.URL, "secret", "")
	bars, err := f.FetchBars(context.Background(), "SPX500", "1mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[1].Close != 11.5 || bars[1].Time.Unix() != 1704153600 {
		t.Errorf("unexpected bar %+v", bars[1])
	}
}

func TestVsTraderFetcher_WeeklyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("interval") == "1wk" {
			http.Error(w, "weekly not supported", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		// Mon 2024-01-01 .. Tue 2024-01-09
		w.Write([]byte(`[
			{"timestamp":1704067200,"open":10,"high":11,"low":9,"close":10,"volume":1},
			{"timestamp":1704153600,"open":10,"high":13,"low":9,"close":12,"volume":1},
			{"timestamp":1704758400,"open":12,"high":14,"low":11,"close":13,"volume":1}
		]`))
	}))
	defer srv.Close()

	f := NewVsTraderFetcher(srv.URL, "", "")
	bars, err := f.FetchBars(context.Background(), "SPX500", "3mo", "1wk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 weekly bars, got %d", len(bars))
	}
	if bars[0].High != 13 || bars[0].Close != 12 {
		t.Errorf("unexpected first week %+v", bars[0])
	}
}

func TestVsTraderFetcher_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewVsTraderFetcher(srv.URL, "", "")
	if _, err := f.FetchBars(context.Background(), "X", "1y", "1d"); err == nil {
		t.Fatal("expected error on 503")
	}
}
