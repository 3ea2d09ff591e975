package worldclock

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/five82/mosdash/internal/fetch"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestNow_ParsesDatetime(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"abbreviation":"MSK","datetime":"2024-03-05T07:09:41.123456+03:00","timezone":"Europe/Moscow"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	res := c.Now(ctx)
	if !res.OK() {
		t.Fatalf("Now error = %v", res.Err)
	}
	if res.Value != "07:09" {
		t.Fatalf("Now = %q, want 07:09", res.Value)
	}
	if gotPath != "/api/timezone/Europe/Moscow" {
		t.Fatalf("path = %q, want /api/timezone/Europe/Moscow", gotPath)
	}
}

func TestNow_MissingDatetime(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timezone":"Europe/Moscow"}`))
	})

	res := c.Now(context.Background())
	if !errors.Is(res.Err, fetch.ErrMissingData) {
		t.Fatalf("Now error = %v, want ErrMissingData", res.Err)
	}
}

func TestNow_StatusIsSingleAttemptFailure(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "busy", http.StatusServiceUnavailable)
	})

	res := c.Now(context.Background())
	if !fetch.IsStatus(res.Err) {
		t.Fatalf("Now error = %v, want status error", res.Err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestFormatClock(t *testing.T) {
	got, err := FormatClock("2024-12-31T23:59:00+03:00")
	if err != nil || got != "23:59" {
		t.Fatalf("FormatClock = %q, %v; want 23:59", got, err)
	}
	if _, err := FormatClock("yesterday"); err == nil || !strings.Contains(err.Error(), "parse datetime") {
		t.Fatalf("FormatClock error = %v, want parse datetime error", err)
	}
}
