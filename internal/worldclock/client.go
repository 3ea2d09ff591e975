// Package worldclock reads the wall-clock time of a timezone from the
// worldtimeapi service.
package worldclock

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/mosdash/internal/fetch"
)

const (
	DefaultBaseURL = "http://worldtimeapi.org"
	DefaultZone    = "Europe/Moscow"
)

// Options configure a Client.
type Options struct {
	BaseURL    string
	Zone       string
	HTTPClient *http.Client
}

// Client fetches the current time of one zone. It has no credentials and
// makes exactly one attempt per call.
type Client struct {
	baseURL *url.URL
	zone    string
	http    *fetch.Client
}

// NewClient builds a Client, defaulting to Moscow on worldtimeapi.org.
func NewClient(opts Options) (*Client, error) {
	base, err := fetch.ParseBaseURL(opts.BaseURL, DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	zone := strings.Trim(strings.TrimSpace(opts.Zone), "/")
	if zone == "" {
		zone = DefaultZone
	}
	return &Client{baseURL: base, zone: zone, http: fetch.NewClient(opts.HTTPClient)}, nil
}

type zoneTime struct {
	Datetime string `json:"datetime"`
}

// Now returns the zone's current time as HH:MM.
func (c *Client) Now(ctx context.Context) fetch.Result {
	return fetch.Once(ctx, c.attempt)
}

func (c *Client) attempt(ctx context.Context, _ string) (string, error) {
	var payload zoneTime
	rel := &url.URL{Path: "/api/timezone/" + c.zone}
	if err := c.http.GetJSON(ctx, c.baseURL.ResolveReference(rel).String(), &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.Datetime) == "" {
		return "", fetch.ErrMissingData
	}
	return FormatClock(payload.Datetime)
}

// FormatClock extracts HH:MM from an ISO-8601 timestamp, keeping the
// timestamp's own offset rather than converting to local time.
func FormatClock(datetime string) (string, error) {
	ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(datetime))
	if err != nil {
		return "", fmt.Errorf("parse datetime %q: %w", datetime, err)
	}
	return ts.Format("15:04"), nil
}
