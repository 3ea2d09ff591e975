// Package weather reads the current temperature for a city from the
// OpenWeatherMap current-weather API.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/five82/mosdash/internal/fetch"
)

const (
	DefaultBaseURL = "http://api.openweathermap.org"
	// DefaultCityID is Moscow.
	DefaultCityID = "524901"
)

// DefaultKeys are the interchangeable API keys the widget rotates through
// when the service rate-limits one of them.
var DefaultKeys = []string{
	"2c7a6d33852dd42bb9c5eaf182105696",
	"9633af91142e93ebac169b0560d54497",
	"cb978a8f6950e9c501e73872b5c90106",
}

// Options configure a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL    string
	CityID     string
	Keys       []string
	HTTPClient *http.Client
}

// Client fetches temperatures, failing over between API keys.
type Client struct {
	baseURL *url.URL
	cityID  string
	ring    *fetch.KeyRing
	http    *fetch.Client
}

// NewClient validates opts and builds a Client.
func NewClient(opts Options) (*Client, error) {
	base, err := fetch.ParseBaseURL(opts.BaseURL, DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	keys := opts.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	ring, err := fetch.NewKeyRing(keys...)
	if err != nil {
		return nil, fmt.Errorf("weather keys: %w", err)
	}
	city := strings.TrimSpace(opts.CityID)
	if city == "" {
		city = DefaultCityID
	}
	return &Client{
		baseURL: base,
		cityID:  city,
		ring:    ring,
		http:    fetch.NewClient(opts.HTTPClient),
	}, nil
}

// Keys exposes the credential ring, mainly so callers can observe the cursor.
func (c *Client) Keys() *fetch.KeyRing {
	return c.ring
}

type currentWeather struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// Temperature returns the current temperature in Celsius with one decimal.
func (c *Client) Temperature(ctx context.Context) fetch.Result {
	return fetch.WithKeys(ctx, c.ring, c.attempt)
}

func (c *Client) attempt(ctx context.Context, key string) (string, error) {
	var payload currentWeather
	if err := c.http.GetJSON(ctx, c.requestURL(key), &payload); err != nil {
		return "", err
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return "", fetch.ErrMissingData
	}
	return fmt.Sprintf("%.1f", *payload.Main.Temp), nil
}

func (c *Client) requestURL(key string) string {
	values := url.Values{}
	values.Set("id", c.cityID)
	values.Set("appid", key)
	values.Set("units", "metric")
	rel := &url.URL{Path: "/data/2.5/weather", RawQuery: values.Encode()}
	return c.baseURL.ResolveReference(rel).String()
}
