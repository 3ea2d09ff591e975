package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "mosdash/0.1"
	requestTimeout   = 10 * time.Second
)

// Client issues GET requests against JSON APIs and classifies failures.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient wraps hc, or a client with a fixed timeout when hc is nil.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: requestTimeout}
	}
	return &Client{http: hc, userAgent: defaultUserAgent}
}

// GetJSON fetches rawURL and decodes the body into dest.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: redact(req.URL)}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// unwrapURLError drops the "Get <url>:" prefix so credentials in the query
// never reach the screen.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}

func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Host + u.Path
}

// ParseBaseURL normalises a host or URL into a base with no path, query or
// fragment. A bare host gets an http scheme.
func ParseBaseURL(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
