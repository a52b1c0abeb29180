package media

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ia2amp/misc"
)

const defaultFetchTimeout = 10 * time.Second

// HTTPFetcher downloads media and probes its size.
type HTTPFetcher struct {
	client *http.Client
	limit  int64
}

// NewHTTPFetcher creates fetcher with request timeout and read limit.
func NewHTTPFetcher(timeout time.Duration, limit int64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}, limit: limit}
}

// Fetch downloads url and probes its dimensions.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Dimensions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Dimensions{}, err
	}
	req.Header.Set("User-Agent", misc.GetAppName()+"/"+misc.GetVersion())

	resp, err := f.client.Do(req)
	if err != nil {
		return Dimensions{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Dimensions{}, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return Probe(resp.Body, f.limit)
}
