package eop

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/star/astroframe/internal/metrics"
)

// Default IERS data-center URLs per offset kind.
const (
	defaultURLIAU1980 = "https://datacenter.iers.org/data/7/finals.all"
	defaultURLIAU2000 = "https://datacenter.iers.org/data/9/finals2000A.all"
)

// maxBodyBytes caps bulletin downloads at 50 MB.
const maxBodyBytes int64 = 50 * 1024 * 1024

// Fetcher retrieves raw Earth-orientation bulletin data from a remote source.
type Fetcher struct {
	sourceURL  string
	httpClient *http.Client
}

// NewFetcher creates a Fetcher for the given source URL. An empty URL
// selects the IERS data-center default for the given kind.
func NewFetcher(sourceURL string, kind Kind) *Fetcher {
	if sourceURL == "" {
		if kind == IAU2000 {
			sourceURL = defaultURLIAU2000
		} else {
			sourceURL = defaultURLIAU1980
		}
	}
	return &Fetcher{
		sourceURL: sourceURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SourceURL returns the configured source URL.
func (f *Fetcher) SourceURL() string {
	return f.sourceURL
}

// Fetch performs an HTTP GET to retrieve the raw bulletin file.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	start := time.Now()
	body, err := f.fetch(ctx)
	metrics.RecordEOPFetch(time.Since(start), err == nil)
	return body, err
}

func (f *Fetcher) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching EOP data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, f.sourceURL)
	}

	// finals.all is a few MB; anything near the cap is not a bulletin.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > maxBodyBytes {
		return nil, fmt.Errorf("response from %s exceeds %d byte limit", f.sourceURL, maxBodyBytes)
	}

	return body, nil
}
