// Package ratesource implements the remote rate providers backing the
// automatic rate update run.
package ratesource

import (
	"net/http"
	"time"
)

// ECBAnchor is the reference currency of the ECB daily feed.
const ECBAnchor = "EUR"

// Default endpoints; both are overridable through configuration so tests
// can point at an httptest server.
const (
	DefaultECBFeedURL         = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
	DefaultExchangeRateAPIURL = "https://v6.exchangerate-api.com/v6"
)

// HTTPProvider fetches rates from the ECB daily feed and the
// exchangerate-api commercial endpoint. It holds no application state and
// is safe for concurrent use.
type HTTPProvider struct {
	ecbFeedURL string
	apiBaseURL string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider with the given endpoints and fetch
// timeout. Empty URLs fall back to the public defaults.
func NewHTTPProvider(ecbFeedURL, apiBaseURL string, timeout time.Duration) *HTTPProvider {
	if ecbFeedURL == "" {
		ecbFeedURL = DefaultECBFeedURL
	}
	if apiBaseURL == "" {
		apiBaseURL = DefaultExchangeRateAPIURL
	}
	return &HTTPProvider{
		ecbFeedURL: ecbFeedURL,
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}
