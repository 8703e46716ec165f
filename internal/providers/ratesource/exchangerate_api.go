package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// exchangeRateAPIResponse matches the exchangerate-api v6 "latest" payload.
type exchangeRateAPIResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// FetchLatestRates retrieves rates relative to the requested base from
// exchangerate-api. A non-success payload is a provider error for the
// whole run.
func (p *HTTPProvider) FetchLatestRates(ctx context.Context, base, apiKey string) (providers.RateTable, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", p.apiBaseURL, apiKey, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build API request: %v", apperrors.ErrProvider, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch API rates: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API returned status %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var apiResp exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode API response: %v", apperrors.ErrProvider, err)
	}

	if apiResp.Result != "success" {
		errorType := apiResp.ErrorType
		if errorType == "" {
			errorType = "unknown"
		}
		return nil, fmt.Errorf("%w: API returned error: %s", apperrors.ErrProvider, errorType)
	}

	rates := make(providers.RateTable, len(apiResp.ConversionRates))
	for code, rate := range apiResp.ConversionRates {
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
