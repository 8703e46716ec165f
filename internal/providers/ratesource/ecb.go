package ratesource

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// ecbEnvelope matches the eurofxref-daily XML document. Only the currency
// cubes are of interest.
type ecbEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Cube    struct {
		Cube struct {
			Time  string    `xml:"time,attr"`
			Cubes []ecbCube `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

type ecbCube struct {
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// FetchCentralBankRates retrieves the ECB daily reference table. All rates
// are EUR-anchored regardless of any hub's configured base.
func (p *HTTPProvider) FetchCentralBankRates(ctx context.Context) (*providers.CentralBankFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ecbFeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build ECB request: %v", apperrors.ErrProvider, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch ECB rates: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ECB feed returned status %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var envelope ecbEnvelope
	if err := xml.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode ECB feed: %v", apperrors.ErrProvider, err)
	}

	rates := make(providers.RateTable, len(envelope.Cube.Cube.Cubes))
	for _, cube := range envelope.Cube.Cube.Cubes {
		if cube.Currency == "" {
			continue
		}
		rate, err := decimal.NewFromString(cube.Rate)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed ECB rate %q for %s", apperrors.ErrProvider, cube.Rate, cube.Currency)
		}
		rates[strings.ToUpper(cube.Currency)] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: ECB feed contained no rates", apperrors.ErrProvider)
	}

	return &providers.CentralBankFeed{Anchor: ECBAnchor, Rates: rates}, nil
}
