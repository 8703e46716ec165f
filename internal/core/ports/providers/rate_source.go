package providers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable maps uppercase ISO 4217 codes to decimal rates.
type RateTable map[string]decimal.Decimal

// CentralBankFeed is the parsed daily table published by a central bank.
// Rates are expressed relative to the feed's own anchor currency, which is
// independent of any hub's configured base.
type CentralBankFeed struct {
	Anchor string
	Rates  RateTable
}

// RateSourceProvider fetches exchange rates from remote sources. Transport
// failures, timeouts and malformed payloads surface as errors wrapping
// apperrors.ErrProvider; implementations never mutate application state.
type RateSourceProvider interface {
	// FetchCentralBankRates retrieves the central bank's daily reference
	// table, anchored to the feed's reference currency.
	FetchCentralBankRates(ctx context.Context) (*CentralBankFeed, error)

	// FetchLatestRates retrieves rates already relative to the requested
	// base from the commercial API.
	FetchLatestRates(ctx context.Context, base, apiKey string) (RateTable, error)
}

// Clock abstracts time for testability of timestamps on mutations.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
