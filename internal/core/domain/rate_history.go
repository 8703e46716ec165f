package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateHistory is an append-only audit record of a rate change.
// Entries are never updated; the only removal path is a cascade when the
// parent currency is hard-deleted.
type ExchangeRateHistory struct {
	HistoryID    string          `json:"historyID"` // Primary key (UUID)
	HubID        string          `json:"hubID"`
	CurrencyID   string          `json:"currencyID"`
	CurrencyCode string          `json:"currencyCode"` // denormalized for display
	Rate         decimal.Decimal `json:"rate"`
	Source       RateSource      `json:"source"`
	RecordedAt   time.Time       `json:"recordedAt"`
}
