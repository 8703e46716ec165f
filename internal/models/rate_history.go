package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateHistory mirrors the exchange_rate_history table. Rows are
// insert-only; there is no update path.
type ExchangeRateHistory struct {
	HistoryID    string          `json:"historyID"`
	HubID        string          `json:"hubID"`
	CurrencyID   string          `json:"currencyID"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	RecordedAt   time.Time       `json:"recordedAt"`
}
