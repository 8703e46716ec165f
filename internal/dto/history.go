package dto

import (
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateHistoryResponse is one audit entry in the rate change log.
type RateHistoryResponse struct {
	HistoryID    string          `json:"historyID"`
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	RecordedAt   time.Time       `json:"recordedAt"`
}

// ToListRateHistoryResponse converts domain history entries to DTOs.
func ToListRateHistoryResponse(entries []domain.ExchangeRateHistory) []RateHistoryResponse {
	res := make([]RateHistoryResponse, len(entries))
	for i, e := range entries {
		res[i] = RateHistoryResponse{
			HistoryID:    e.HistoryID,
			CurrencyCode: e.CurrencyCode,
			Rate:         e.Rate,
			Source:       string(e.Source),
			RecordedAt:   e.RecordedAt,
		}
	}
	return res
}
