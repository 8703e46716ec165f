package dto

import (
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertResult is the outcome of a conversion between two currencies.
// Rate is the informational composite rate; the computation itself always
// pivots through the hub's base currency.
type ConvertResult struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Result decimal.Decimal `json:"result"`
	Rate   decimal.Decimal `json:"rate"`
}

// RateEntry is one currency's row in the rates listing served to the POS
// frontend.
type RateEntry struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate"`
	DecimalPlaces int             `json:"decimal_places"`
	LastUpdated   *time.Time      `json:"last_updated"`
}

// RatesResponse lists current rates for all active currencies of a hub.
type RatesResponse struct {
	BaseCurrency string      `json:"base_currency"`
	Rates        []RateEntry `json:"rates"`
}

// ToRatesResponse builds the rates listing from the hub base and its
// active currencies.
func ToRatesResponse(baseCurrency string, currencies []domain.Currency) RatesResponse {
	rates := make([]RateEntry, len(currencies))
	for i, c := range currencies {
		rates[i] = RateEntry{
			Code:          c.Code,
			Name:          c.Name,
			Symbol:        c.Symbol,
			ExchangeRate:  c.ExchangeRate,
			DecimalPlaces: c.DecimalPlaces,
			LastUpdated:   c.LastUpdated,
		}
	}
	return RatesResponse{BaseCurrency: baseCurrency, Rates: rates}
}
