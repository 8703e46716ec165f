package dto

import (
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to register a currency.
// The code is normalized to uppercase by the service.
type CreateCurrencyRequest struct {
	Code          string          `json:"code" binding:"required,alpha,len=3"`
	Name          string          `json:"name" binding:"required,max=100"`
	Symbol        string          `json:"symbol" binding:"required,max=10"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"decimalgte0"`
	DecimalPlaces *int            `json:"decimalPlaces" binding:"omitempty,gte=0"`
	SortOrder     int             `json:"sortOrder" binding:"gte=0"`
}

// UpdateCurrencyRequest defines a full edit of a currency. A history entry
// is recorded only when the exchange rate actually changes.
type UpdateCurrencyRequest struct {
	Code          string          `json:"code" binding:"required,alpha,len=3"`
	Name          string          `json:"name" binding:"required,max=100"`
	Symbol        string          `json:"symbol" binding:"required,max=10"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"decimalgte0"`
	DecimalPlaces int             `json:"decimalPlaces" binding:"gte=0"`
	SortOrder     int             `json:"sortOrder" binding:"gte=0"`
	IsActive      bool            `json:"isActive"`
}

// UpdateRateRequest carries an explicit administrative rate update.
type UpdateRateRequest struct {
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    string          `json:"currencyID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	DecimalPlaces int             `json:"decimalPlaces"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	IsActive      bool            `json:"isActive"`
	LastUpdated   *time.Time      `json:"lastUpdated,omitempty"`
	SortOrder     int             `json:"sortOrder"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    c.CurrencyID,
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		ExchangeRate:  c.ExchangeRate,
		IsActive:      c.IsActive,
		LastUpdated:   c.LastUpdated,
		SortOrder:     c.SortOrder,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
