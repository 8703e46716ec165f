package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a tradable currency registered for a hub. ExchangeRate is
// expressed relative to the hub's base currency with 6 fractional digits.
// A zero rate is a valid "unconvertible" sentinel: conversions through it
// yield zero rather than dividing by zero.
type Currency struct {
	CurrencyID    string          `json:"currencyID"` // Primary key (UUID)
	HubID         string          `json:"hubID"`
	Code          string          `json:"code"` // ISO 4217, stored uppercase, unique per hub
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	DecimalPlaces int             `json:"decimalPlaces"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	IsActive      bool            `json:"isActive"`
	LastUpdated   *time.Time      `json:"lastUpdated,omitempty"`
	SortOrder     int             `json:"sortOrder"`
	IsDeleted     bool            `json:"isDeleted"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// IsConvertible reports whether the currency can participate in conversions.
func (c Currency) IsConvertible() bool {
	return !c.ExchangeRate.IsZero()
}
