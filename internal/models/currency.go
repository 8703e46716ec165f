package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyID    string          `json:"currencyID"`
	HubID         string          `json:"hubID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	DecimalPlaces int             `json:"decimalPlaces"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	IsActive      bool            `json:"isActive"`
	LastUpdated   *time.Time      `json:"lastUpdated"`
	SortOrder     int             `json:"sortOrder"`
	IsDeleted     bool            `json:"isDeleted"`
	DeletedAt     *time.Time      `json:"deletedAt"`
	AuditFields
}
