package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPayment mirrors the currency_payments table. CurrencyID is
// nullable so the row survives a hard delete of its currency.
type CurrencyPayment struct {
	PaymentID        string          `json:"paymentID"`
	HubID            string          `json:"hubID"`
	SaleID           *string         `json:"saleID"`
	CurrencyID       *string         `json:"currencyID"`
	CurrencyCode     string          `json:"currencyCode"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	ExchangeRateUsed decimal.Decimal `json:"exchangeRateUsed"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
	PaymentDate      time.Time       `json:"paymentDate"`
	IsDeleted        bool            `json:"isDeleted"`
	AuditFields
}
