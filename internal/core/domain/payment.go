package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPayment records a foreign-currency payment applied to a sale.
// ExchangeRateUsed is a snapshot taken at payment time; BaseAmount is the
// original amount converted through that snapshot, never through the
// currency's live rate. CurrencyID is nullable so the payment survives a
// hard delete of its currency with amounts intact.
type CurrencyPayment struct {
	PaymentID        string          `json:"paymentID"` // Primary key (UUID)
	HubID            string          `json:"hubID"`
	SaleID           *string         `json:"saleID,omitempty"`
	CurrencyID       *string         `json:"currencyID,omitempty"`
	CurrencyCode     string          `json:"currencyCode"` // denormalized for display
	OriginalAmount   decimal.Decimal `json:"originalAmount"`   // foreign currency, rounded to its decimal places
	ExchangeRateUsed decimal.Decimal `json:"exchangeRateUsed"` // 6dp snapshot
	BaseAmount       decimal.Decimal `json:"baseAmount"`       // 2dp, base currency
	PaymentDate      time.Time       `json:"paymentDate"`
	IsDeleted        bool            `json:"isDeleted"`
	AuditFields
}
