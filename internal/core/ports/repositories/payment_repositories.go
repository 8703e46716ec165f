package repositories

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
)

// PaymentReader defines read operations for currency payments.
type PaymentReader interface {
	// ListPayments returns non-deleted payments newest first.
	ListPayments(ctx context.Context, hubID string, limit int) ([]domain.CurrencyPayment, error)

	// HasPaymentsForCurrency reports whether any non-deleted payment still
	// references the currency. Guards soft deletion.
	HasPaymentsForCurrency(ctx context.Context, hubID, currencyID string) (bool, error)
}

// PaymentWriter defines write operations for currency payments.
type PaymentWriter interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.CurrencyPayment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
