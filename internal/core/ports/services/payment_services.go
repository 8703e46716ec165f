package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/dto"
)

// PaymentSvc records and lists foreign-currency payments.
type PaymentSvc interface {
	// RecordPayment snapshots the currency's current rate and stores the
	// converted base amount alongside the original amount.
	RecordPayment(ctx context.Context, hubID string, req dto.RecordPaymentRequest, userID string) (*domain.CurrencyPayment, error)

	// ListRecentPayments returns non-deleted payments newest first.
	ListRecentPayments(ctx context.Context, hubID string, limit int) ([]domain.CurrencyPayment, error)
}
