package repositories

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
)

// RateHistoryReader defines read operations for the rate audit trail.
// There is deliberately no writer facade here: history rows are appended
// inside the currency repository's transactions so a rate mutation and its
// audit entry commit or roll back together.
type RateHistoryReader interface {
	// ListRateHistory returns history entries newest first, optionally
	// filtered by currency code. limit <= 0 falls back to a default cap.
	ListRateHistory(ctx context.Context, hubID string, currencyCode *string, limit int) ([]domain.ExchangeRateHistory, error)
}

// RateHistoryRepositoryFacade combines rate history repository interfaces.
type RateHistoryRepositoryFacade interface {
	RateHistoryReader
}
