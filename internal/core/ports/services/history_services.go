package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
)

// HistorySvc reads the append-only rate change log.
type HistorySvc interface {
	// ListHistory returns entries newest first, optionally filtered by
	// currency code.
	ListHistory(ctx context.Context, hubID string, currencyCode *string, limit int) ([]domain.ExchangeRateHistory, error)
}
