package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/poshub/multicurrency/internal/core/domain"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
)

// HistoryService reads the append-only rate change log. History survives
// soft deletion of its currency; purging happens only on hard delete.
type HistoryService struct {
	historyRepo portsrepo.RateHistoryReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo portsrepo.RateHistoryReader) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// ListHistory returns entries newest first, optionally filtered by currency
// code.
func (s *HistoryService) ListHistory(ctx context.Context, hubID string, currencyCode *string, limit int) ([]domain.ExchangeRateHistory, error) {
	if currencyCode != nil {
		upper := strings.ToUpper(*currencyCode)
		currencyCode = &upper
	}

	entries, err := s.historyRepo.ListRateHistory(ctx, hubID, currencyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	if entries == nil {
		return []domain.ExchangeRateHistory{}, nil
	}
	return entries, nil
}
