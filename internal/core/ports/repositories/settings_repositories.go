package repositories

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
)

// SettingsRepositoryFacade persists the per-hub settings singleton.
type SettingsRepositoryFacade interface {
	// GetOrCreateSettings returns the hub's settings record, creating it
	// with defaults on first access.
	GetOrCreateSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error)

	// UpdateSettings persists changes to the hub's settings record.
	UpdateSettings(ctx context.Context, settings domain.CurrencySettings) error
}
