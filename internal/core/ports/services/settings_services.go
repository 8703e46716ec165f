package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/dto"
)

// SettingsSvc manages the per-hub settings singleton.
type SettingsSvc interface {
	// GetSettings returns the hub's settings, creating defaults on first access.
	GetSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error)

	// UpdateSettings applies a full settings edit.
	UpdateSettings(ctx context.Context, hubID string, req dto.UpdateSettingsRequest, userID string) (*domain.CurrencySettings, error)
}
