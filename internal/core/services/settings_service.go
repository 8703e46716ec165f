package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsprov "github.com/poshub/multicurrency/internal/core/ports/providers"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/dto"
)

// SettingsService manages the per-hub settings singleton.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
	clock        portsprov.Clock
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, clock portsprov.Clock) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// GetSettings returns the hub's settings, creating defaults on first access.
func (s *SettingsService) GetSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error) {
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a full settings edit. An empty API key in the
// request keeps the stored credential so clients never have to echo the
// secret back.
func (s *SettingsService) UpdateSettings(ctx context.Context, hubID string, req dto.UpdateSettingsRequest, userID string) (*domain.CurrencySettings, error) {
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	frequency := domain.UpdateFrequency(req.UpdateFrequency)
	if !frequency.IsValid() {
		return nil, fmt.Errorf("%w: unknown update frequency '%s'", apperrors.ErrValidation, req.UpdateFrequency)
	}
	source := domain.RateSource(req.RateSource)
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: unknown rate source '%s'", apperrors.ErrValidation, req.RateSource)
	}

	settings.BaseCurrency = strings.ToUpper(req.BaseCurrency)
	settings.AutoUpdateRates = req.AutoUpdateRates
	settings.UpdateFrequency = frequency
	settings.RateSource = source
	settings.RoundToDecimals = req.RoundToDecimals
	settings.ShowBothCurrencies = req.ShowBothCurrencies
	settings.AllowMultiCurrencyPayment = req.AllowMultiCurrencyPayment
	if req.APIKey != "" {
		settings.APIKey = req.APIKey
	}
	settings.LastUpdatedAt = s.clock.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
