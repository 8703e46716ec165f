package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsprov "github.com/poshub/multicurrency/internal/core/ports/providers"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/metrics"
	"github.com/poshub/multicurrency/internal/utils/money"
	"github.com/poshub/multicurrency/internal/utils/rates"
)

// RateUpdateService refreshes exchange rates from the hub's configured
// source. Fetch and policy failures abort the run before any rate is
// touched; once applying starts, each currency commits independently with
// its history entry.
type RateUpdateService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	provider     portsprov.RateSourceProvider
	clock        portsprov.Clock
}

// NewRateUpdateService creates a new RateUpdateService.
func NewRateUpdateService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	provider portsprov.RateSourceProvider,
	clock portsprov.Clock,
) *RateUpdateService {
	return &RateUpdateService{
		currencyRepo: currencyRepo,
		settingsRepo: settingsRepo,
		provider:     provider,
		clock:        clock,
	}
}

// RunRateUpdate fetches rates from the configured source and applies them
// to the hub's active currencies. The base currency is never touched.
// Currencies the feed cannot resolve are skipped with a warning; the rest
// of the run proceeds.
func (s *RateUpdateService) RunRateUpdate(ctx context.Context, hubID, userID string) (*dto.RateUpdateSummary, error) {
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	base := strings.ToUpper(settings.BaseCurrency)

	feed, anchor, err := s.fetch(ctx, settings, base)
	if err != nil {
		metrics.RateUpdateRunsTotal.WithLabelValues(string(settings.RateSource), "error").Inc()
		return nil, err
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx, hubID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	now := s.clock.Now()
	summary := &dto.RateUpdateSummary{}
	for i := range currencies {
		currency := currencies[i]
		if currency.Code == base {
			continue
		}

		rate, ok := rates.ResolveRate(feed, anchor, base, currency.Code)
		if !ok {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("no rate available for %s", currency.Code))
			continue
		}

		currency.ExchangeRate = money.NormalizeRate(rate)
		currency.LastUpdated = &now
		currency.LastUpdatedAt = now
		currency.LastUpdatedBy = userID

		history := domain.ExchangeRateHistory{
			HistoryID:    uuid.NewString(),
			HubID:        hubID,
			CurrencyID:   currency.CurrencyID,
			CurrencyCode: currency.Code,
			Rate:         currency.ExchangeRate,
			Source:       settings.RateSource,
			RecordedAt:   now,
		}
		if err := s.currencyRepo.UpdateCurrencyWithHistory(ctx, currency, history); err != nil {
			metrics.RateUpdateRunsTotal.WithLabelValues(string(settings.RateSource), "error").Inc()
			return nil, fmt.Errorf("failed to apply rate for %s: %w", currency.Code, err)
		}
		summary.Updated++
		metrics.CurrenciesRefreshedTotal.Inc()
	}

	metrics.RateUpdateRunsTotal.WithLabelValues(string(settings.RateSource), "success").Inc()
	slog.InfoContext(ctx, "rate update run completed",
		slog.String("hub_id", hubID),
		slog.String("source", string(settings.RateSource)),
		slog.Int("updated", summary.Updated),
		slog.Int("warnings", len(summary.Warnings)),
	)
	return summary, nil
}

// fetch pulls the rate table for the configured source and returns it with
// the currency the table is anchored to. The ECB feed is always
// EUR-anchored; the commercial API quotes directly against the hub base.
func (s *RateUpdateService) fetch(ctx context.Context, settings *domain.CurrencySettings, base string) (portsprov.RateTable, string, error) {
	switch settings.RateSource {
	case domain.SourceManual:
		return nil, "", fmt.Errorf("%w: rate source is set to manual", apperrors.ErrManualSource)

	case domain.SourceECB:
		feed, err := s.provider.FetchCentralBankRates(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch central bank rates: %w", err)
		}
		return feed.Rates, feed.Anchor, nil

	case domain.SourceExchangeRateAPI:
		if settings.APIKey == "" {
			return nil, "", fmt.Errorf("%w: rate source '%s' requires an API key", apperrors.ErrMissingCredential, settings.RateSource)
		}
		table, err := s.provider.FetchLatestRates(ctx, base, settings.APIKey)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch latest rates: %w", err)
		}
		return table, base, nil

	default:
		return nil, "", fmt.Errorf("%w: unknown rate source '%s'", apperrors.ErrValidation, settings.RateSource)
	}
}
