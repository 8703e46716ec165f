package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/poshub/multicurrency/internal/core/domain"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/metrics"
	"github.com/poshub/multicurrency/internal/utils/money"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts between currencies. Every conversion
// pivots through the hub's base currency, even when a direct pairing is
// conceivable: a foreign source divides into a 2dp base amount, a foreign
// target multiplies out to its own decimal places, and a leg that already
// is the base passes the amount through untouched.
type ConversionService struct {
	currencyRepo portsrepo.CurrencyReader
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewConversionService creates a new ConversionService.
func NewConversionService(currencyRepo portsrepo.CurrencyReader, settingsRepo portsrepo.SettingsRepositoryFacade) *ConversionService {
	return &ConversionService{
		currencyRepo: currencyRepo,
		settingsRepo: settingsRepo,
	}
}

// Convert converts amount from one currency to another. A base-currency
// leg carries the amount through untouched: a base source means the base
// amount IS the input, a base target returns the base amount as-is, and
// base to base is a no-op. Rounding happens only on real foreign legs.
func (s *ConversionService) Convert(ctx context.Context, hubID string, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertResult, error) {
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	from := strings.ToUpper(fromCode)
	to := strings.ToUpper(toCode)
	base := strings.ToUpper(settings.BaseCurrency)

	fromRate := decimal.NewFromInt(1)
	baseAmount := amount
	if from != base {
		currency, err := s.resolveCurrency(ctx, hubID, from)
		if err != nil {
			return nil, err
		}
		fromRate = currency.ExchangeRate
		baseAmount = money.ConvertToBase(amount, fromRate)
	}

	toRate := decimal.NewFromInt(1)
	result := baseAmount
	if to != base {
		currency, err := s.resolveCurrency(ctx, hubID, to)
		if err != nil {
			return nil, err
		}
		toRate = currency.ExchangeRate
		result = money.ConvertFromBase(baseAmount, toRate, currency.DecimalPlaces)
	}

	// The composite rate is informational only; a zero source rate makes
	// the pair unconvertible and is reported as a zero rate.
	effectiveRate := decimal.Zero
	if !fromRate.IsZero() {
		effectiveRate = toRate.Div(fromRate)
	}

	metrics.ConversionsTotal.Inc()

	return &dto.ConvertResult{
		From:   from,
		To:     to,
		Amount: amount,
		Result: result,
		Rate:   effectiveRate,
	}, nil
}

// GetRates returns the current rates listing for the hub's active
// currencies together with the configured base.
func (s *ConversionService) GetRates(ctx context.Context, hubID string) (*dto.RatesResponse, error) {
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx, hubID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	resp := dto.ToRatesResponse(settings.BaseCurrency, currencies)
	return &resp, nil
}

// resolveCurrency looks up an active registered currency for a foreign
// conversion leg. The base currency never reaches this lookup, so the base
// does not need a registry row of its own.
func (s *ConversionService) resolveCurrency(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindActiveCurrencyByCode(ctx, hubID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve currency '%s': %w", code, err)
	}
	return currency, nil
}
