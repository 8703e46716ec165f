package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsprov "github.com/poshub/multicurrency/internal/core/ports/providers"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CurrencyService implements the currency registry operations. Every
// rate-changing mutation appends a history entry in the same transaction
// as the rate itself.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	paymentRepo  portsrepo.PaymentReader
	clock        portsprov.Clock
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, paymentRepo portsrepo.PaymentReader, clock portsprov.Clock) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		paymentRepo:  paymentRepo,
		clock:        clock,
	}
}

// GetCurrencyByCode retrieves a non-deleted currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, hubID, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves currencies ordered by sort order then code.
func (s *CurrencyService) ListCurrencies(ctx context.Context, hubID string, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, hubID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// CreateCurrency registers a new currency. The initial rate is always
// recorded in the history with source "manual", in the same transaction as
// the insert.
func (s *CurrencyService) CreateCurrency(ctx context.Context, hubID string, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	code := strings.ToUpper(req.Code)

	if req.ExchangeRate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrValidation)
	}

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, hubID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing currency: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency code '%s' already exists", apperrors.ErrDuplicate, code)
	}

	decimalPlaces := 2
	if req.DecimalPlaces != nil {
		decimalPlaces = *req.DecimalPlaces
	}

	now := s.clock.Now()
	currency := domain.Currency{
		CurrencyID:    uuid.NewString(),
		HubID:         hubID,
		Code:          code,
		Name:          req.Name,
		Symbol:        req.Symbol,
		DecimalPlaces: decimalPlaces,
		ExchangeRate:  money.NormalizeRate(req.ExchangeRate),
		IsActive:      true,
		LastUpdated:   &now,
		SortOrder:     req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	history := s.newHistoryEntry(currency, domain.SourceManual, now)
	if err := s.currencyRepo.SaveCurrencyWithHistory(ctx, currency, history); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

// UpdateCurrency applies a full edit. A history entry is appended only when
// the stored rate actually changed; editing name, symbol or ordering leaves
// the audit trail untouched.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, hubID, currencyID string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, hubID, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}

	if req.ExchangeRate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrValidation)
	}

	code := strings.ToUpper(req.Code)
	if code != currency.Code {
		existing, err := s.currencyRepo.FindCurrencyByCode(ctx, hubID, code)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing currency: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: currency code '%s' already exists", apperrors.ErrDuplicate, code)
		}
	}

	now := s.clock.Now()
	newRate := money.NormalizeRate(req.ExchangeRate)
	rateChanged := !newRate.Equal(currency.ExchangeRate)

	currency.Code = code
	currency.Name = req.Name
	currency.Symbol = req.Symbol
	currency.DecimalPlaces = req.DecimalPlaces
	currency.SortOrder = req.SortOrder
	currency.IsActive = req.IsActive
	currency.LastUpdatedAt = now
	currency.LastUpdatedBy = userID

	if !rateChanged {
		if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
			return nil, fmt.Errorf("failed to update currency: %w", err)
		}
		return currency, nil
	}

	currency.ExchangeRate = newRate
	currency.LastUpdated = &now
	history := s.newHistoryEntry(*currency, domain.SourceManual, now)
	if err := s.currencyRepo.UpdateCurrencyWithHistory(ctx, *currency, history); err != nil {
		return nil, fmt.Errorf("failed to update currency rate: %w", err)
	}
	return currency, nil
}

// UpdateRate applies an explicit administrative rate update by code. Unlike
// the edit path, every call appends a history entry even when the rate is
// unchanged: the call itself is the auditable action.
func (s *CurrencyService) UpdateRate(ctx context.Context, hubID, code string, rate decimal.Decimal, userID string) (*domain.Currency, error) {
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, hubID, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}

	now := s.clock.Now()
	currency.ExchangeRate = money.NormalizeRate(rate)
	currency.LastUpdated = &now
	currency.LastUpdatedAt = now
	currency.LastUpdatedBy = userID

	history := s.newHistoryEntry(*currency, domain.SourceManual, now)
	if err := s.currencyRepo.UpdateCurrencyWithHistory(ctx, *currency, history); err != nil {
		return nil, fmt.Errorf("failed to update rate: %w", err)
	}
	return currency, nil
}

// ToggleActive flips the active flag. Activation state is not part of the
// rate audit trail.
func (s *CurrencyService) ToggleActive(ctx context.Context, hubID, currencyID, userID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, hubID, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}

	currency.IsActive = !currency.IsActive
	currency.LastUpdatedAt = s.clock.Now()
	currency.LastUpdatedBy = userID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to toggle currency: %w", err)
	}
	return currency, nil
}

// DeleteCurrency soft-deletes a currency. Rejected while any non-deleted
// payment still references it; the deleted flag stays false in that case.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, hubID, currencyID, userID string) error {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, hubID, currencyID)
	if err != nil {
		return fmt.Errorf("failed to find currency: %w", err)
	}

	hasPayments, err := s.paymentRepo.HasPaymentsForCurrency(ctx, hubID, currency.CurrencyID)
	if err != nil {
		return fmt.Errorf("failed to check payments for currency: %w", err)
	}
	if hasPayments {
		return fmt.Errorf("%w: cannot delete currency '%s'", apperrors.ErrHasDependentPayments, currency.Code)
	}

	if err := s.currencyRepo.SoftDeleteCurrency(ctx, hubID, currencyID, s.clock.Now(), userID); err != nil {
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	return nil
}

// HardDeleteCurrency purges a currency row, its history, and nulls the
// currency reference on payments while preserving their amounts.
func (s *CurrencyService) HardDeleteCurrency(ctx context.Context, hubID, currencyID string) error {
	if err := s.currencyRepo.HardDeleteCurrency(ctx, hubID, currencyID); err != nil {
		return fmt.Errorf("failed to hard delete currency: %w", err)
	}
	return nil
}

func (s *CurrencyService) newHistoryEntry(c domain.Currency, source domain.RateSource, recordedAt time.Time) domain.ExchangeRateHistory {
	return domain.ExchangeRateHistory{
		HistoryID:    uuid.NewString(),
		HubID:        c.HubID,
		CurrencyID:   c.CurrencyID,
		CurrencyCode: c.Code,
		Rate:         c.ExchangeRate,
		Source:       source,
		RecordedAt:   recordedAt,
	}
}
