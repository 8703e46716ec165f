package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations on the currency registry.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a non-deleted currency by its code.
	GetCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by sort order then code.
	ListCurrencies(ctx context.Context, hubID string, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations on the currency registry.
type CurrencyWriterSvc interface {
	// CreateCurrency registers a new currency and records its initial rate
	// in the history with source "manual".
	CreateCurrency(ctx context.Context, hubID string, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency applies a full edit; a history entry is appended only
	// when the exchange rate actually changed.
	UpdateCurrency(ctx context.Context, hubID, currencyID string, req dto.UpdateCurrencyRequest, userID string) (*domain.Currency, error)

	// UpdateRate applies an explicit administrative rate update by code.
	UpdateRate(ctx context.Context, hubID, code string, rate decimal.Decimal, userID string) (*domain.Currency, error)

	// ToggleActive flips the active flag. Not audited: only rate changes are.
	ToggleActive(ctx context.Context, hubID, currencyID, userID string) (*domain.Currency, error)

	// DeleteCurrency soft-deletes a currency unless payments reference it.
	DeleteCurrency(ctx context.Context, hubID, currencyID, userID string) error

	// HardDeleteCurrency purges a currency, cascading history and nulling
	// payment references. Administrative only.
	HardDeleteCurrency(ctx context.Context, hubID, currencyID string) error
}

// CurrencySvcFacade combines all currency registry service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
