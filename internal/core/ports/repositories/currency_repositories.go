package repositories

import (
	"context"
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
)

// CurrencyReader defines read operations for currency data. Reads never
// take locks held by writers; conversions stay responsive during a refresh.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a non-deleted currency by its ID.
	FindCurrencyByID(ctx context.Context, hubID, currencyID string) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a non-deleted currency by its code.
	FindCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error)

	// FindActiveCurrencyByCode retrieves a currency that is both active and
	// not deleted; used by the conversion engine.
	FindActiveCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error)

	// ListCurrencies retrieves non-deleted currencies ordered by sort order
	// then code. With activeOnly set, inactive currencies are excluded.
	ListCurrencies(ctx context.Context, hubID string, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data. Variants that
// take a history entry persist the currency mutation and the audit row in a
// single transaction.
type CurrencyWriter interface {
	// SaveCurrencyWithHistory persists a new currency together with its
	// initial rate history entry.
	SaveCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error

	// UpdateCurrency persists field changes without touching rate history.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrencyWithHistory persists a rate-changing update and appends
	// the matching history entry atomically.
	UpdateCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error

	// SoftDeleteCurrency flags a currency as deleted without removing rows.
	SoftDeleteCurrency(ctx context.Context, hubID, currencyID string, deletedAt time.Time, userID string) error

	// HardDeleteCurrency purges a currency, cascading its history and
	// nulling the currency reference on any payments, in one transaction.
	HardDeleteCurrency(ctx context.Context, hubID, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities.
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
