package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	historyRepo := newPgxRateHistoryRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		SettingsRepo: settingsRepo,
		HistoryRepo:  historyRepo,
		PaymentRepo:  paymentRepo,
	}
}
