package repositories

// RepositoryProvider aggregates the repositories needed to build the
// service container.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
	HistoryRepo  RateHistoryRepositoryFacade
	PaymentRepo  PaymentRepositoryFacade
}
