package services

import (
	portsprov "github.com/poshub/multicurrency/internal/core/ports/providers"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
)

// NewServiceContainer wires all service implementations against the
// repository provider and the rate source provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, provider portsprov.RateSourceProvider, clock portsprov.Clock) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:   NewCurrencyService(repos.CurrencyRepo, repos.PaymentRepo, clock),
		Conversion: NewConversionService(repos.CurrencyRepo, repos.SettingsRepo),
		RateUpdate: NewRateUpdateService(repos.CurrencyRepo, repos.SettingsRepo, provider, clock),
		History:    NewHistoryService(repos.HistoryRepo),
		Settings:   NewSettingsService(repos.SettingsRepo, clock),
		Payment:    NewPaymentService(repos.PaymentRepo, repos.CurrencyRepo, repos.SettingsRepo, clock),
	}
}
