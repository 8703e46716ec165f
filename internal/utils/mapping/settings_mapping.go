package mapping

import (
	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/models"
)

// ToModelSettings converts domain CurrencySettings to the model layer.
func ToModelSettings(d domain.CurrencySettings) models.CurrencySettings {
	return models.CurrencySettings{
		SettingsID:                d.SettingsID,
		HubID:                     d.HubID,
		BaseCurrency:              d.BaseCurrency,
		AutoUpdateRates:           d.AutoUpdateRates,
		UpdateFrequency:           string(d.UpdateFrequency),
		RateSource:                string(d.RateSource),
		APIKey:                    d.APIKey,
		RoundToDecimals:           d.RoundToDecimals,
		ShowBothCurrencies:        d.ShowBothCurrencies,
		AllowMultiCurrencyPayment: d.AllowMultiCurrencyPayment,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts model CurrencySettings to the domain layer.
func ToDomainSettings(m models.CurrencySettings) domain.CurrencySettings {
	return domain.CurrencySettings{
		SettingsID:                m.SettingsID,
		HubID:                     m.HubID,
		BaseCurrency:              m.BaseCurrency,
		AutoUpdateRates:           m.AutoUpdateRates,
		UpdateFrequency:           domain.UpdateFrequency(m.UpdateFrequency),
		RateSource:                domain.RateSource(m.RateSource),
		APIKey:                    m.APIKey,
		RoundToDecimals:           m.RoundToDecimals,
		ShowBothCurrencies:        m.ShowBothCurrencies,
		AllowMultiCurrencyPayment: m.AllowMultiCurrencyPayment,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}
