package mapping

import (
	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:    d.CurrencyID,
		HubID:         d.HubID,
		Code:          d.Code,
		Name:          d.Name,
		Symbol:        d.Symbol,
		DecimalPlaces: d.DecimalPlaces,
		ExchangeRate:  d.ExchangeRate,
		IsActive:      d.IsActive,
		LastUpdated:   d.LastUpdated,
		SortOrder:     d.SortOrder,
		IsDeleted:     d.IsDeleted,
		DeletedAt:     d.DeletedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:    m.CurrencyID,
		HubID:         m.HubID,
		Code:          m.Code,
		Name:          m.Name,
		Symbol:        m.Symbol,
		DecimalPlaces: m.DecimalPlaces,
		ExchangeRate:  m.ExchangeRate,
		IsActive:      m.IsActive,
		LastUpdated:   m.LastUpdated,
		SortOrder:     m.SortOrder,
		IsDeleted:     m.IsDeleted,
		DeletedAt:     m.DeletedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
