package mapping

import (
	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/models"
)

// ToModelRateHistory converts a domain history entry to the model layer.
func ToModelRateHistory(d domain.ExchangeRateHistory) models.ExchangeRateHistory {
	return models.ExchangeRateHistory{
		HistoryID:    d.HistoryID,
		HubID:        d.HubID,
		CurrencyID:   d.CurrencyID,
		CurrencyCode: d.CurrencyCode,
		Rate:         d.Rate,
		Source:       string(d.Source),
		RecordedAt:   d.RecordedAt,
	}
}

// ToDomainRateHistory converts a model history entry to the domain layer.
func ToDomainRateHistory(m models.ExchangeRateHistory) domain.ExchangeRateHistory {
	return domain.ExchangeRateHistory{
		HistoryID:    m.HistoryID,
		HubID:        m.HubID,
		CurrencyID:   m.CurrencyID,
		CurrencyCode: m.CurrencyCode,
		Rate:         m.Rate,
		Source:       domain.RateSource(m.Source),
		RecordedAt:   m.RecordedAt,
	}
}

// ToDomainRateHistorySlice converts model history entries to domain entries.
func ToDomainRateHistorySlice(ms []models.ExchangeRateHistory) []domain.ExchangeRateHistory {
	ds := make([]domain.ExchangeRateHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateHistory(m)
	}
	return ds
}
