package mapping

import (
	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/models"
)

// ToModelPayment converts a domain payment to the model layer.
func ToModelPayment(d domain.CurrencyPayment) models.CurrencyPayment {
	return models.CurrencyPayment{
		PaymentID:        d.PaymentID,
		HubID:            d.HubID,
		SaleID:           d.SaleID,
		CurrencyID:       d.CurrencyID,
		CurrencyCode:     d.CurrencyCode,
		OriginalAmount:   d.OriginalAmount,
		ExchangeRateUsed: d.ExchangeRateUsed,
		BaseAmount:       d.BaseAmount,
		PaymentDate:      d.PaymentDate,
		IsDeleted:        d.IsDeleted,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model payment to the domain layer.
func ToDomainPayment(m models.CurrencyPayment) domain.CurrencyPayment {
	return domain.CurrencyPayment{
		PaymentID:        m.PaymentID,
		HubID:            m.HubID,
		SaleID:           m.SaleID,
		CurrencyID:       m.CurrencyID,
		CurrencyCode:     m.CurrencyCode,
		OriginalAmount:   m.OriginalAmount,
		ExchangeRateUsed: m.ExchangeRateUsed,
		BaseAmount:       m.BaseAmount,
		PaymentDate:      m.PaymentDate,
		IsDeleted:        m.IsDeleted,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts model payments to domain payments.
func ToDomainPaymentSlice(ms []models.CurrencyPayment) []domain.CurrencyPayment {
	ds := make([]domain.CurrencyPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
