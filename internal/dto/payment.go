package dto

import (
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest registers a foreign-currency payment against a sale.
type RecordPaymentRequest struct {
	SaleID         *string         `json:"saleID" binding:"omitempty,uuid"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,alpha,len=3"`
	OriginalAmount decimal.Decimal `json:"originalAmount" binding:"required"`
}

// PaymentResponse defines the data returned for a currency payment.
type PaymentResponse struct {
	PaymentID        string          `json:"paymentID"`
	SaleID           *string         `json:"saleID,omitempty"`
	CurrencyCode     string          `json:"currencyCode"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	ExchangeRateUsed decimal.Decimal `json:"exchangeRateUsed"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
	PaymentDate      time.Time       `json:"paymentDate"`
}

// ToPaymentResponse converts a domain payment to the response DTO.
func ToPaymentResponse(p *domain.CurrencyPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		SaleID:           p.SaleID,
		CurrencyCode:     p.CurrencyCode,
		OriginalAmount:   p.OriginalAmount,
		ExchangeRateUsed: p.ExchangeRateUsed,
		BaseAmount:       p.BaseAmount,
		PaymentDate:      p.PaymentDate,
	}
}

// ToListPaymentResponse converts domain payments to DTOs.
func ToListPaymentResponse(payments []domain.CurrencyPayment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
