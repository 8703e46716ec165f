package services

import (
	"context"

	"github.com/poshub/multicurrency/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionSvc converts amounts between registered currencies via the
// hub's base currency.
type ConversionSvc interface {
	// Convert converts amount from one currency to another. Both codes may
	// equal the hub base; identical codes are a legal no-op. Zero and
	// negative amounts pass through the same arithmetic.
	Convert(ctx context.Context, hubID string, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertResult, error)

	// GetRates returns the current rates listing for the hub's active
	// currencies together with the configured base.
	GetRates(ctx context.Context, hubID string) (*dto.RatesResponse, error)
}
