package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsprov "github.com/poshub/multicurrency/internal/core/ports/providers"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/poshub/multicurrency/internal/metrics"
	"github.com/poshub/multicurrency/internal/utils/money"
)

// PaymentService records foreign-currency payments. The exchange rate is
// snapshotted at payment time; later rate changes never reprice a recorded
// payment.
type PaymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	settingsRepo portsrepo.SettingsRepositoryFacade
	clock        portsprov.Clock
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	clock portsprov.Clock,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		currencyRepo: currencyRepo,
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// RecordPayment stores a payment with the currency's current rate and the
// base-converted amount. Rejected when the hub has multi-currency payments
// disabled.
func (s *PaymentService) RecordPayment(ctx context.Context, hubID string, req dto.RecordPaymentRequest, userID string) (*domain.CurrencyPayment, error) {
	if !req.OriginalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.AllowMultiCurrencyPayment {
		return nil, fmt.Errorf("%w: multi-currency payments are disabled for this hub", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindActiveCurrencyByCode(ctx, hubID, strings.ToUpper(req.CurrencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payment currency: %w", err)
	}
	if !currency.IsConvertible() {
		return nil, fmt.Errorf("%w: currency '%s' has no exchange rate", apperrors.ErrValidation, currency.Code)
	}

	now := s.clock.Now()
	originalAmount := money.RoundHalfUp(req.OriginalAmount, int32(currency.DecimalPlaces))
	payment := domain.CurrencyPayment{
		PaymentID:        uuid.NewString(),
		HubID:            hubID,
		SaleID:           req.SaleID,
		CurrencyID:       &currency.CurrencyID,
		CurrencyCode:     currency.Code,
		OriginalAmount:   originalAmount,
		ExchangeRateUsed: currency.ExchangeRate,
		BaseAmount:       money.ConvertToBase(originalAmount, currency.ExchangeRate),
		PaymentDate:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	metrics.PaymentsRecordedTotal.Inc()
	return &payment, nil
}

// ListRecentPayments returns non-deleted payments newest first.
func (s *PaymentService) ListRecentPayments(ctx context.Context, hubID string, limit int) ([]domain.CurrencyPayment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, hubID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.CurrencyPayment{}, nil
	}
	return payments, nil
}
