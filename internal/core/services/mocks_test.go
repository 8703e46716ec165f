package services_test

import (
	"context"
	"time"

	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/core/ports/providers"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, hubID, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, hubID, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, hubID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindActiveCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	args := m.Called(ctx, hubID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, hubID string, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, hubID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error {
	args := m.Called(ctx, currency, history)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error {
	args := m.Called(ctx, currency, history)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SoftDeleteCurrency(ctx context.Context, hubID, currencyID string, deletedAt time.Time, userID string) error {
	args := m.Called(ctx, hubID, currencyID, deletedAt, userID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) HardDeleteCurrency(ctx context.Context, hubID, currencyID string) error {
	args := m.Called(ctx, hubID, currencyID)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetOrCreateSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error) {
	args := m.Called(ctx, hubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencySettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.CurrencySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock RateHistoryRepository ---
type MockRateHistoryRepository struct {
	mock.Mock
}

func (m *MockRateHistoryRepository) ListRateHistory(ctx context.Context, hubID string, currencyCode *string, limit int) ([]domain.ExchangeRateHistory, error) {
	args := m.Called(ctx, hubID, currencyCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateHistory), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, hubID string, limit int) ([]domain.CurrencyPayment, error) {
	args := m.Called(ctx, hubID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPayment), args.Error(1)
}

func (m *MockPaymentRepository) HasPaymentsForCurrency(ctx context.Context, hubID, currencyID string) (bool, error) {
	args := m.Called(ctx, hubID, currencyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.CurrencyPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock RateSourceProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchCentralBankRates(ctx context.Context) (*providers.CentralBankFeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.CentralBankFeed), args.Error(1)
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context, base, apiKey string) (providers.RateTable, error) {
	args := m.Called(ctx, base, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(providers.RateTable), args.Error(1)
}

// --- Fixed clock ---
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
