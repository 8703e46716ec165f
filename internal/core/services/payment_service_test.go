package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/core/services"
	"github.com/poshub/multicurrency/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPayments   *MockPaymentRepository
	mockCurrencies *MockCurrencyRepository
	mockSettings   *MockSettingsRepository
	service        portssvc.PaymentSvc
	now            time.Time
	hubID          string
	userID         string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPayments = new(MockPaymentRepository)
	suite.mockCurrencies = new(MockCurrencyRepository)
	suite.mockSettings = new(MockSettingsRepository)
	suite.now = time.Date(2025, 8, 29, 18, 30, 0, 0, time.UTC)
	suite.hubID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.service = services.NewPaymentService(suite.mockPayments, suite.mockCurrencies, suite.mockSettings, fixedClock{now: suite.now})
}

func (suite *PaymentServiceTestSuite) settings() *domain.CurrencySettings {
	s := domain.DefaultSettings(suite.hubID)
	return &s
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	saleID := uuid.NewString()
	currency := &domain.Currency{
		CurrencyID:    uuid.NewString(),
		HubID:         suite.hubID,
		Code:          "USD",
		DecimalPlaces: 2,
		ExchangeRate:  decimal.RequireFromString("1.085"),
		IsActive:      true,
	}
	req := dto.RecordPaymentRequest{
		SaleID:         &saleID,
		CurrencyCode:   "usd",
		OriginalAmount: decimal.RequireFromString("50.00"),
	}

	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settings(), nil).Once()
	suite.mockCurrencies.On("FindActiveCurrencyByCode", ctx, suite.hubID, "USD").Return(currency, nil).Once()
	suite.mockPayments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.CurrencyPayment) bool {
		// 50 / 1.085 = 46.0829... -> 46.08 in base currency
		return p.CurrencyCode == "USD" &&
			p.ExchangeRateUsed.Equal(decimal.RequireFromString("1.085")) &&
			p.BaseAmount.Equal(decimal.RequireFromString("46.08")) &&
			p.SaleID != nil && *p.SaleID == saleID &&
			p.PaymentDate.Equal(suite.now)
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal("USD", payment.CurrencyCode)
	suite.Equal("46.08", payment.BaseAmount.String())
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RoundsToCurrencyPrecision() {
	ctx := context.Background()
	currency := &domain.Currency{
		CurrencyID:    uuid.NewString(),
		HubID:         suite.hubID,
		Code:          "JPY",
		DecimalPlaces: 0,
		ExchangeRate:  decimal.RequireFromString("163.45"),
		IsActive:      true,
	}
	req := dto.RecordPaymentRequest{
		CurrencyCode:   "JPY",
		OriginalAmount: decimal.RequireFromString("1000.4"),
	}

	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settings(), nil).Once()
	suite.mockCurrencies.On("FindActiveCurrencyByCode", ctx, suite.hubID, "JPY").Return(currency, nil).Once()
	suite.mockPayments.On("SavePayment", ctx, mock.MatchedBy(func(p domain.CurrencyPayment) bool {
		// 1000.4 -> 1000 whole yen, then 1000 / 163.45 = 6.1181... -> 6.12 in base
		return p.OriginalAmount.Equal(decimal.NewFromInt(1000)) &&
			p.BaseAmount.Equal(decimal.RequireFromString("6.12"))
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000", payment.OriginalAmount.String())
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CurrencyCode:   "USD",
		OriginalAmount: decimal.Zero,
	}

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_MultiCurrencyDisabled() {
	ctx := context.Background()
	settings := suite.settings()
	settings.AllowMultiCurrencyPayment = false
	req := dto.RecordPaymentRequest{
		CurrencyCode:   "USD",
		OriginalAmount: decimal.NewFromInt(50),
	}

	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(settings, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayments.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnconvertibleCurrency() {
	ctx := context.Background()
	currency := &domain.Currency{
		CurrencyID:   uuid.NewString(),
		HubID:        suite.hubID,
		Code:         "XXX",
		ExchangeRate: decimal.Zero,
		IsActive:     true,
	}
	req := dto.RecordPaymentRequest{
		CurrencyCode:   "XXX",
		OriginalAmount: decimal.NewFromInt(50),
	}

	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settings(), nil).Once()
	suite.mockCurrencies.On("FindActiveCurrencyByCode", ctx, suite.hubID, "XXX").Return(currency, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_UnknownCurrency() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		CurrencyCode:   "ZZZ",
		OriginalAmount: decimal.NewFromInt(50),
	}

	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settings(), nil).Once()
	suite.mockCurrencies.On("FindActiveCurrencyByCode", ctx, suite.hubID, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.hubID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListRecentPayments_Empty() {
	ctx := context.Background()
	var none []domain.CurrencyPayment

	suite.mockPayments.On("ListPayments", ctx, suite.hubID, 20).Return(none, nil).Once()

	payments, err := suite.service.ListRecentPayments(ctx, suite.hubID, 20)

	suite.Require().NoError(err)
	suite.Empty(payments)
	suite.NotNil(payments)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
