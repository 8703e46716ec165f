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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCurrencyRepository
	mockPayments *MockPaymentRepository
	service      portssvc.CurrencySvcFacade
	now          time.Time
	hubID        string
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.mockPayments = new(MockPaymentRepository)
	suite.now = time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)
	suite.hubID = uuid.NewString()
	suite.service = services.NewCurrencyService(suite.mockRepo, suite.mockPayments, fixedClock{now: suite.now})
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		Code:         "usd",
		Name:         "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.RequireFromString("1.085"),
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.hubID, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.HubID == suite.hubID && c.DecimalPlaces == 2 &&
			c.ExchangeRate.Equal(decimal.RequireFromString("1.085")) && c.IsActive &&
			c.CreatedBy == creatorUserID
	}), mock.MatchedBy(func(h domain.ExchangeRateHistory) bool {
		return h.CurrencyCode == "USD" && h.Source == domain.SourceManual &&
			h.Rate.Equal(decimal.RequireFromString("1.085")) && h.RecordedAt.Equal(suite.now)
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, suite.hubID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("USD", currency.Code)
	suite.Equal(2, currency.DecimalPlaces)
	suite.True(currency.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:         "USD",
		Name:         "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.RequireFromString("1.085"),
	}
	existing := &domain.Currency{Code: "USD"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.hubID, "USD").Return(existing, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, suite.hubID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrencyWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_NegativeRate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:         "USD",
		Name:         "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.RequireFromString("-1"),
	}

	currency, err := suite.service.CreateCurrency(ctx, suite.hubID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ZeroRateAllowed() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:         "XXX",
		Name:         "Placeholder",
		Symbol:       "?",
		ExchangeRate: decimal.Zero,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.hubID, "XXX").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrencyWithHistory", ctx, mock.AnythingOfType("domain.Currency"), mock.AnythingOfType("domain.ExchangeRateHistory")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, suite.hubID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.False(currency.IsConvertible())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_RateChangedRecordsHistory() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{
		CurrencyID:    currencyID,
		HubID:         suite.hubID,
		Code:          "USD",
		Name:          "US Dollar",
		Symbol:        "$",
		DecimalPlaces: 2,
		ExchangeRate:  decimal.RequireFromString("1.085"),
		IsActive:      true,
	}
	req := dto.UpdateCurrencyRequest{
		Code:          "USD",
		Name:          "US Dollar",
		Symbol:        "$",
		DecimalPlaces: 2,
		ExchangeRate:  decimal.RequireFromString("1.092"),
		IsActive:      true,
	}

	suite.mockRepo.On("FindCurrencyByID", ctx, suite.hubID, currencyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.ExchangeRate.Equal(decimal.RequireFromString("1.092"))
	}), mock.MatchedBy(func(h domain.ExchangeRateHistory) bool {
		return h.Source == domain.SourceManual && h.Rate.Equal(decimal.RequireFromString("1.092"))
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, suite.hubID, currencyID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(currency.ExchangeRate.Equal(decimal.RequireFromString("1.092")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_RateUnchangedSkipsHistory() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{
		CurrencyID:    currencyID,
		HubID:         suite.hubID,
		Code:          "USD",
		Name:          "US Dollar",
		Symbol:        "$",
		DecimalPlaces: 2,
		ExchangeRate:  decimal.RequireFromString("1.085"),
		IsActive:      true,
	}
	req := dto.UpdateCurrencyRequest{
		Code:          "USD",
		Name:          "United States Dollar",
		Symbol:        "$",
		DecimalPlaces: 2,
		ExchangeRate:  decimal.RequireFromString("1.0850"), // same value, different scale
		IsActive:      true,
	}

	suite.mockRepo.On("FindCurrencyByID", ctx, suite.hubID, currencyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Name == "United States Dollar"
	})).Return(nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, suite.hubID, currencyID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("United States Dollar", currency.Name)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCurrencyWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdateRate_AlwaysRecordsHistory() {
	ctx := context.Background()
	existing := &domain.Currency{
		CurrencyID:   uuid.NewString(),
		HubID:        suite.hubID,
		Code:         "USD",
		ExchangeRate: decimal.RequireFromString("1.085"),
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.hubID, "USD").Return(existing, nil).Once()
	// Same rate as stored: the explicit update still appends a history row.
	suite.mockRepo.On("UpdateCurrencyWithHistory", ctx, mock.AnythingOfType("domain.Currency"), mock.MatchedBy(func(h domain.ExchangeRateHistory) bool {
		return h.Source == domain.SourceManual && h.Rate.Equal(decimal.RequireFromString("1.085"))
	})).Return(nil).Once()

	currency, err := suite.service.UpdateRate(ctx, suite.hubID, "usd", decimal.RequireFromString("1.085"), uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateRate_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, suite.hubID, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.UpdateRate(ctx, suite.hubID, "NTF", decimal.NewFromInt(1), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestToggleActive_Flips() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{CurrencyID: currencyID, HubID: suite.hubID, Code: "USD", IsActive: true}

	suite.mockRepo.On("FindCurrencyByID", ctx, suite.hubID, currencyID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return !c.IsActive
	})).Return(nil).Once()

	currency, err := suite.service.ToggleActive(ctx, suite.hubID, currencyID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_Success() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Currency{CurrencyID: currencyID, HubID: suite.hubID, Code: "USD"}

	suite.mockRepo.On("FindCurrencyByID", ctx, suite.hubID, currencyID).Return(existing, nil).Once()
	suite.mockPayments.On("HasPaymentsForCurrency", ctx, suite.hubID, currencyID).Return(false, nil).Once()
	suite.mockRepo.On("SoftDeleteCurrency", ctx, suite.hubID, currencyID, suite.now, userID).Return(nil).Once()

	err := suite.service.DeleteCurrency(ctx, suite.hubID, currencyID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_RejectedWithPayments() {
	ctx := context.Background()
	currencyID := uuid.NewString()
	existing := &domain.Currency{CurrencyID: currencyID, HubID: suite.hubID, Code: "USD"}

	suite.mockRepo.On("FindCurrencyByID", ctx, suite.hubID, currencyID).Return(existing, nil).Once()
	suite.mockPayments.On("HasPaymentsForCurrency", ctx, suite.hubID, currencyID).Return(true, nil).Once()

	err := suite.service.DeleteCurrency(ctx, suite.hubID, currencyID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrHasDependentPayments)
	suite.mockRepo.AssertNotCalled(suite.T(), "SoftDeleteCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var none []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx, suite.hubID, false).Return(none, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, suite.hubID, false)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListCurrencies", ctx, suite.hubID, true).Return(nil, expectedErr).Once()

	currencies, err := suite.service.ListCurrencies(ctx, suite.hubID, true)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, expectedErr)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
