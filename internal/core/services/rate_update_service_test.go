package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	"github.com/poshub/multicurrency/internal/core/ports/providers"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateUpdateServiceTestSuite struct {
	suite.Suite
	mockCurrencies *MockCurrencyRepository
	mockSettings   *MockSettingsRepository
	mockProvider   *MockRateProvider
	service        portssvc.RateUpdateSvc
	now            time.Time
	hubID          string
	userID         string
}

func (suite *RateUpdateServiceTestSuite) SetupTest() {
	suite.mockCurrencies = new(MockCurrencyRepository)
	suite.mockSettings = new(MockSettingsRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.now = time.Date(2025, 8, 29, 16, 0, 0, 0, time.UTC)
	suite.hubID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.service = services.NewRateUpdateService(suite.mockCurrencies, suite.mockSettings, suite.mockProvider, fixedClock{now: suite.now})
}

func (suite *RateUpdateServiceTestSuite) settingsWithSource(source domain.RateSource) *domain.CurrencySettings {
	s := domain.DefaultSettings(suite.hubID)
	s.RateSource = source
	return &s
}

func (suite *RateUpdateServiceTestSuite) currency(code string, rate string) domain.Currency {
	return domain.Currency{
		CurrencyID:   uuid.NewString(),
		HubID:        suite.hubID,
		Code:         code,
		ExchangeRate: decimal.RequireFromString(rate),
		IsActive:     true,
	}
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_ManualSourceRejected() {
	ctx := context.Background()
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settingsWithSource(domain.SourceManual), nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrManualSource)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchCentralBankRates", mock.Anything)
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_MissingAPIKey() {
	ctx := context.Background()
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settingsWithSource(domain.SourceExchangeRateAPI), nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrMissingCredential)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_ECBSuccess() {
	ctx := context.Background()
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settingsWithSource(domain.SourceECB), nil).Once()
	suite.mockProvider.On("FetchCentralBankRates", ctx).Return(&providers.CentralBankFeed{
		Anchor: "EUR",
		Rates: providers.RateTable{
			"USD": decimal.RequireFromString("1.0850"),
			"JPY": decimal.RequireFromString("163.45"),
		},
	}, nil).Once()
	suite.mockCurrencies.On("ListCurrencies", ctx, suite.hubID, true).Return([]domain.Currency{
		suite.currency("USD", "1.07"),
		suite.currency("JPY", "160"),
	}, nil).Once()

	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.ExchangeRate.Equal(decimal.RequireFromString("1.085")) && c.LastUpdatedBy == suite.userID
	}), mock.MatchedBy(func(h domain.ExchangeRateHistory) bool {
		return h.CurrencyCode == "USD" && h.Source == domain.SourceECB && h.RecordedAt.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "JPY" && c.ExchangeRate.Equal(decimal.RequireFromString("163.45"))
	}), mock.AnythingOfType("domain.ExchangeRateHistory")).Return(nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, summary.Updated)
	suite.Empty(summary.Warnings)
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_SkipsBaseAndWarnsOnMissing() {
	ctx := context.Background()
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settingsWithSource(domain.SourceECB), nil).Once()
	suite.mockProvider.On("FetchCentralBankRates", ctx).Return(&providers.CentralBankFeed{
		Anchor: "EUR",
		Rates:  providers.RateTable{"USD": decimal.RequireFromString("1.085")},
	}, nil).Once()
	suite.mockCurrencies.On("ListCurrencies", ctx, suite.hubID, true).Return([]domain.Currency{
		suite.currency("EUR", "1"), // base, must never be touched
		suite.currency("USD", "1.07"),
		suite.currency("XYZ", "5"),
	}, nil).Once()
	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD"
	}), mock.AnythingOfType("domain.ExchangeRateHistory")).Return(nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Updated)
	suite.Require().Len(summary.Warnings, 1)
	suite.Contains(summary.Warnings[0], "XYZ")
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_NonEURBaseCrossRates() {
	ctx := context.Background()
	settings := suite.settingsWithSource(domain.SourceECB)
	settings.BaseCurrency = "USD"
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(settings, nil).Once()
	suite.mockProvider.On("FetchCentralBankRates", ctx).Return(&providers.CentralBankFeed{
		Anchor: "EUR",
		Rates: providers.RateTable{
			"USD": decimal.RequireFromString("1.085"),
			"GBP": decimal.RequireFromString("0.856"),
		},
	}, nil).Once()
	suite.mockCurrencies.On("ListCurrencies", ctx, suite.hubID, true).Return([]domain.Currency{
		suite.currency("EUR", "0.9"),
		suite.currency("GBP", "0.8"),
	}, nil).Once()

	// EUR rate against a USD base is the reciprocal of the feed's USD quote.
	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "EUR" && c.ExchangeRate.Equal(decimal.RequireFromString("0.921659"))
	}), mock.AnythingOfType("domain.ExchangeRateHistory")).Return(nil).Once()
	// GBP/USD cross rate: 0.856 / 1.085, normalized to 6dp.
	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "GBP" && c.ExchangeRate.Equal(decimal.RequireFromString("0.788940"))
	}), mock.AnythingOfType("domain.ExchangeRateHistory")).Return(nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, summary.Updated)
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_FetchFailureAbortsBeforeMutation() {
	ctx := context.Background()
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(suite.settingsWithSource(domain.SourceECB), nil).Once()
	suite.mockProvider.On("FetchCentralBankRates", ctx).Return(nil, apperrors.ErrProvider).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrProvider)
	suite.mockCurrencies.AssertNotCalled(suite.T(), "UpdateCurrencyWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateUpdateServiceTestSuite) TestRunRateUpdate_APISuccess() {
	ctx := context.Background()
	settings := suite.settingsWithSource(domain.SourceExchangeRateAPI)
	settings.APIKey = "test-key"
	suite.mockSettings.On("GetOrCreateSettings", ctx, suite.hubID).Return(settings, nil).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "EUR", "test-key").Return(providers.RateTable{
		"USD": decimal.RequireFromString("1.0852"),
	}, nil).Once()
	suite.mockCurrencies.On("ListCurrencies", ctx, suite.hubID, true).Return([]domain.Currency{
		suite.currency("USD", "1.07"),
	}, nil).Once()
	suite.mockCurrencies.On("UpdateCurrencyWithHistory", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "USD" && c.ExchangeRate.Equal(decimal.RequireFromString("1.0852"))
	}), mock.MatchedBy(func(h domain.ExchangeRateHistory) bool {
		return h.Source == domain.SourceExchangeRateAPI
	})).Return(nil).Once()

	summary, err := suite.service.RunRateUpdate(ctx, suite.hubID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Updated)
	suite.mockProvider.AssertExpectations(suite.T())
}

func TestRateUpdateService(t *testing.T) {
	suite.Run(t, new(RateUpdateServiceTestSuite))
}
