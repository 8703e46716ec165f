package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poshub/multicurrency/internal/core/domain"
	portssvc "github.com/poshub/multicurrency/internal/core/ports/services"
	"github.com/poshub/multicurrency/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockHistory *MockRateHistoryRepository
	service     portssvc.HistorySvc
	hubID       string
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockHistory = new(MockRateHistoryRepository)
	suite.hubID = uuid.NewString()
	suite.service = services.NewHistoryService(suite.mockHistory)
}

func (suite *HistoryServiceTestSuite) TestListHistory_All() {
	ctx := context.Background()
	entries := []domain.ExchangeRateHistory{
		{HistoryID: uuid.NewString(), CurrencyCode: "USD", Rate: decimal.RequireFromString("1.085"), Source: domain.SourceECB, RecordedAt: time.Now()},
	}

	suite.mockHistory.On("ListRateHistory", ctx, suite.hubID, (*string)(nil), 50).Return(entries, nil).Once()

	got, err := suite.service.ListHistory(ctx, suite.hubID, nil, 50)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("USD", got[0].CurrencyCode)
}

func (suite *HistoryServiceTestSuite) TestListHistory_FilterUppercasesCode() {
	ctx := context.Background()
	code := "usd"

	suite.mockHistory.On("ListRateHistory", ctx, suite.hubID, mock.MatchedBy(func(c *string) bool {
		return c != nil && *c == "USD"
	}), 50).Return([]domain.ExchangeRateHistory{}, nil).Once()

	got, err := suite.service.ListHistory(ctx, suite.hubID, &code, 50)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestListHistory_NilBecomesEmpty() {
	ctx := context.Background()
	var none []domain.ExchangeRateHistory

	suite.mockHistory.On("ListRateHistory", ctx, suite.hubID, (*string)(nil), 0).Return(none, nil).Once()

	got, err := suite.service.ListHistory(ctx, suite.hubID, nil, 0)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.NotNil(got)
}

func TestHistoryService(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
