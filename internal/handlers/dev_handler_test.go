package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories/repository_mocks"
	"recurrence-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockRepo      *repository_mocks.MockTransactionRepositoryInterface
	mockGenerator *service_mocks.MockTransactionGeneratorInterface
	handler       *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockTransactionGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockRepo, s.mockGenerator)
	s.handler.now = func() time.Time { return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) }
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) TestSeedHistory_Defaults() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	generated := []*models.Transaction{
		{Account: "Checking", Vendor: "Netflix", Amount: decimal.RequireFromString("-15.49")},
		{Account: "Checking", Vendor: "Employer Payroll", Amount: decimal.RequireFromString("3200.00")},
	}

	s.mockGenerator.EXPECT().
		GenerateHistory("Checking", time.Date(2023, 12, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)).
		Return(generated)
	s.mockRepo.EXPECT().CreateBatch(gomock.Len(2)).Return(nil)

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(float64(2), response["transactions_created"])
	s.Equal("2023-12-13", response["start_date"])
	s.Equal("2024-06-10", response["end_date"])
}

func (s *DevHandlerTestSuite) TestSeedHistory_ClampsDays() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed?account=Savings&days=5000", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockGenerator.EXPECT().
		GenerateHistory("Savings", time.Date(2022, 6, 11, 0, 0, 0, 0, time.UTC), gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().CreateBatch(gomock.Len(0)).Return(nil)

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestSeedHistory_RepositoryError() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/seed", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockGenerator.EXPECT().GenerateHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("disk full"))

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
