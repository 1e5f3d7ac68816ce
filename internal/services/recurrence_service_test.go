package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"recurrence-ledger/internal/models"
	"recurrence-ledger/internal/repositories"
	"recurrence-ledger/internal/repositories/repository_mocks"
	"recurrence-ledger/internal/services"
	"recurrence-ledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurrenceServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	recurrenceRepo  *repository_mocks.MockRecurrenceRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.RecurrenceServiceInterface
}

func TestRecurrenceServiceSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceServiceTestSuite))
}

func (s *RecurrenceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.recurrenceRepo = repository_mocks.NewMockRecurrenceRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = s.newService(services.NewOccurrenceProjector(0), services.RecurrenceServiceConfig{})
}

func (s *RecurrenceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RecurrenceServiceTestSuite) newService(projector services.OccurrenceProjectorInterface, config services.RecurrenceServiceConfig) services.RecurrenceServiceInterface {
	return services.NewRecurrenceService(
		s.recurrenceRepo,
		s.transactionRepo,
		projector,
		services.NewPatternDetector(services.DefaultDetectorConfig()),
		s.metrics,
		slog.Default(),
		config,
	)
}

func (s *RecurrenceServiceTestSuite) newRecurrence(basis time.Time, frequency models.Frequency) *models.Recurrence {
	r := newRecurrence(basis, frequency)
	r.Vendor = gofakeit.Company()
	return r
}

func (s *RecurrenceServiceTestSuite) TestCreateRecurrence_DefaultsToManual() {
	r := s.newRecurrence(day(2024, 1, 1), models.Monthly)
	r.Origin = ""
	s.recurrenceRepo.EXPECT().Create(r).Return(nil)

	s.Require().NoError(s.service.CreateRecurrence(r))
	s.Equal(models.RecurrenceOriginManual, r.Origin)
}

func (s *RecurrenceServiceTestSuite) TestCreateRecurrence_InvalidFrequency() {
	r := s.newRecurrence(day(2024, 1, 1), models.Frequency{Unit: "hour", Count: 1})

	s.ErrorIs(s.service.CreateRecurrence(r), models.ErrUnsupportedFrequency)
}

func (s *RecurrenceServiceTestSuite) TestGetRecurrence_NotFound() {
	id := uuid.New()
	s.recurrenceRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrRecurrenceNotFound)

	_, err := s.service.GetRecurrence(id)

	s.ErrorIs(err, services.ErrRecurrenceNotFound)
}

func (s *RecurrenceServiceTestSuite) TestUpdateRecurrence_KeepsProgressForSameCadence() {
	existing := s.newRecurrence(day(2024, 1, 1), models.Monthly)
	existing.Origin = models.RecurrenceOriginDetected
	existing.CreatedAt = day(2024, 1, 1)
	last := day(2024, 3, 1)
	existing.LastMaterializedDate = &last

	updated := *existing
	updated.Origin = ""
	updated.LastMaterializedDate = nil
	updated.CreatedAt = time.Time{}
	updated.Amount = decimal.RequireFromString("-20.00")

	s.recurrenceRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.recurrenceRepo.EXPECT().Update(&updated).Return(nil)

	s.Require().NoError(s.service.UpdateRecurrence(&updated))
	s.Equal(models.RecurrenceOriginDetected, updated.Origin)
	s.Equal(existing.CreatedAt, updated.CreatedAt)
	s.Require().NotNil(updated.LastMaterializedDate)
	s.True(updated.LastMaterializedDate.Equal(last))
}

func (s *RecurrenceServiceTestSuite) TestUpdateRecurrence_NewCadenceResetsProgress() {
	existing := s.newRecurrence(day(2024, 1, 1), models.Monthly)
	last := day(2024, 3, 1)
	existing.LastMaterializedDate = &last

	updated := *existing
	updated.LastMaterializedDate = nil
	updated.Frequency = models.Weekly

	s.recurrenceRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	s.recurrenceRepo.EXPECT().Update(&updated).Return(nil)

	s.Require().NoError(s.service.UpdateRecurrence(&updated))
	s.Nil(updated.LastMaterializedDate)
}

func (s *RecurrenceServiceTestSuite) TestEndRecurrence() {
	r := s.newRecurrence(day(2024, 1, 15), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)
	s.recurrenceRepo.EXPECT().Update(r).Return(nil)

	ended, err := s.service.EndRecurrence(r.ID, day(2024, 6, 30))

	s.Require().NoError(err)
	s.True(ended.EndDate.Equal(day(2024, 6, 30)))
}

func (s *RecurrenceServiceTestSuite) TestEndRecurrence_BeforeBasis() {
	r := s.newRecurrence(day(2024, 1, 15), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)

	_, err := s.service.EndRecurrence(r.ID, day(2023, 12, 1))

	s.ErrorIs(err, models.ErrRecurrenceEndBeforeBasis)
}

func (s *RecurrenceServiceTestSuite) TestDeleteRecurrence_NotFound() {
	id := uuid.New()
	s.recurrenceRepo.EXPECT().Delete(id).Return(repositories.ErrRecurrenceNotFound)

	s.ErrorIs(s.service.DeleteRecurrence(id), services.ErrRecurrenceNotFound)
}

func (s *RecurrenceServiceTestSuite) TestProjectRecurrence() {
	r := s.newRecurrence(day(2024, 1, 15), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)

	result, err := s.service.ProjectRecurrence(r.ID, day(2024, 1, 1), day(2024, 3, 31))

	s.Require().NoError(err)
	s.False(result.Truncated)
	s.Equal([]time.Time{day(2024, 1, 15), day(2024, 2, 15), day(2024, 3, 15)}, datesOf(result.Occurrences))
}

func (s *RecurrenceServiceTestSuite) TestProjectRecurrence_TruncatedReturnsPartial() {
	service := s.newService(services.NewOccurrenceProjector(3), services.RecurrenceServiceConfig{})
	r := s.newRecurrence(day(2024, 1, 1), models.Daily)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)

	result, err := service.ProjectRecurrence(r.ID, day(2024, 1, 1), day(2024, 1, 31))

	s.Require().NoError(err)
	s.True(result.Truncated)
	s.Len(result.Occurrences, 3)
}

func (s *RecurrenceServiceTestSuite) TestProjectRecurrence_InvalidWindow() {
	r := s.newRecurrence(day(2024, 1, 1), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)

	_, err := s.service.ProjectRecurrence(r.ID, day(2024, 2, 1), day(2024, 1, 1))

	s.ErrorIs(err, services.ErrInvalidWindow)
}

func (s *RecurrenceServiceTestSuite) TestNextOccurrence() {
	r := s.newRecurrence(day(2024, 1, 15), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)

	next, err := s.service.NextOccurrence(r.ID, day(2024, 1, 15))

	s.Require().NoError(err)
	s.True(next.Date.Equal(day(2024, 2, 15)))
}

func (s *RecurrenceServiceTestSuite) TestNextOccurrence_ProjectorError() {
	projector := service_mocks.NewMockOccurrenceProjectorInterface(s.ctrl)
	service := s.newService(projector, services.RecurrenceServiceConfig{})
	r := s.newRecurrence(day(2024, 1, 15), models.Monthly)
	s.recurrenceRepo.EXPECT().GetByID(r.ID).Return(r, nil)
	projector.EXPECT().NextAfter(r, day(2030, 1, 1)).Return(nil, services.ErrProjectionTruncated)

	_, err := service.NextOccurrence(r.ID, day(2030, 1, 1))

	s.ErrorIs(err, services.ErrProjectionTruncated)
}

func (s *RecurrenceServiceTestSuite) TestSuggestRecurrences() {
	now := day(2024, 6, 10)
	history := append(
		series("Streamly", "Entertainment", day(2024, 6, 1), 30, "-9.99", "-9.99", "-12.99"),
		series("Netflix", "Entertainment", day(2024, 6, 1), 30, "-15.49", "-15.49", "-15.49")...,
	)
	known := []models.Recurrence{*s.newRecurrence(day(2024, 1, 1), models.Monthly)}
	known[0].Vendor = "Netflix"

	s.transactionRepo.EXPECT().GetByDateRange(day(2023, 6, 11), now).Return(history, nil)
	s.recurrenceRepo.EXPECT().GetAll(models.RecurrenceFilters{}).Return(known, nil)

	report, err := s.service.SuggestRecurrences(now)

	s.Require().NoError(err)
	s.Require().Len(report.Suggestions, 1)
	s.Equal("Streamly", report.Suggestions[0].Vendor)
	s.Equal("-12.99", report.Suggestions[0].Amount.StringFixed(2))
	s.Equal(1, report.CountByReason()[services.OutcomeAlreadyKnown])
}

func (s *RecurrenceServiceTestSuite) TestSuggestRecurrences_HistoryError() {
	s.transactionRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.service.SuggestRecurrences(day(2024, 6, 10))

	s.ErrorContains(err, "failed to load transaction history")
}

func (s *RecurrenceServiceTestSuite) TestUpcomingOccurrences_MergesAndIsolatesFailures() {
	service := s.newService(services.NewOccurrenceProjector(40), services.RecurrenceServiceConfig{})
	start, end := day(2024, 3, 1), day(2024, 3, 31)

	monthly := s.newRecurrence(day(2024, 1, 20), models.Monthly)
	monthly.Vendor = "Zeta"
	weekly := s.newRecurrence(day(2024, 3, 4), models.Weekly)
	weekly.Vendor = "Alpha"
	daily := s.newRecurrence(day(2023, 6, 1), models.Daily)
	broken := s.newRecurrence(day(2024, 1, 1), models.Frequency{Unit: "hour", Count: 1})

	s.recurrenceRepo.EXPECT().GetAll(models.RecurrenceFilters{ActiveOn: &start}).
		Return([]models.Recurrence{*monthly, *weekly, *daily, *broken}, nil)

	result, err := service.UpcomingOccurrences(s.ctx, start, end)

	s.Require().NoError(err)
	s.Equal([]time.Time{day(2024, 3, 4), day(2024, 3, 11), day(2024, 3, 18), day(2024, 3, 20), day(2024, 3, 25)}, datesOf(result.Occurrences))
	s.Equal("Zeta", result.Occurrences[3].Vendor)
	s.Equal([]uuid.UUID{daily.ID}, result.Truncated)
	s.Require().Len(result.Failed, 1)
	s.Equal(broken.ID, result.Failed[0].RecurrenceID)
	s.ErrorIs(result.Failed[0].Err, models.ErrUnsupportedFrequency)
}

func (s *RecurrenceServiceTestSuite) TestUpcomingOccurrences_WindowLimits() {
	service := s.newService(services.NewOccurrenceProjector(0), services.RecurrenceServiceConfig{CalendarMaxDays: 31})

	_, err := service.UpcomingOccurrences(s.ctx, day(2024, 3, 1), day(2024, 2, 1))
	s.ErrorIs(err, services.ErrInvalidWindow)

	_, err = service.UpcomingOccurrences(s.ctx, day(2024, 1, 1), day(2024, 3, 1))
	s.ErrorIs(err, services.ErrCalendarWindowTooWide)
}

func (s *RecurrenceServiceTestSuite) TestUpcomingOccurrences_Cancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	start := day(2024, 3, 1)
	s.recurrenceRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Recurrence{*s.newRecurrence(start, models.Monthly)}, nil)

	_, err := s.service.UpcomingOccurrences(ctx, start, day(2024, 3, 31))

	s.ErrorIs(err, context.Canceled)
}
