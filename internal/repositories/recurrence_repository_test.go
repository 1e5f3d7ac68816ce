package repositories

import (
	"testing"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecurrenceRepositoryTestSuite is the test suite for Recurrence repository
type RecurrenceRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo RecurrenceRepositoryInterface
}

func (s *RecurrenceRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.repo = NewRecurrenceRepository(s.db)
}

func (s *RecurrenceRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestRecurrenceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceRepositoryTestSuite))
}

func (s *RecurrenceRepositoryTestSuite) createTestRecurrence(basis time.Time) *models.Recurrence {
	return &models.Recurrence{
		Account:   "Checking",
		Vendor:    gofakeit.Company(),
		Category:  models.CategoryBillsUtilities,
		Amount:    decimal.NewFromFloat(-gofakeit.Float64Range(10, 200)).Round(2),
		Currency:  "USD",
		BasisDate: basis,
		Frequency: models.Monthly,
	}
}

func (s *RecurrenceRepositoryTestSuite) TestCreate_DefaultsAndRoundTrip() {
	r := s.createTestRecurrence(day(2024, 1, 15))

	require.NoError(s.T(), s.repo.Create(r))
	assert.NotEqual(s.T(), uuid.Nil, r.ID)
	assert.Equal(s.T(), models.RecurrenceOriginManual, r.Origin)

	found, err := s.repo.GetByID(r.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.Monthly, found.Frequency)
	assert.True(s.T(), found.BasisDate.Equal(day(2024, 1, 15)))
	assert.True(s.T(), r.Amount.Equal(found.Amount))
	assert.Nil(s.T(), found.EndDate)
}

func (s *RecurrenceRepositoryTestSuite) TestCreate_Invalid() {
	r := s.createTestRecurrence(day(2024, 1, 15))
	r.Frequency = models.Frequency{Unit: "hour", Count: 1}

	assert.ErrorIs(s.T(), s.repo.Create(r), models.ErrUnsupportedFrequency)
}

func (s *RecurrenceRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	assert.ErrorIs(s.T(), err, ErrRecurrenceNotFound)
}

func (s *RecurrenceRepositoryTestSuite) TestGetAll_Filters() {
	ended := s.createTestRecurrence(day(2023, 1, 1))
	end := day(2023, 12, 31)
	ended.EndDate = &end
	active := s.createTestRecurrence(day(2024, 2, 1))
	detected := s.createTestRecurrence(day(2024, 1, 1))
	detected.Origin = models.RecurrenceOriginDetected
	detected.Account = "Savings"
	for _, r := range []*models.Recurrence{ended, active, detected} {
		require.NoError(s.T(), s.repo.Create(r))
	}

	all, err := s.repo.GetAll(models.RecurrenceFilters{})
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	assert.Equal(s.T(), ended.ID, all[0].ID)
	assert.Equal(s.T(), active.ID, all[2].ID)

	activeOn := day(2024, 1, 1)
	current, err := s.repo.GetAll(models.RecurrenceFilters{ActiveOn: &activeOn})
	require.NoError(s.T(), err)
	assert.Len(s.T(), current, 2)

	lastDay := day(2023, 12, 31)
	current, err = s.repo.GetAll(models.RecurrenceFilters{ActiveOn: &lastDay})
	require.NoError(s.T(), err)
	assert.Len(s.T(), current, 3)

	byOrigin, err := s.repo.GetAll(models.RecurrenceFilters{Origin: models.RecurrenceOriginDetected, Account: "Savings"})
	require.NoError(s.T(), err)
	require.Len(s.T(), byOrigin, 1)
	assert.Equal(s.T(), detected.ID, byOrigin[0].ID)
}

func (s *RecurrenceRepositoryTestSuite) TestUpdate() {
	r := s.createTestRecurrence(day(2024, 1, 15))
	require.NoError(s.T(), s.repo.Create(r))

	r.Frequency = models.Quarterly
	r.Amount = decimal.RequireFromString("-99.00")
	require.NoError(s.T(), s.repo.Update(r))

	found, err := s.repo.GetByID(r.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.Quarterly, found.Frequency)
	assert.Equal(s.T(), "-99.00", found.Amount.StringFixed(2))
}

func (s *RecurrenceRepositoryTestSuite) TestUpdate_NotFound() {
	r := s.createTestRecurrence(day(2024, 1, 15))
	r.ID = uuid.New()

	assert.ErrorIs(s.T(), s.repo.Update(r), ErrRecurrenceNotFound)
}

func (s *RecurrenceRepositoryTestSuite) TestUpdateLastMaterialized() {
	r := s.createTestRecurrence(day(2024, 1, 15))
	require.NoError(s.T(), s.repo.Create(r))

	require.NoError(s.T(), s.repo.UpdateLastMaterialized(r.ID, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)))

	found, err := s.repo.GetByID(r.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found.LastMaterializedDate)
	assert.True(s.T(), found.LastMaterializedDate.Equal(day(2024, 3, 15)))

	assert.ErrorIs(s.T(), s.repo.UpdateLastMaterialized(uuid.New(), day(2024, 3, 15)), ErrRecurrenceNotFound)
}

func (s *RecurrenceRepositoryTestSuite) TestDelete() {
	r := s.createTestRecurrence(day(2024, 1, 15))
	require.NoError(s.T(), s.repo.Create(r))

	require.NoError(s.T(), s.repo.Delete(r.ID))

	_, err := s.repo.GetByID(r.ID)
	assert.ErrorIs(s.T(), err, ErrRecurrenceNotFound)
	assert.ErrorIs(s.T(), s.repo.Delete(r.ID), ErrRecurrenceNotFound)
}
