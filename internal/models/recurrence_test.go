package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurrenceTestSuite struct {
	suite.Suite
}

func TestRecurrenceSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceTestSuite))
}

func (s *RecurrenceTestSuite) newRecurrence() Recurrence {
	return Recurrence{
		ID:        uuid.New(),
		Account:   "Checking",
		Vendor:    gofakeit.Company(),
		Category:  "Entertainment",
		Amount:    decimal.NewFromFloat(-12.99),
		Currency:  "USD",
		BasisDate: date(2024, 1, 15),
		Frequency: Monthly,
		Origin:    RecurrenceOriginManual,
	}
}

func (s *RecurrenceTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(r *Recurrence)
		wantErr error
	}{
		{name: "valid", mutate: func(r *Recurrence) {}},
		{name: "missing account", mutate: func(r *Recurrence) { r.Account = " " }, wantErr: ErrRecurrenceAccountRequired},
		{name: "missing category", mutate: func(r *Recurrence) { r.Category = "" }, wantErr: ErrTransactionCategoryMissing},
		{name: "missing basis date", mutate: func(r *Recurrence) { r.BasisDate = time.Time{} }, wantErr: ErrRecurrenceBasisRequired},
		{name: "unsupported frequency", mutate: func(r *Recurrence) { r.Frequency = Frequency{Unit: "hour", Count: 1} }, wantErr: ErrUnsupportedFrequency},
		{name: "frequency count too large", mutate: func(r *Recurrence) { r.Frequency = Frequency{Unit: FrequencyUnitYear, Count: 999999999999} }, wantErr: ErrUnsupportedFrequency},
		{name: "bad currency", mutate: func(r *Recurrence) { r.Currency = "DOLLARS" }, wantErr: ErrInvalidCurrency},
		{name: "end before basis", mutate: func(r *Recurrence) { end := date(2024, 1, 14); r.EndDate = &end }, wantErr: ErrRecurrenceEndBeforeBasis},
		{name: "end on basis", mutate: func(r *Recurrence) { end := date(2024, 1, 15); r.EndDate = &end }},
		{name: "bad origin", mutate: func(r *Recurrence) { r.Origin = "imported" }, wantErr: ErrInvalidRecurrenceOrigin},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := s.newRecurrence()
			tc.mutate(&r)
			err := r.Validate()
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *RecurrenceTestSuite) TestMatches() {
	r := s.newRecurrence()
	r.Vendor = "Netflix"

	s.True(r.Matches("netflix", " CHECKING ", "entertainment"))
	s.False(r.Matches("Netflix", "Savings", "Entertainment"))
	s.False(r.Matches("Hulu", "Checking", "Entertainment"))
}

func (s *RecurrenceTestSuite) TestEnd() {
	r := s.newRecurrence()

	s.ErrorIs(r.End(date(2024, 1, 1)), ErrRecurrenceEndBeforeBasis)
	s.Nil(r.EndDate)

	s.Require().NoError(r.End(time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)))
	s.True(r.EndDate.Equal(date(2024, 6, 30)))
	s.False(r.HasEndedBy(date(2024, 6, 30)))
	s.True(r.HasEndedBy(date(2024, 7, 1)))
}

func (s *RecurrenceTestSuite) TestOccurrenceAt() {
	r := s.newRecurrence()

	occurrence := r.OccurrenceAt(time.Date(2024, 2, 15, 13, 0, 0, 0, time.UTC))

	s.Equal(r.ID, occurrence.RecurrenceID)
	s.True(occurrence.Date.Equal(date(2024, 2, 15)))
	s.True(occurrence.Amount.Equal(r.Amount))
	s.Equal(r.Vendor, occurrence.Vendor)
}
