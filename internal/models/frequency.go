package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FrequencyUnit is the calendar unit a recurrence repeats on
type FrequencyUnit string

const (
	FrequencyUnitDay       FrequencyUnit = "day"
	FrequencyUnitWeek      FrequencyUnit = "week"
	FrequencyUnitFortnight FrequencyUnit = "fortnight"
	FrequencyUnitMonth     FrequencyUnit = "month"
	FrequencyUnitQuarter   FrequencyUnit = "quarter"
	FrequencyUnitYear      FrequencyUnit = "year"
)

// Named frequency tokens
const (
	FrequencyDaily       = "Daily"
	FrequencyWeekly      = "Weekly"
	FrequencyFortnightly = "Fortnightly"
	FrequencyMonthly     = "Monthly"
	FrequencyQuarterly   = "Quarterly"
	FrequencyYearly      = "Yearly"
)

// MaxFrequencyCount bounds the count of a frequency token
const MaxFrequencyCount = 1000

var (
	ErrUnsupportedFrequency  = errors.New("unsupported frequency")
	ErrInvalidFrequencyToken = errors.New("invalid frequency token")
	ErrNoNamedToken          = errors.New("frequency has no named token")
)

var namedTokens = map[FrequencyUnit]string{
	FrequencyUnitDay:       FrequencyDaily,
	FrequencyUnitWeek:      FrequencyWeekly,
	FrequencyUnitFortnight: FrequencyFortnightly,
	FrequencyUnitMonth:     FrequencyMonthly,
	FrequencyUnitQuarter:   FrequencyQuarterly,
	FrequencyUnitYear:      FrequencyYearly,
}

// Frequency is a periodic cadence: Count repetitions of Unit per period
type Frequency struct {
	Unit  FrequencyUnit
	Count int
}

// Single-count cadences
var (
	Daily       = Frequency{Unit: FrequencyUnitDay, Count: 1}
	Weekly      = Frequency{Unit: FrequencyUnitWeek, Count: 1}
	Fortnightly = Frequency{Unit: FrequencyUnitFortnight, Count: 1}
	Monthly     = Frequency{Unit: FrequencyUnitMonth, Count: 1}
	Quarterly   = Frequency{Unit: FrequencyUnitQuarter, Count: 1}
	Yearly      = Frequency{Unit: FrequencyUnitYear, Count: 1}
)

// NewFrequency builds a normalized frequency and validates it
func NewFrequency(unit FrequencyUnit, count int) (Frequency, error) {
	f := Frequency{Unit: unit, Count: count}
	if err := f.Validate(); err != nil {
		return Frequency{}, err
	}
	return f.Normalize(), nil
}

// Validate reports ErrUnsupportedFrequency for unknown units and counts outside 1..MaxFrequencyCount
func (f Frequency) Validate() error {
	if _, ok := namedTokens[f.Unit]; !ok {
		return fmt.Errorf("%w: unit %q", ErrUnsupportedFrequency, string(f.Unit))
	}
	if f.Count <= 0 || f.Count > MaxFrequencyCount {
		return fmt.Errorf("%w: count %d", ErrUnsupportedFrequency, f.Count)
	}
	return nil
}

// IsZero reports whether the frequency was never set
func (f Frequency) IsZero() bool {
	return f.Unit == "" && f.Count == 0
}

// Normalize folds equivalent cadences onto the coarsest unit,
// so 2w becomes Fortnightly and 3m becomes Quarterly.
func (f Frequency) Normalize() Frequency {
	switch f.Unit {
	case FrequencyUnitWeek:
		if f.Count > 0 && f.Count%2 == 0 {
			return Frequency{Unit: FrequencyUnitFortnight, Count: f.Count / 2}
		}
	case FrequencyUnitMonth:
		if f.Count > 0 && f.Count%12 == 0 {
			return Frequency{Unit: FrequencyUnitYear, Count: f.Count / 12}
		}
		if f.Count > 0 && f.Count%3 == 0 {
			return Frequency{Unit: FrequencyUnitQuarter, Count: f.Count / 3}
		}
	}
	return f
}

// Advance returns the date one period after date.
// Month arithmetic follows time.AddDate normalization, so Jan 31 + 1 month is Mar 3 (Mar 2 in leap years).
// A result that does not land strictly after date is reported as ErrUnsupportedFrequency.
func (f Frequency) Advance(date time.Time) (time.Time, error) {
	if err := f.Validate(); err != nil {
		return time.Time{}, err
	}

	var next time.Time
	switch f.Unit {
	case FrequencyUnitDay:
		next = date.AddDate(0, 0, f.Count)
	case FrequencyUnitWeek:
		next = date.AddDate(0, 0, 7*f.Count)
	case FrequencyUnitFortnight:
		next = date.AddDate(0, 0, 14*f.Count)
	case FrequencyUnitMonth:
		next = date.AddDate(0, f.Count, 0)
	case FrequencyUnitQuarter:
		next = date.AddDate(0, 3*f.Count, 0)
	case FrequencyUnitYear:
		next = date.AddDate(f.Count, 0, 0)
	}

	if !next.After(date) {
		return time.Time{}, fmt.Errorf("%w: %s does not advance from %s", ErrUnsupportedFrequency, f.CountUnitToken(), date.Format(DateLayout))
	}
	return next, nil
}

// ParseNamedToken converts "Monthly", "weekly", ... into a frequency
func ParseNamedToken(token string) (Frequency, error) {
	trimmed := strings.TrimSpace(token)
	for unit, name := range namedTokens {
		if strings.EqualFold(trimmed, name) {
			return Frequency{Unit: unit, Count: 1}, nil
		}
	}
	return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyToken, token)
}

// ParseCountUnitToken converts "<count><unit>" tokens such as "1d", "2w", "3M" or " 1y ".
func ParseCountUnitToken(token string) (Frequency, error) {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) < 2 {
		return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyToken, token)
	}

	digits := trimmed[:len(trimmed)-1]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyToken, token)
		}
	}

	count, err := strconv.Atoi(digits)
	if err != nil || count <= 0 || count > MaxFrequencyCount {
		return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyToken, token)
	}

	var unit FrequencyUnit
	switch strings.ToLower(trimmed[len(trimmed)-1:]) {
	case "d":
		unit = FrequencyUnitDay
	case "w":
		unit = FrequencyUnitWeek
	case "m":
		unit = FrequencyUnitMonth
	case "y":
		unit = FrequencyUnitYear
	default:
		return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyToken, token)
	}

	return Frequency{Unit: unit, Count: count}.Normalize(), nil
}

// ParseFrequency accepts either a named token or a count-unit token
func ParseFrequency(token string) (Frequency, error) {
	if f, err := ParseNamedToken(token); err == nil {
		return f, nil
	}
	return ParseCountUnitToken(token)
}

// NamedToken returns the named token for single-count cadences
func (f Frequency) NamedToken() (string, error) {
	n := f.Normalize()
	name, ok := namedTokens[n.Unit]
	if !ok || n.Count != 1 {
		return "", fmt.Errorf("%w: %s", ErrNoNamedToken, f.CountUnitToken())
	}
	return name, nil
}

// CountUnitToken renders the frequency in "<count><unit>" form
func (f Frequency) CountUnitToken() string {
	switch f.Unit {
	case FrequencyUnitDay:
		return fmt.Sprintf("%dd", f.Count)
	case FrequencyUnitWeek:
		return fmt.Sprintf("%dw", f.Count)
	case FrequencyUnitFortnight:
		return fmt.Sprintf("%dw", 2*f.Count)
	case FrequencyUnitMonth:
		return fmt.Sprintf("%dm", f.Count)
	case FrequencyUnitQuarter:
		return fmt.Sprintf("%dm", 3*f.Count)
	case FrequencyUnitYear:
		return fmt.Sprintf("%dy", f.Count)
	}
	return fmt.Sprintf("%d%s", f.Count, f.Unit)
}

// String prefers the named token and falls back to the count-unit form
func (f Frequency) String() string {
	if name, err := f.NamedToken(); err == nil {
		return name
	}
	return f.CountUnitToken()
}

// MarshalJSON encodes the frequency as its display token
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts either token convention
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFrequencyToken, string(data))
	}
	parsed, err := ParseFrequency(token)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value stores the frequency as its count-unit token
func (f Frequency) Value() (driver.Value, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.CountUnitToken(), nil
}

// Scan reads a stored frequency token
func (f *Frequency) Scan(value interface{}) error {
	var token string
	switch v := value.(type) {
	case string:
		token = v
	case []byte:
		token = string(v)
	case nil:
		*f = Frequency{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Frequency", value)
	}

	parsed, err := ParseFrequency(token)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
