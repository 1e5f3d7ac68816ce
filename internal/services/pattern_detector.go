package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultDetectionWindowDays = 365
	DefaultMinOccurrences      = 3
	DefaultCVThreshold         = 0.20
	DefaultLowTrustCVThreshold = 0.05
)

// GroupOutcomeReason explains what happened to one signature group
type GroupOutcomeReason string

const (
	OutcomeSuggested           GroupOutcomeReason = "suggested"
	OutcomeTooFewTransactions  GroupOutcomeReason = "too_few_transactions"
	OutcomeUnknownVendor       GroupOutcomeReason = "unknown_vendor"
	OutcomeAlreadyKnown        GroupOutcomeReason = "already_known"
	OutcomeNoPositiveIntervals GroupOutcomeReason = "no_positive_intervals"
	OutcomeNoFrequencyBand     GroupOutcomeReason = "no_frequency_band"
	OutcomeAmountUnstable      GroupOutcomeReason = "amount_unstable"
	OutcomeFailed              GroupOutcomeReason = "failed"
)

// FrequencyBand maps a mean interval to a frequency when it lies within Tolerance days of Center
type FrequencyBand struct {
	Frequency     models.Frequency
	CenterDays    float64
	ToleranceDays float64
}

// DefaultFrequencyBands are checked in order; the widest band goes first
var DefaultFrequencyBands = []FrequencyBand{
	{Frequency: models.Monthly, CenterDays: 30.44, ToleranceDays: 12},
	{Frequency: models.Weekly, CenterDays: 7, ToleranceDays: 3},
	{Frequency: models.Yearly, CenterDays: 365, ToleranceDays: 30},
}

// DefaultUnknownVendors are placeholder vendor names that never form a pattern
var DefaultUnknownVendors = []string{"", "unknown", "unnamed", "unknown vendor", "n/a"}

// DetectorConfig tunes the pattern detector
type DetectorConfig struct {
	WindowDays          int
	MinOccurrences      int
	Bands               []FrequencyBand
	DefaultCVThreshold  float64
	LowTrustCVThreshold float64
	HighTrustKeywords   []string
	LowTrustKeywords    []string
	UnknownVendors      []string
	IDGenerator         func() uuid.UUID
}

// DefaultDetectorConfig returns the stock detection thresholds
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		WindowDays:          DefaultDetectionWindowDays,
		MinOccurrences:      DefaultMinOccurrences,
		Bands:               DefaultFrequencyBands,
		DefaultCVThreshold:  DefaultCVThreshold,
		LowTrustCVThreshold: DefaultLowTrustCVThreshold,
		HighTrustKeywords:   models.HighTrustKeywords,
		LowTrustKeywords:    models.LowTrustKeywords,
		UnknownVendors:      DefaultUnknownVendors,
		IDGenerator:         uuid.New,
	}
}

// Signature identifies transactions believed to belong to the same obligation
type Signature struct {
	Vendor      string
	Category    string
	SubCategory string
	Account     string
	Remarks     string
}

func (s Signature) String() string {
	return strings.Join([]string{s.Vendor, s.Category, s.SubCategory, s.Account, s.Remarks}, " | ")
}

// GroupOutcome records how one signature group was judged
type GroupOutcome struct {
	Signature   Signature
	Size        int
	Reason      GroupOutcomeReason
	MeanGapDays float64
	CV          float64
	TrustTier   models.TrustTier
	Err         error
}

// DetectionReport holds the suggestions of one detection pass and the fate of every group
type DetectionReport struct {
	Suggestions []models.Recurrence
	Outcomes    []GroupOutcome
}

// CountByReason tallies outcomes per reason
func (r *DetectionReport) CountByReason() map[GroupOutcomeReason]int {
	counts := make(map[GroupOutcomeReason]int)
	for _, outcome := range r.Outcomes {
		counts[outcome.Reason]++
	}
	return counts
}

type patternDetector struct {
	config         DetectorConfig
	unknownVendors map[string]struct{}
}

// NewPatternDetector creates a detector; zero-valued config fields take their defaults
func NewPatternDetector(config DetectorConfig) PatternDetectorInterface {
	defaults := DefaultDetectorConfig()
	if config.WindowDays <= 0 {
		config.WindowDays = defaults.WindowDays
	}
	if config.MinOccurrences <= 0 {
		config.MinOccurrences = defaults.MinOccurrences
	}
	if len(config.Bands) == 0 {
		config.Bands = defaults.Bands
	}
	if config.DefaultCVThreshold <= 0 {
		config.DefaultCVThreshold = defaults.DefaultCVThreshold
	}
	if config.LowTrustCVThreshold <= 0 {
		config.LowTrustCVThreshold = defaults.LowTrustCVThreshold
	}
	if config.HighTrustKeywords == nil {
		config.HighTrustKeywords = defaults.HighTrustKeywords
	}
	if config.LowTrustKeywords == nil {
		config.LowTrustKeywords = defaults.LowTrustKeywords
	}
	if config.UnknownVendors == nil {
		config.UnknownVendors = defaults.UnknownVendors
	}
	if config.IDGenerator == nil {
		config.IDGenerator = defaults.IDGenerator
	}

	unknown := make(map[string]struct{}, len(config.UnknownVendors))
	for _, vendor := range config.UnknownVendors {
		unknown[strings.ToLower(strings.TrimSpace(vendor))] = struct{}{}
	}

	return &patternDetector{config: config, unknownVendors: unknown}
}

// Detect returns recurrence suggestions for the transactions in the trailing window before now
func (d *patternDetector) Detect(transactions []models.Transaction, existing []models.Recurrence, now time.Time) []models.Recurrence {
	return d.Evaluate(transactions, existing, now).Suggestions
}

// Evaluate runs detection and reports the outcome of every signature group.
// Groups are evaluated in signature order so output is stable for a given input.
func (d *patternDetector) Evaluate(transactions []models.Transaction, existing []models.Recurrence, now time.Time) *DetectionReport {
	today := models.DateOf(now)
	windowStart := today.AddDate(0, 0, -d.config.WindowDays)

	groups := make(map[Signature][]models.Transaction)
	for _, tx := range transactions {
		day := models.DateOf(tx.Date)
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		signature := signatureOf(tx)
		groups[signature] = append(groups[signature], tx)
	}

	signatures := make([]Signature, 0, len(groups))
	for signature := range groups {
		signatures = append(signatures, signature)
	}
	sort.Slice(signatures, func(i, j int) bool {
		return signatures[i].String() < signatures[j].String()
	})

	report := &DetectionReport{
		Suggestions: make([]models.Recurrence, 0),
		Outcomes:    make([]GroupOutcome, 0, len(signatures)),
	}

	for _, signature := range signatures {
		outcome, suggestion := d.evaluateGroup(signature, groups[signature], existing, today)
		report.Outcomes = append(report.Outcomes, outcome)
		if suggestion != nil {
			report.Suggestions = append(report.Suggestions, *suggestion)
		}
	}

	return report
}

// evaluateGroup judges a single group. A panic is contained to the group.
func (d *patternDetector) evaluateGroup(signature Signature, group []models.Transaction, existing []models.Recurrence, today time.Time) (outcome GroupOutcome, suggestion *models.Recurrence) {
	outcome = GroupOutcome{Signature: signature, Size: len(group)}

	defer func() {
		if recovered := recover(); recovered != nil {
			outcome.Reason = OutcomeFailed
			outcome.Err = fmt.Errorf("group %q: %v", signature.String(), recovered)
			suggestion = nil
		}
	}()

	if len(group) < d.config.MinOccurrences {
		outcome.Reason = OutcomeTooFewTransactions
		return outcome, nil
	}

	if d.isUnknownVendor(signature.Vendor) {
		outcome.Reason = OutcomeUnknownVendor
		return outcome, nil
	}

	if isKnownRecurrence(signature, existing) {
		outcome.Reason = OutcomeAlreadyKnown
		return outcome, nil
	}

	sorted := sortedByDate(group)

	gaps := positiveGaps(sorted)
	if len(gaps) == 0 {
		outcome.Reason = OutcomeNoPositiveIntervals
		return outcome, nil
	}

	outcome.MeanGapDays = meanOf(gaps)
	frequency, ok := d.classify(outcome.MeanGapDays)
	if !ok {
		outcome.Reason = OutcomeNoFrequencyBand
		return outcome, nil
	}

	anchor := anchorDay(sorted)

	outcome.CV = coefficientOfVariation(sorted)
	outcome.TrustTier = models.ClassifyTrust(signature.Category, d.config.HighTrustKeywords, d.config.LowTrustKeywords)
	if !d.amountIsStable(outcome.TrustTier, outcome.CV) {
		outcome.Reason = OutcomeAmountUnstable
		return outcome, nil
	}

	latest := sorted[len(sorted)-1]
	suggestion = &models.Recurrence{
		ID:        d.config.IDGenerator(),
		Account:   signature.Account,
		Vendor:    signature.Vendor,
		Category:  signature.Category,
		Amount:    latest.Amount,
		Currency:  latest.Currency,
		BasisDate: nextBasisDate(anchor, today),
		Frequency: frequency,
		Origin:    models.RecurrenceOriginDetected,
	}
	if signature.SubCategory != "" {
		subCategory := signature.SubCategory
		suggestion.SubCategory = &subCategory
	}

	outcome.Reason = OutcomeSuggested
	return outcome, suggestion
}

func (d *patternDetector) isUnknownVendor(vendor string) bool {
	_, unknown := d.unknownVendors[strings.ToLower(strings.TrimSpace(vendor))]
	return unknown
}

func (d *patternDetector) classify(meanGap float64) (models.Frequency, bool) {
	for _, band := range d.config.Bands {
		if math.Abs(meanGap-band.CenterDays) <= band.ToleranceDays {
			return band.Frequency, true
		}
	}
	return models.Frequency{}, false
}

func (d *patternDetector) amountIsStable(tier models.TrustTier, cv float64) bool {
	switch tier {
	case models.TrustTierHigh:
		return true
	case models.TrustTierLow:
		return cv <= d.config.LowTrustCVThreshold
	default:
		return cv <= d.config.DefaultCVThreshold
	}
}

func signatureOf(tx models.Transaction) Signature {
	return Signature{
		Vendor:      strings.TrimSpace(tx.Vendor),
		Category:    strings.TrimSpace(tx.Category),
		SubCategory: strings.TrimSpace(models.StringValue(tx.SubCategory)),
		Account:     strings.TrimSpace(tx.Account),
		Remarks:     strings.TrimSpace(models.StringValue(tx.Remarks)),
	}
}

func isKnownRecurrence(signature Signature, existing []models.Recurrence) bool {
	for i := range existing {
		if existing[i].Matches(signature.Vendor, signature.Account, signature.Category) {
			return true
		}
	}
	return false
}

func sortedByDate(group []models.Transaction) []models.Transaction {
	sorted := make([]models.Transaction, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.DateOf(sorted[i].Date).Before(models.DateOf(sorted[j].Date))
	})
	return sorted
}

// positiveGaps returns day gaps between consecutive transactions, skipping same-day duplicates
func positiveGaps(sorted []models.Transaction) []float64 {
	gaps := make([]float64, 0, len(sorted))
	for i := 1; i < len(sorted); i++ {
		gap := models.DaysBetween(sorted[i-1].Date, sorted[i].Date)
		if gap > 0 {
			gaps = append(gaps, float64(gap))
		}
	}
	return gaps
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// anchorDay is the most frequent day of month; ties go to the day seen first
func anchorDay(sorted []models.Transaction) int {
	counts := make(map[int]int)
	order := make([]int, 0, len(sorted))
	for _, tx := range sorted {
		day := models.DateOf(tx.Date).Day()
		if counts[day] == 0 {
			order = append(order, day)
		}
		counts[day]++
	}

	best, bestCount := 0, 0
	for _, day := range order {
		if counts[day] > bestCount {
			best, bestCount = day, counts[day]
		}
	}
	return best
}

// coefficientOfVariation is the population standard deviation over the absolute mean.
// A zero mean yields +Inf.
func coefficientOfVariation(sorted []models.Transaction) float64 {
	n := decimal.NewFromInt(int64(len(sorted)))

	sum := decimal.Zero
	for _, tx := range sorted {
		sum = sum.Add(tx.Amount)
	}
	mean := sum.Div(n)
	if mean.IsZero() {
		return math.Inf(1)
	}

	squares := decimal.Zero
	for _, tx := range sorted {
		deviation := tx.Amount.Sub(mean)
		squares = squares.Add(deviation.Mul(deviation))
	}
	variance := squares.Div(n)

	return math.Sqrt(variance.InexactFloat64()) / mean.Abs().InexactFloat64()
}

// nextBasisDate places the anchor day in the current month, or next month if that is not after today
func nextBasisDate(anchor int, today time.Time) time.Time {
	candidate := time.Date(today.Year(), today.Month(), anchor, 0, 0, 0, 0, time.UTC)
	if candidate.After(today) {
		return candidate
	}
	return time.Date(today.Year(), today.Month()+1, anchor, 0, 0, 0, 0, time.UTC)
}
