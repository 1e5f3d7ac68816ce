package validation

import (
	"reflect"
	"strings"

	"recurrence-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("date", validateDate)
	_ = v.RegisterValidation("nonzero_amount", validateNonZeroAmount)
	_ = v.RegisterValidation("origin", validateOrigin)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateFrequency accepts both named ("Monthly") and count+unit ("3m") tokens
func validateFrequency(fl validator.FieldLevel) bool {
	_, err := models.ParseFrequency(fl.Field().String())
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(fl.Field().String())
}

// validateDate validates a YYYY-MM-DD calendar date
func validateDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// validateNonZeroAmount validates a decimal string that is not zero and has at most 2 decimal places
func validateNonZeroAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil || amount.IsZero() {
		return false
	}
	return amount.Equal(amount.Round(2))
}

func validateOrigin(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RecurrenceOriginManual, models.RecurrenceOriginDetected:
		return true
	default:
		return false
	}
}
