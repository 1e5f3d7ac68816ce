package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

var allCodes = []ErrorCode{
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidDate,
	ValidationInvalidID,
	RecurrenceNotFound,
	RecurrenceInvalidFrequency,
	RecurrenceInvalidWindow,
	RecurrenceEndBeforeBasis,
	RecurrenceWindowTooWide,
	RecurrenceValidationFailed,
	RecurrenceProjectionLimit,
	TransactionNotFound,
	TransactionInvalidAmount,
	TransactionValidationFailed,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
	SystemRouteNotFound,
}

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Recurrence Not Found",
			code:     RecurrenceNotFound,
			expected: "Recurrence not found",
		},
		{
			name:     "Recurrence Invalid Frequency",
			code:     RecurrenceInvalidFrequency,
			expected: "Unsupported recurrence frequency",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
	}

	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "AUTH_001", "RECURRENCE_999"} {
		s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"VALIDATION_", "RECURRENCE_", "TRANSACTION_", "SYSTEM_"}

	for _, code := range allCodes {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
			}
		}
		s.True(matched, "Error code %s has no known prefix", code)
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
