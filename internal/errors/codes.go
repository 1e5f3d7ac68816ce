package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
)

// Recurrence error codes (RECURRENCE_*)
const (
	RecurrenceNotFound         ErrorCode = "RECURRENCE_001"
	RecurrenceInvalidFrequency ErrorCode = "RECURRENCE_002"
	RecurrenceInvalidWindow    ErrorCode = "RECURRENCE_003"
	RecurrenceEndBeforeBasis   ErrorCode = "RECURRENCE_004"
	RecurrenceWindowTooWide    ErrorCode = "RECURRENCE_005"
	RecurrenceValidationFailed ErrorCode = "RECURRENCE_006"
	RecurrenceProjectionLimit  ErrorCode = "RECURRENCE_007"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed ErrorCode = "TRANSACTION_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidID:     "Invalid ID format",

	// Recurrence errors
	RecurrenceNotFound:         "Recurrence not found",
	RecurrenceInvalidFrequency: "Unsupported recurrence frequency",
	RecurrenceInvalidWindow:    "Window start must not be after window end",
	RecurrenceEndBeforeBasis:   "End date must not be before the basis date",
	RecurrenceWindowTooWide:    "Requested calendar window is too wide",
	RecurrenceValidationFailed: "Recurrence validation failed",
	RecurrenceProjectionLimit:  "Projection stopped at the iteration limit",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must not be zero",
	TransactionValidationFailed: "Transaction validation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
