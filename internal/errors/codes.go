package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidValue      ErrorCode = "TRANSACTION_002"
	TransactionInsufficientFunds ErrorCode = "TRANSACTION_003"
	TransactionValidationFailed  ErrorCode = "TRANSACTION_005"
	TransactionInvalidType       ErrorCode = "TRANSACTION_006"
)

// Import error codes (IMPORT_*)
const (
	ImportMissingFile     ErrorCode = "IMPORT_001"
	ImportMalformedSource ErrorCode = "IMPORT_002"
	ImportInvalidRow      ErrorCode = "IMPORT_003"
	ImportFileTooLarge    ErrorCode = "IMPORT_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this title already exists",

	// Transaction errors
	TransactionInvalidValue:      "Transaction value must be a non-negative integer",
	TransactionInsufficientFunds: "Outcome value exceeds the current balance",
	TransactionValidationFailed:  "Transaction validation failed",
	TransactionInvalidType:       "Transaction type must be income or outcome",

	// Import errors
	ImportMissingFile:     "An import file is required",
	ImportMalformedSource: "Import file could not be read as CSV",
	ImportInvalidRow:      "Import file contains an invalid row",
	ImportFileTooLarge:    "Import file exceeds the maximum upload size",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
