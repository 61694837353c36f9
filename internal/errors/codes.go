package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidSecret      ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Message-store error codes (MESSAGE_*)
const (
	MessageBatchEmpty     ErrorCode = "MESSAGE_001"
	MessageStoreEmpty     ErrorCode = "MESSAGE_002"
	MessageDuplicateID    ErrorCode = "MESSAGE_003"
	MessageInvalidPayload ErrorCode = "MESSAGE_004"
)

// Query error codes (QUERY_*)
const (
	QueryEmpty   ErrorCode = "QUERY_001"
	QueryTooLong ErrorCode = "QUERY_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidTokenFormat: "Invalid authorization token",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidSecret:      "Invalid provisioning secret",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	MessageBatchEmpty:     "Message batch must contain at least one message",
	MessageStoreEmpty:     "No messages stored; ingest messages or pass them inline",
	MessageDuplicateID:    "A message with this ID already exists",
	MessageInvalidPayload: "Message payload is malformed",

	QueryEmpty:   "Query text is required",
	QueryTooLong: "Query text exceeds the maximum length",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
// Unknown codes get a generic message instead of an empty string.
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
