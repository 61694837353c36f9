package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_KnownCodes() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{AuthMissingToken, "Authorization token is required"},
		{AuthExpiredToken, "Authorization token has expired"},
		{ValidationGeneral, "Validation failed"},
		{MessageBatchEmpty, "Message batch must contain at least one message"},
		{QueryEmpty, "Query text is required"},
		{SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetErrorMessage(tc.code), "code %s", tc.code)
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	valid := []ErrorCode{
		AuthMissingToken, AuthInvalidTokenFormat, AuthExpiredToken, AuthInvalidSecret,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange,
		MessageBatchEmpty, MessageStoreEmpty, MessageDuplicateID, MessageInvalidPayload,
		QueryEmpty, QueryTooLong,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemRateLimitExceeded,
	}

	for _, code := range valid {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}

	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
