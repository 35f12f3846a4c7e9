package oauth2

import "errors"

// ErrorCode is an OAuth 2.0 error code as defined by RFC 6749 section 5.2.
type ErrorCode string

const (
	// ErrorCodeInvalidClient covers unknown client ids, disallowed
	// authentication methods, and missing or wrong credentials.
	ErrorCodeInvalidClient ErrorCode = "invalid_client"

	// ErrorCodeInvalidGrant covers unknown or consumed authorization codes and
	// PKCE verifier failures.
	ErrorCodeInvalidGrant ErrorCode = "invalid_grant"
)

// Error is a structured authentication failure: an error code from the fixed
// taxonomy plus a human-readable description naming the parameter that caused
// the rejection. Every request-time failure leaving this module is one of
// these; the protocol layer maps it to a wire-level error response.
type Error struct {
	Code        ErrorCode
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

// InvalidClientError returns an invalid_client failure referencing parameter.
func InvalidClientError(parameter string) *Error {
	return &Error{
		Code:        ErrorCodeInvalidClient,
		Description: "client authentication failed: " + parameter,
	}
}

// InvalidGrantError returns an invalid_grant failure referencing parameter.
func InvalidGrantError(parameter string) *Error {
	return &Error{
		Code:        ErrorCodeInvalidGrant,
		Description: "client authentication failed: " + parameter,
	}
}

// AsError unwraps err into an *Error if one is present in its chain.
func AsError(err error) (*Error, bool) {
	var oauthErr *Error
	if errors.As(err, &oauthErr) {
		return oauthErr, true
	}
	return nil, false
}
