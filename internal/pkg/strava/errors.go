package strava

import (
	"fmt"
	"strings"
)

// TransportError reports a failure below the protocol: connection,
// DNS, TLS, or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("strava: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is empty or not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strava: malformed token response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TokenMissingError reports a well-formed JSON response with no usable
// access_token field. Messages carries any errors[].message entries
// the API reported alongside.
type TokenMissingError struct {
	Messages []string
}

func (e *TokenMissingError) Error() string {
	if len(e.Messages) == 0 {
		return "strava: token response has no access_token"
	}
	return fmt.Sprintf("strava: token response has no access_token: %s", strings.Join(e.Messages, "; "))
}

// APIError enumerates the errors[].message entries of a token
// response. It is diagnostic: the API can report errors next to a
// perfectly usable access token, and callers decide the policy.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strava: api reported errors: %s", strings.Join(e.Messages, "; "))
}
