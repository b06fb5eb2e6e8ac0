package llm

import "errors"

var (
	// ErrEmptyInput indicates that neither specification text nor an
	// attached specification document was provided.
	ErrEmptyInput = errors.New("no specification provided")

	// ErrEmptyResponse indicates the capability returned no content.
	ErrEmptyResponse = errors.New("capability returned empty response")

	// ErrMalformedResponse indicates no parseable structured payload
	// could be located in the capability's text response.
	ErrMalformedResponse = errors.New("no structured payload found in response")

	// ErrCapability indicates a transport or invocation failure while
	// calling the external reasoning capability.
	ErrCapability = errors.New("capability invocation failed")

	// ErrTimeout indicates the capability call exceeded the configured
	// timeout.
	ErrTimeout = errors.New("capability request timed out")
)
