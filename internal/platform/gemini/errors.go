package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrNoCandidates is returned when the API answers without any candidate.
	ErrNoCandidates = errors.New("no candidates in response")

	// ErrNilResponse is returned when the API returns neither a response nor an error.
	ErrNilResponse = errors.New("nil response")
)
