package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/excuse-api/internal/service"
)

// Public error labels. These strings are part of the response contract.
const (
	ErrorLabelInvalidRequest   = "Invalid request"
	ErrorLabelGenerationFailed = "Excuse generation failed"
	ErrorLabelInternal         = "Internal server error"

	// GenericErrorMessage replaces the message of any unclassified error.
	GenericErrorMessage = "An unexpected error occurred"
)

// MapError maps a service error to a status code and a response body that is
// safe to return to a client.
//
//	*service.InvalidRequestError    -> 400, its Message
//	*service.GenerationFailureError -> 500, its Message
//	anything else                   -> 500, GenericErrorMessage
//
// Only the typed error's own Message is exposed, never the wrapped chain, so
// backend error types and details stay in the logs.
func MapError(err error) (int, ErrorResponse) {
	var invalid *service.InvalidRequestError
	var failure *service.GenerationFailureError

	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, ErrorResponse{Error: ErrorLabelInvalidRequest, Message: invalid.Message}
	case errors.As(err, &failure):
		return http.StatusInternalServerError, ErrorResponse{Error: ErrorLabelGenerationFailed, Message: failure.Message}
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, ErrorResponse{Error: ErrorLabelInvalidRequest, Message: service.ErrInvalidRequest.Error()}
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusInternalServerError, ErrorResponse{Error: ErrorLabelGenerationFailed, Message: service.ErrGenerationFailed.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrorLabelInternal, Message: GenericErrorMessage}
	}
}
