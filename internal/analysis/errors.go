package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/extraction"
)

// Domain errors for analysis operations.
var (
	ErrInvalidRequest    = errors.New("invalid analysis request")
	ErrModelInvocation   = errors.New("model invocation failed")
	ErrMalformedResponse = errors.New("failed to parse AI response")
)

// MalformedResponseError reports model output that could not be parsed into
// a BrandAnalysis. Raw holds the verbatim reply.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedResponse, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// RawResponse returns the verbatim model reply carried by err, if any.
func RawResponse(err error) string {
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return malformed.Raw
	}
	return ""
}

// MapHTTPStatus converts pipeline errors to appropriate HTTP status codes.
// A stage that ran out of time maps to 504 whichever stage it was in.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, extraction.ErrExtraction):
		if errors.Is(err, documents.ErrUnknownAddress) {
			return http.StatusBadRequest
		}
		if errors.Is(err, documents.ErrNotFound) {
			return http.StatusNotFound
		}
		if errors.Is(err, documents.ErrStorage) {
			return http.StatusBadGateway
		}
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrModelInvocation), errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Stage names the pipeline step that produced err.
func Stage(err error) string {
	if errors.Is(err, extraction.ErrExtraction) {
		return extraction.StageExtract
	}
	return StageAnalyze
}
