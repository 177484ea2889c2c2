package sessions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrDocumentChanged  = errors.New("document replaced during analysis")
)

// MapHTTPStatus converts session errors, and the errors of the systems a
// session drives, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadySubmitted), errors.Is(err, ErrDocumentChanged):
		return http.StatusConflict
	}

	for _, mapStatus := range []func(error) int{
		documents.MapHTTPStatus,
		questionnaire.MapHTTPStatus,
		presentations.MapHTTPStatus,
	} {
		if status := mapStatus(err); status != http.StatusInternalServerError {
			return status
		}
	}
	return http.StatusInternalServerError
}
