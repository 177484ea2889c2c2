package questionnaire

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrDocumentRequired  = errors.New("a stored document is required")
	ErrUnknownField      = errors.New("unknown questionnaire field")
)

// MapHTTPStatus converts questionnaire errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrDocumentRequired):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
