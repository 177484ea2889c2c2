package presentations

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

var (
	ErrNotFound       = errors.New("presentation not found")
	ErrDuplicate      = errors.New("presentation already exists")
	ErrInvalidRequest = errors.New("invalid presentation request")
)

// MapHTTPStatus converts presentation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs questionnaire.ValidationErrors
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRequest), errors.As(err, &verrs):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
