package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrInvalidFile     = errors.New("invalid file")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrRequestTooLarge = errors.New("request body exceeds maximum upload size")
	ErrStorage         = errors.New("document storage failed")
	ErrUnknownAddress  = errors.New("address was not issued by this store")
	ErrNotFound        = errors.New("document not found")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRequestTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile),
		errors.Is(err, ErrUnsupportedType),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrUnknownAddress):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStorage):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
