package teams

import (
	"errors"
	"net/http"
)

// Domain errors for definition operations.
var (
	ErrNotFound   = errors.New("definition not found")
	ErrDuplicate  = errors.New("definition name already exists")
	ErrInvalid    = errors.New("invalid definition")
	ErrUnknownRef = errors.New("definition references unknown name")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalid) || errors.Is(err, ErrUnknownRef) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
