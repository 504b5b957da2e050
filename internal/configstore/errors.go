package configstore

import (
	"errors"
	"net/http"
)

// Domain errors for configuration operations.
var (
	ErrNotFound   = errors.New("config entry not found")
	ErrDuplicate  = errors.New("config entry already exists")
	ErrInvalidKey = errors.New("invalid config key")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidKey) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
