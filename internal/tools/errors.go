package tools

import (
	"errors"
	"net/http"
)

// Domain errors for tool registry operations.
var (
	ErrNotFound       = errors.New("tool not found")
	ErrDuplicate      = errors.New("tool name already exists")
	ErrInvalidBinding = errors.New("invalid tool binding")
	ErrInvalidParams  = errors.New("invalid operation parameters")
	ErrUnknownTarget  = errors.New("unknown target operation")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidBinding) || errors.Is(err, ErrInvalidParams) || errors.Is(err, ErrUnknownTarget) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
