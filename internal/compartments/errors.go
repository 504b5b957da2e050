package compartments

import (
	"errors"
	"net/http"
)

// Domain errors for compartment resolution. ErrNotFound and ErrRemote are
// deliberately distinct: the first means the name should be re-checked, the
// second means the credential or network needs attention.
var (
	ErrNotFound = errors.New("compartment not found")
	ErrRemote   = errors.New("compartment listing failed")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrRemote) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
