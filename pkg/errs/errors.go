package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrBadGateway           = http.StatusBadGateway
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrNotLoggedIn       = errors.New("Unauthorized access")
	ErrNoPermission      = errors.New("Forbidden access")
	ErrNotFound          = errors.New("Resource not found")
	ErrInvalidPageSize   = errors.New("Invalid page_size. Allowed values are 5, 10 and 20")
	ErrInvalidPageNumber = errors.New("Invalid page_number. Page number must be 1 or greater")
	ErrInvalidIncidentID = errors.New("Invalid incident id")
	ErrDataIntegrity     = errors.New("Referenced identity could not be resolved")
	ErrUpstreamService   = errors.New("Unexpected response from upstream service")
)

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrNotLoggedIn:       ErrStatusNotLoggedIn,
	ErrNoPermission:      ErrStatusNoPermission,
	ErrNotFound:          ErrStatusNotFound,
	ErrInvalidPageSize:   ErrStatusClient,
	ErrInvalidPageNumber: ErrStatusClient,
	ErrInvalidIncidentID: ErrStatusClient,
	ErrDataIntegrity:     ErrStatusInternalServer,
	ErrUpstreamService:   ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
