package dto

import (
	"net/http"
	"strings"
)

// Error codes exposed by the API. Domain codes are passed through as-is;
// these cover errors raised at the HTTP boundary.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps known error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInternal:     http.StatusInternalServerError,

	"ALREADY_EXISTS": http.StatusConflict,
	"INVALID_STATE":  http.StatusUnprocessableEntity,
	"EMPTY_CART":     http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for an error code. Validation
// codes follow the INVALID_ naming convention and map to 400; anything
// unrecognized is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
