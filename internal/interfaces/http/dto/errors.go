package dto

import (
	"net/http"
	"strings"
)

// API error codes. Domain error codes pass through unchanged; these cover
// conditions raised by the HTTP layer itself.
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeRateLimited  = "ERR_RATE_LIMITED"
	ErrCodeBodyTooLarge = "ERR_BODY_TOO_LARGE"
)

// InternalErrorMessage is the only text a client sees for a 500
const InternalErrorMessage = "An unexpected error occurred"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeBodyTooLarge: http.StatusRequestEntityTooLarge,

	"NOT_FOUND":           http.StatusNotFound,
	"NO_ACTIVE_WAREHOUSE": http.StatusNotFound,
	"NO_SHIPPING_RATE":    http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"CONFLICT":            http.StatusConflict,
	"WAREHOUSE_HAS_ZONES": http.StatusConflict,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"INVALID_INPUT":       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for an error code. Unlisted codes
// starting with INVALID_ are input errors; anything else is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
