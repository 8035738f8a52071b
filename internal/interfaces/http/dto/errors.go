package dto

import "net/http"

// Error codes mirror the domain error taxonomy. The code travels in
// the response body; the HTTP status is derived from it here.
const (
	// ErrCodeValidation is used when required request fields are missing or malformed
	ErrCodeValidation = "VALIDATION"
	// ErrCodeConfig is used when a required external credential is absent
	ErrCodeConfig = "CONFIG"
	// ErrCodeUpstream is used when the shipping rate API fails
	ErrCodeUpstream = "UPSTREAM"
	// ErrCodeSource is used when the catalog source fails
	ErrCodeSource = "SOURCE"
	// ErrCodeStorage is used when a durable write fails
	ErrCodeStorage = "STORAGE"
	// ErrCodeNotFound is used when a lookup by id fails
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnauthorized is used when the admin token is missing or wrong
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeRateLimited is used when a client exceeds the request budget
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodeInternal is used for anything unexpected
	ErrCodeInternal = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeConfig:       http.StatusServiceUnavailable,
	ErrCodeUpstream:     http.StatusBadGateway,
	ErrCodeSource:       http.StatusBadGateway,
	ErrCodeStorage:      http.StatusInternalServerError,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
