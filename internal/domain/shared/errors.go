package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: fmt.Sprintf(format, args...),
	}
}

// Common domain errors
var (
	ErrNotFound              = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation            = NewDomainError("VALIDATION", "Invalid input provided")
	ErrUnauthorized          = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrShippingUnavailable   = NewDomainError("UPSTREAM", "Could not fetch shipping rates")
	ErrCatalogUnavailable    = NewDomainError("SOURCE", "Could not load catalog data")
	ErrStorage               = NewDomainError("STORAGE", "Durable write failed")
	ErrShippingNotConfigured = NewDomainError("CONFIG", "Shipping is not configured")
)

// WrapUpstream returns an UPSTREAM error carrying detail from the rate API
func WrapUpstream(detail string) *DomainError {
	return &DomainError{Code: "UPSTREAM", Message: detail}
}

// WrapSource returns a SOURCE error carrying detail from the catalog source
func WrapSource(detail string) *DomainError {
	return &DomainError{Code: "SOURCE", Message: detail}
}

// WrapStorage returns a STORAGE error carrying detail from the order store
func WrapStorage(detail string) *DomainError {
	return &DomainError{Code: "STORAGE", Message: detail}
}
