package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidField     = "INVALID_FIELD"
	ErrCodeCupcakeNotFound  = "CUPCAKE_NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeServiceUnhealthy = "SERVICE_UNAVAILABLE"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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

// Common domain errors
var (
	ErrCupcakeNotFound = NewDomainError(ErrCodeCupcakeNotFound, "Cupcake not found")
	ErrMissingFlavor   = NewDomainError(ErrCodeMissingField, "flavor is required")
	ErrMissingSize     = NewDomainError(ErrCodeMissingField, "size is required")
	ErrMissingRating   = NewDomainError(ErrCodeMissingField, "rating is required")
	ErrInvalidRating   = NewDomainError(ErrCodeInvalidField, "rating must be a finite number")
)

// IsNotFound reports whether err is, or wraps, ErrCupcakeNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCupcakeNotFound)
}

// DomainCode returns the code of the first DomainError in err's chain, or "".
func DomainCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
