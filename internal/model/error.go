package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeValidation    = "VALIDATION"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternalError = "INTERNAL_ERROR"

	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
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

// NewNotFoundError reports that no resource of the given kind has the given id.
func NewNotFoundError(resource, id string) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

// NewValidationError reports a payload the resource model rejects.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewUnauthorisedError reports a missing or unusable bearer token.
func NewUnauthorisedError(message string) *DomainError {
	return NewDomainError(ErrCodeUnauthorised, message)
}

// Common domain errors
var (
	ErrForbidden   = NewDomainError(ErrCodeForbidden, "requester does not own this resource")
	ErrInvalidJSON = NewDomainError(ErrCodeInvalidJSON, "request body is not valid JSON")

	ErrPayloadTooLarge = NewDomainError(ErrCodePayloadTooLarge, "request body is too large")
)
