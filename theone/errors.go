package theone

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrSDK matches every typed failure returned by this package
	ErrSDK = errors.New("the one api error")
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid the one api configuration")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("authentication failed")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrService indicates any other non-success response
	ErrService = errors.New("service error")
	// ErrInvalidArgument indicates a local parameter check failed before any request was made
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	msgUnauthorized   = "Authentication failed. Check your API key."
	msgNotFound       = "Requested resource not found."
	msgInternalServer = "Internal server error. Please try again later."
)

// APIError represents a non-success response from The One API
type APIError struct {
	StatusCode int
	Message    string
	Body       string

	kind error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("the one api error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes the kind sentinel to errors.Is
func (e *APIError) Unwrap() error {
	return e.kind
}

// Is reports whether target is ErrSDK
func (e *APIError) Is(target error) bool {
	return target == ErrSDK
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return errors.Is(e.kind, ErrNotFound)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return errors.Is(e.kind, ErrUnauthorized)
}

// ValidationError is returned when a call argument violates its constraint
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrSDK
}

// classify maps a non-success response to its typed failure. It never returns nil.
func classify(resp *Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       resp.Text(),
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
		apiErr.Message = msgUnauthorized
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
		apiErr.Message = msgNotFound
	case http.StatusInternalServerError:
		apiErr.kind = ErrService
		apiErr.Message = msgInternalServer
	default:
		apiErr.kind = ErrService
		apiErr.Message = resp.Text()
	}

	return apiErr
}

// notFound is returned when a successful lookup carries no documents
func notFound(statusCode int) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    msgNotFound,
		kind:       ErrNotFound,
	}
}
