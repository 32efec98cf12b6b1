package comprehend

import (
	"fmt"
	"net/http"
)

// ResourceNotFoundError is returned when an ARN is not present in the
// recognizer registry.
type ResourceNotFoundError struct {
	ARN string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource %q not found", e.ARN)
}

// ErrorCode returns the AWS exception type name for this error.
func (e *ResourceNotFoundError) ErrorCode() string {
	return "ResourceNotFoundException"
}

// StatusCode returns the HTTP status code for this error.
// AWS JSON protocol services report ResourceNotFoundException as a 400.
func (e *ResourceNotFoundError) StatusCode() int {
	return http.StatusBadRequest
}

// Message returns the human-readable message sent on the wire.
func (e *ResourceNotFoundError) Message() string {
	return "RESOURCE_NOT_FOUND: Could not find specified resource."
}

// APIError is the interface implemented by errors that map onto an AWS
// exception shape.
type APIError interface {
	error
	ErrorCode() string
	StatusCode() int
	Message() string
}
