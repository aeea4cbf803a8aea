package services

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a missing World folder, entity or image.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a name collision.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotConnectedError is returned when an entity operation is attempted with no World open.
type NotConnectedError struct{}

func (e *NotConnectedError) Error() string {
	return "Server is not connected to a World. Please configure the World connection using the POST /api/worldAccesses endpoint."
}

// ErrNotConnected is the shared NotConnectedError value
var ErrNotConnected = &NotConnectedError{}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// entityNotFound builds the message used for every missing entity id.
func entityNotFound(entity string, id int64) error {
	return NewNotFoundError("%s '%d' not found", entity, id)
}

// imageNotFound builds the message used when an entity has no image set.
func imageNotFound(entity string, id int64) error {
	return NewNotFoundError("Image does not exist for %s '%d'", entity, id)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotConnected(err error) bool {
	var target *NotConnectedError
	return errors.As(err, &target)
}
