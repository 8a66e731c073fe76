package utils

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a tenant-scoped record does not exist or is soft-deleted.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError carries a message that is safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError signals a write rejected by an availability rule.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// UserMessage returns the text a handler may flash back to the browser.
// Unknown errors collapse to a generic message.
func UserMessage(err error) string {
	var nf *NotFoundError
	var ve *ValidationError
	var ce *ConflictError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &ce):
		return ce.Message
	case errors.As(err, &nf):
		return fmt.Sprintf("%s not found", nf.Resource)
	default:
		return "Something went wrong. Please try again."
	}
}
