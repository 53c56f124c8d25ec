package services

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound is returned when the referenced project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidTransition is returned when a workflow operation targets a
// project whose current status does not allow it.
var ErrInvalidTransition = errors.New("project status does not allow this transition")

// ValidationError reports a missing or malformed field on create/update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "This field is required"}
}
