package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound = errors.New("task template not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthorized     = errors.New("unauthorized")

	ErrActorBusinessUnitRequired = errors.New("user must belong to a business unit")

	ErrInvalidBusinessUnit   = errors.New("invalid business unit")
	ErrTemplateNameRequired  = errors.New("template name is required")
	ErrTemplateTypeRequired  = errors.New("template type is required")
	ErrTemplateTasksRequired = errors.New("template must contain at least one task")
	ErrTaskTitleRequired     = errors.New("task title is required")
	ErrInvalidPriority       = errors.New("invalid task priority")
	ErrInvalidOptionsSchema  = errors.New("invalid options schema")
	ErrNoTemplateChanges     = errors.New("no template fields to update")

	ErrUnknownOption      = errors.New("unknown template option")
	ErrOptionTypeMismatch = errors.New("option value does not match its declared type")

	ErrNoTasksToCreate = errors.New("no tasks to create")
	ErrInvalidDueDate  = errors.New("invalid due date")
)

// OptionError names the schema option a failure refers to.
type OptionError struct {
	Key string
	Err error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %q: %v", e.Key, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

func NewOptionError(key string, err error) error {
	return &OptionError{Key: key, Err: err}
}
