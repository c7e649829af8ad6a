package project

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError: the id has no matching row.
type NotFoundError struct {
	ID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("project with ID '%s' not found", e.ID)
}

// NameExistsError: the unique-name invariant would be violated. Raised on the
// check path and re-raised by the repository when the write-path constraint
// fires.
type NameExistsError struct {
	Name string
}

func (e NameExistsError) Error() string {
	return fmt.Sprintf("project with name '%s' already exists", e.Name)
}

// InvalidTransitionError carries the rejected edge.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from '%s' to '%s'", e.From, e.To)
}

// ValidationError: malformed input rejected before any repository call.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// LimitExceededError: the configured project quota is reached.
type LimitExceededError struct {
	Limit int
}

func (e LimitExceededError) Error() string {
	return fmt.Sprintf("maximum limit of %d projects reached", e.Limit)
}
