package project

import (
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StatePlanned    State = "PLANNED"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
	StateCancelled  State = "CANCELLED"
)

const (
	NameMinLength        = 3
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// validTransitions is the full lifecycle graph. COMPLETED and CANCELLED are
// terminal — no outgoing edges.
var validTransitions = map[State][]State{
	StatePlanned:    {StateInProgress, StateCancelled},
	StateInProgress: {StateCompleted, StateCancelled},
	StateCompleted:  {},
	StateCancelled:  {},
}

// CanTransitionTo reports whether the edge s→target is in the lifecycle graph.
// Identity transitions are not edges: a transition must change state.
func (s State) CanTransitionTo(target State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s State) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// ParseState converts a wire value into a State.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if !s.Valid() {
		return "", ValidationError{Message: "invalid project state: " + raw}
	}
	return s, nil
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	State       State     `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New constructs a project in the PLANNED state. CreatedAt and UpdatedAt are
// the same instant.
func New(name, description string) Project {
	now := time.Now().UTC()
	return Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		State:       StatePlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Transition returns a copy of p in the target state with UpdatedAt refreshed,
// or InvalidTransitionError when the edge is not permitted.
func (p Project) Transition(to State) (Project, error) {
	if !p.State.CanTransitionTo(to) {
		return Project{}, InvalidTransitionError{From: p.State, To: to}
	}
	p.State = to
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

// Touch refreshes UpdatedAt. Field edits outside Transition call this before
// the write.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

func ValidateName(name string) error {
	if len(name) < NameMinLength {
		return ValidationError{Message: "project name must be at least 3 characters"}
	}
	if len(name) > NameMaxLength {
		return ValidationError{Message: "project name must be at most 100 characters"}
	}
	return nil
}

func ValidateDescription(description string) error {
	if len(description) > DescriptionMaxLength {
		return ValidationError{Message: "project description must be at most 500 characters"}
	}
	return nil
}

// ListFilters narrows and pages a repository List call.
type ListFilters struct {
	State  *State
	Offset int
	Limit  int
}
