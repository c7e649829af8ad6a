package project

import (
	"context"

	"github.com/google/uuid"

	domainproject "github.com/alanyang/projecthub/internal/domain/project"
)

// Repository manages project persistence.
// [DIP] service/project depends on this interface, not on a concrete storage.
//
// Implementations translate their own storage errors at this boundary:
// a missing row becomes domain NotFoundError, a unique-constraint violation
// on name becomes domain NameExistsError. No driver error types cross it.
type Repository interface {
	Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error)
	// FindByName returns nil (not an error) when no project has the name.
	// Used for uniqueness checks.
	FindByName(ctx context.Context, name string) (*domainproject.Project, error)
	// List returns one page ordered by created_at ascending, plus the total
	// count matching the filters.
	List(ctx context.Context, filters domainproject.ListFilters) ([]domainproject.Project, int, error)
	Count(ctx context.Context, state *domainproject.State) (int, error)
	Update(ctx context.Context, p domainproject.Project) (domainproject.Project, error)
	// Delete is not idempotent: deleting an absent id returns NotFoundError.
	Delete(ctx context.Context, id uuid.UUID) error
}
