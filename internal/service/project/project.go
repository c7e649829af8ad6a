package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alanyang/projecthub/internal/domain/event"
	domainproject "github.com/alanyang/projecthub/internal/domain/project"
	portbus "github.com/alanyang/projecthub/internal/port/eventbus"
	portproject "github.com/alanyang/projecthub/internal/port/project"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Config tunes pagination and the optional project quota.
// MaxProjects == 0 disables the quota.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	MaxProjects     int
}

// DefaultConfig leaves the quota off.
var DefaultConfig = Config{
	DefaultPageSize: DefaultPageSize,
	MaxPageSize:     MaxPageSize,
}

// Page is one page of projects plus pagination metadata.
type Page struct {
	Items      []domainproject.Project `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalCount int                     `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
}

// UpdateParams carries the optional fields of an update. Nil means "leave
// unchanged".
type UpdateParams struct {
	Name        *string
	Description *string
}

// Service orchestrates business rules that span multiple repository calls.
// [DIP] Depends on ports, never on adapters or transport.
// Stateless between calls — safe for unbounded parallel invocation.
type Service struct {
	repo portproject.Repository
	bus  portbus.EventBus
	cfg  Config
}

func NewService(repo portproject.Repository, bus portbus.EventBus, cfg Config) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = MaxPageSize
	}
	return &Service{repo: repo, bus: bus, cfg: cfg}
}

// Create validates the input, checks name uniqueness, and persists a new
// project in the PLANNED state. The check-then-write pair is not atomic: a
// concurrent create with the same name is caught by the storage unique
// constraint, which the repository surfaces as NameExistsError.
func (s *Service) Create(ctx context.Context, name, description string) (domainproject.Project, error) {
	if err := domainproject.ValidateName(name); err != nil {
		return domainproject.Project{}, err
	}
	if err := domainproject.ValidateDescription(description); err != nil {
		return domainproject.Project{}, err
	}

	if s.cfg.MaxProjects > 0 {
		total, err := s.repo.Count(ctx, nil)
		if err != nil {
			return domainproject.Project{}, fmt.Errorf("count projects: %w", err)
		}
		if total >= s.cfg.MaxProjects {
			return domainproject.Project{}, domainproject.LimitExceededError{Limit: s.cfg.MaxProjects}
		}
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("check project name: %w", err)
	}
	if existing != nil {
		return domainproject.Project{}, domainproject.NameExistsError{Name: name}
	}

	created, err := s.repo.Create(ctx, domainproject.New(name, description))
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("create project: %w", err)
	}

	s.publish(ctx, event.TypeProjectCreated, created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List returns the 1-indexed page. pageSize falls back to the configured
// default and is clamped to [1, MaxPageSize].
func (s *Service) List(ctx context.Context, page, pageSize int, state *domainproject.State) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	items, total, err := s.repo.List(ctx, domainproject.ListFilters{
		State:  state,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list projects: %w", err)
	}
	if items == nil {
		items = []domainproject.Project{}
	}

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// Update applies name/description changes. A changed name is re-checked for
// uniqueness against every other project before the write; the write-path
// unique constraint covers the remaining race.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}

	if params.Name != nil && *params.Name != p.Name {
		if err := domainproject.ValidateName(*params.Name); err != nil {
			return domainproject.Project{}, err
		}
		existing, err := s.repo.FindByName(ctx, *params.Name)
		if err != nil {
			return domainproject.Project{}, fmt.Errorf("check project name: %w", err)
		}
		if existing != nil && existing.ID != p.ID {
			return domainproject.Project{}, domainproject.NameExistsError{Name: *params.Name}
		}
		p.Name = *params.Name
	}
	if params.Description != nil {
		if err := domainproject.ValidateDescription(*params.Description); err != nil {
			return domainproject.Project{}, err
		}
		p.Description = *params.Description
	}
	p.Touch()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("update project: %w", err)
	}

	s.publish(ctx, event.TypeProjectUpdated, updated.ID)
	return updated, nil
}

// TransitionState moves the project along a lifecycle edge. Legality is
// decided by the entity; an illegal edge fails with InvalidTransitionError
// carrying (from, to).
func (s *Service) TransitionState(ctx context.Context, id uuid.UUID, to domainproject.State) (domainproject.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}

	transitioned, err := p.Transition(to)
	if err != nil {
		return domainproject.Project{}, err
	}

	updated, err := s.repo.Update(ctx, transitioned)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("persist state transition: %w", err)
	}

	s.publish(ctx, event.TypeProjectStateChanged, updated.ID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.publish(ctx, event.TypeProjectDeleted, id)
	return nil
}

// publish never fails the request: lifecycle events are best-effort fan-out.
func (s *Service) publish(ctx context.Context, t event.Type, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish project event", "type", t, "project_id", id, "error", err)
	}
}
