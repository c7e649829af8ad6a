package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproject "github.com/alanyang/projecthub/internal/domain/project"
	portproject "github.com/alanyang/projecthub/internal/port/project"
)

var _ portproject.Repository = (*Repository)(nil)

const columns = `id, name, description, state, created_at, updated_at`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO projects (id, name, description, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+columns,
		p.ID, p.Name, p.Description, p.State, p.CreatedAt, p.UpdatedAt,
	)

	out, err := scanProject(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domainproject.Project{}, domainproject.NameExistsError{Name: p.Name}
		}
		return domainproject.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+columns+` FROM projects WHERE id = $1`, id,
	)

	out, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, domainproject.NotFoundError{ID: id}
		}
		return domainproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return out, nil
}

// FindByName returns nil when no project has the name — absence is not an
// error on the uniqueness-check path.
func (r *Repository) FindByName(ctx context.Context, name string) (*domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+columns+` FROM projects WHERE name = $1`, name,
	)

	out, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find project by name: %w", err)
	}
	return &out, nil
}

func (r *Repository) List(ctx context.Context, filters domainproject.ListFilters) ([]domainproject.Project, int, error) {
	total, err := r.Count(ctx, filters.State)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + columns + ` FROM projects`
	args := []interface{}{}
	if filters.State != nil {
		query += ` WHERE state = $1`
		args = append(args, *filters.State)
	}
	query += fmt.Sprintf(` ORDER BY created_at ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domainproject.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate project rows: %w", err)
	}
	return projects, total, nil
}

func (r *Repository) Count(ctx context.Context, state *domainproject.State) (int, error) {
	query := `SELECT COUNT(*) FROM projects`
	args := []interface{}{}
	if state != nil {
		query += ` WHERE state = $1`
		args = append(args, *state)
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

func (r *Repository) Update(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET name = $2, description = $3, state = $4, updated_at = $5
		 WHERE id = $1
		 RETURNING `+columns,
		p.ID, p.Name, p.Description, p.State, p.UpdatedAt,
	)

	out, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, domainproject.NotFoundError{ID: p.ID}
		}
		if isUniqueViolation(err) {
			return domainproject.Project{}, domainproject.NameExistsError{Name: p.Name}
		}
		return domainproject.Project{}, fmt.Errorf("update project: %w", err)
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainproject.NotFoundError{ID: id}
	}
	return nil
}

func scanProject(row pgx.Row) (domainproject.Project, error) {
	var p domainproject.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.State, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// isUniqueViolation reports SQLSTATE 23505 (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
