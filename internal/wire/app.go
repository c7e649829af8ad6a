package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	pgdb "github.com/alanyang/projecthub/internal/adapter/postgres"
	pgeventbus "github.com/alanyang/projecthub/internal/adapter/postgres/eventbus"
	pgproject "github.com/alanyang/projecthub/internal/adapter/postgres/project"
	"github.com/alanyang/projecthub/internal/config"
	projectsvc "github.com/alanyang/projecthub/internal/service/project"
	"github.com/alanyang/projecthub/internal/transport"
	mcptransport "github.com/alanyang/projecthub/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool       *pgxpool.Pool
	Server     *http.Server
	ProjectSvc *projectsvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// ── Database ─────────────────────────────────────────────────────────────
	pool, err := pgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	projectRepo := pgproject.New(pool)
	eventBus := pgeventbus.New(pool)

	// ── Services ─────────────────────────────────────────────────────────────
	projectSvcInstance := projectsvc.NewService(projectRepo, eventBus, projectsvc.Config{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		MaxProjects:     cfg.MaxProjects,
	})

	mcpServer := mcptransport.New(projectSvcInstance)

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, projectSvcInstance, mcpServer, eventBus)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port, "max_projects", cfg.MaxProjects)

	return &App{
		Pool:       pool,
		Server:     server,
		ProjectSvc: projectSvcInstance,
	}, nil
}
