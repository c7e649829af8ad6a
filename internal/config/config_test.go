package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/projecthub/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/projecthub")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, 0, cfg.MaxProjects)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/projecthub")
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_PROJECTS", "20")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 20, cfg.MaxProjects)
}

func TestLoad_BadPageSizeBounds(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/projecthub")
	t.Setenv("DEFAULT_PAGE_SIZE", "100")
	t.Setenv("MAX_PAGE_SIZE", "50")

	_, err := config.Load()
	require.Error(t, err)
}
