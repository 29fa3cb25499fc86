package usecase

import (
	"context"
	"testing"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDependencies(t *testing.T) {
	cfg := &config.RuntimeConfig{Dependencies: []string{"git", "make", "jq", "cast", "forge"}}

	t.Run("all tools available", func(t *testing.T) {
		checker := &fakeToolChecker{}
		report, err := NewCheckDependencies(cfg, checker, logging.Discard()).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, cfg.Dependencies, checker.probed)
		require.Len(t, report.Tools, 5)
		assert.Equal(t, "jq version 1.0.0", report.Tools[2].Version)
		assert.Empty(t, report.Missing())
	})

	t.Run("every tool is probed and the first missing one is reported", func(t *testing.T) {
		checker := &fakeToolChecker{missing: map[string]bool{"jq": true, "forge": true}}
		report, err := NewCheckDependencies(cfg, checker, logging.Discard()).Run(context.Background())

		assert.ErrorIs(t, err, domain.ErrDependencyMissing)
		var depErr *domain.DependencyError
		require.ErrorAs(t, err, &depErr)
		assert.Equal(t, "jq", depErr.Tool)

		assert.Equal(t, cfg.Dependencies, checker.probed)
		require.NotNil(t, report)
		missing := report.Missing()
		require.Len(t, missing, 2)
		assert.Equal(t, "jq", missing[0].Name)
		assert.Equal(t, "forge", missing[1].Name)
	})
}
