package app

import (
	"log/slog"

	"github.com/ethereum-optimism/predeploy-docs/internal/cli/render"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	GeneratePredeployDocs *usecase.GeneratePredeployDocs
	CheckDependencies     *usecase.CheckDependencies

	// Renderers
	SummaryRenderer    *render.SummaryRenderer
	DependencyRenderer *render.DependencyRenderer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	generatePredeployDocs *usecase.GeneratePredeployDocs,
	checkDependencies *usecase.CheckDependencies,
	summaryRenderer *render.SummaryRenderer,
	dependencyRenderer *render.DependencyRenderer,
) (*App, error) {
	return &App{
		Config:                cfg,
		Log:                   log,
		GeneratePredeployDocs: generatePredeployDocs,
		CheckDependencies:     checkDependencies,
		SummaryRenderer:       summaryRenderer,
		DependencyRenderer:    dependencyRenderer,
	}, nil
}
