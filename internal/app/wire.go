//go:build wireinject
// +build wireinject

package app

import (
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters"
	"github.com/ethereum-optimism/predeploy-docs/internal/cli/render"
	"github.com/ethereum-optimism/predeploy-docs/internal/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, streams Streams) (*App, error) {
	wire.Build(
		// Configuration; every plain io.Writer is the diagnostic stream
		config.Provider,
		wire.FieldsOf(new(Streams), "Err"),
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Renderers
		ProvideMarkdownRenderer,
		wire.Bind(new(usecase.DocumentPublisher), new(*render.MarkdownRenderer)),
		render.NewSummaryRenderer,
		render.NewDependencyRenderer,

		// Use cases
		usecase.NewCheckDependencies,
		usecase.NewGeneratePredeployDocs,

		// App
		NewApp,
	)
	return nil, nil
}
