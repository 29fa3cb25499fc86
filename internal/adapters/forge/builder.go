package forge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
)

// Builder runs the repository's make target that produces the forge artifacts
type Builder struct {
	repoPath string
	target   string
	stream   bool
	runner   shell.Runner
	log      *slog.Logger
}

// NewBuilder creates a builder. In debug mode the build output streams to the terminal.
func NewBuilder(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *Builder {
	return &Builder{
		repoPath: cfg.RepoPath,
		target:   cfg.BuildTarget,
		stream:   cfg.Debug,
		runner:   runner,
		log:      log.With("component", "Builder"),
	}
}

// Build runs `make <target>` in the repository root
func (b *Builder) Build(ctx context.Context) error {
	b.log.Debug("running build", "target", b.target, "dir", b.repoPath)

	res, err := b.runner.Run(ctx, shell.Command{
		Name:   "make",
		Args:   []string{b.target},
		Dir:    b.repoPath,
		Stream: b.stream,
	})
	if err != nil {
		return fmt.Errorf("make %s: %w", b.target, err)
	}

	b.log.Debug("build completed", "duration", res.Duration)
	return nil
}

var _ usecase.ContractBuilder = (*Builder)(nil)
