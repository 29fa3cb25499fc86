package jq

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
)

// Query extracts raw fields from JSON files with `jq -r`
type Query struct {
	repoPath string
	runner   shell.Runner
	log      *slog.Logger
}

// NewQuery creates a jq adapter resolving relative files against the repository
func NewQuery(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *Query {
	return &Query{
		repoPath: cfg.RepoPath,
		runner:   runner,
		log:      log.With("component", "JQ"),
	}
}

// Field returns the raw value of field. Validation of the value is left to the caller.
func (q *Query) Field(ctx context.Context, file string, field string) (string, error) {
	res, err := q.runner.Run(ctx, shell.Command{
		Name: "jq",
		Args: []string{"-r", field, file},
		Dir:  q.repoPath,
	})
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(res.Stdout)
	q.log.Debug("extracted field", "file", filepath.Base(file), "field", field, "length", len(value))
	return value, nil
}

var _ usecase.JSONQuery = (*Query)(nil)
