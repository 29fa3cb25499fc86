package forge

import (
	"context"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
)

// ToolChecker probes tools with `<tool> --version`
type ToolChecker struct {
	runner shell.Runner
}

// NewToolChecker creates a new tool checker
func NewToolChecker(runner shell.Runner) *ToolChecker {
	return &ToolChecker{runner: runner}
}

// Version returns the first line printed by `<tool> --version`
func (c *ToolChecker) Version(ctx context.Context, tool string) (string, error) {
	res, err := c.runner.Run(ctx, shell.Command{Name: tool, Args: []string{"--version"}})
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(strings.TrimSpace(res.Stdout), "\n")
	return strings.TrimSpace(first), nil
}

var _ usecase.ToolChecker = (*ToolChecker)(nil)
