package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/samber/lo"
)

// ToolStatus is the outcome of probing one external tool
type ToolStatus struct {
	Name    string
	Version string
	Err     error
}

// DependencyReport lists the probed tools in configuration order
type DependencyReport struct {
	Tools []ToolStatus
}

// Missing returns the tools that could not be invoked
func (r *DependencyReport) Missing() []ToolStatus {
	return lo.Filter(r.Tools, func(s ToolStatus, _ int) bool {
		return s.Err != nil
	})
}

// CheckDependencies verifies every configured tool can be invoked
type CheckDependencies struct {
	cfg     *config.RuntimeConfig
	checker ToolChecker
	log     *slog.Logger
}

// NewCheckDependencies creates a new CheckDependencies use case
func NewCheckDependencies(cfg *config.RuntimeConfig, checker ToolChecker, log *slog.Logger) *CheckDependencies {
	return &CheckDependencies{
		cfg:     cfg,
		checker: checker,
		log:     log.With("component", "CheckDependencies"),
	}
}

// Run probes all tools. The report is always returned; the error names the first missing tool.
func (uc *CheckDependencies) Run(ctx context.Context) (*DependencyReport, error) {
	report := &DependencyReport{}
	for _, tool := range uc.cfg.Dependencies {
		version, err := uc.checker.Version(ctx, tool)
		report.Tools = append(report.Tools, ToolStatus{Name: tool, Version: version, Err: err})
		if err != nil {
			uc.log.Debug("dependency check failed", "tool", tool, "error", err)
			continue
		}
		uc.log.Debug("dependency available", "tool", tool, "version", version)
	}

	if missing := report.Missing(); len(missing) > 0 {
		return report, &domain.DependencyError{Tool: missing[0].Name, Err: missing[0].Err}
	}
	return report, nil
}
