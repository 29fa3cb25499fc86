package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

const maxSuggestions = 3

// ArtifactLocator resolves artifact paths from the foundry out directory
type ArtifactLocator struct {
	repoPath     string
	contractsDir string
	outDir       string
	log          *slog.Logger
}

// NewArtifactLocator creates a locator using the configured artifacts directory, or
// the out directory from foundry.toml
func NewArtifactLocator(cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactLocator {
	return &ArtifactLocator{
		repoPath:     cfg.RepoPath,
		contractsDir: cfg.ContractsDir,
		outDir:       lo.Ternary(cfg.ArtifactsDir != "", cfg.ArtifactsDir, cfg.FoundryConfig.OutDir()),
		log:          log.With("component", "ArtifactLocator"),
	}
}

func (l *ArtifactLocator) ArtifactPath(contractName string) string {
	return domain.ForgeArtifactPath(l.contractsDir, l.outDir, contractName)
}

// Locate checks the artifact exists, suggesting similarly named contracts when not
func (l *ArtifactLocator) Locate(_ context.Context, artifactPath string) error {
	full := filepath.Join(l.repoPath, artifactPath)
	if _, err := os.Stat(full); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return &domain.ArtifactError{Path: artifactPath, Reason: err.Error(), Err: err}
	}

	contract := strings.TrimSuffix(filepath.Base(artifactPath), ".json")
	return &domain.ArtifactError{
		Path:        artifactPath,
		Reason:      fmt.Sprintf("no artifact for %s after build", contract),
		Suggestions: l.suggest(contract),
		Err:         domain.ErrArtifactNotFound,
	}
}

// suggest fuzzy matches contract against the compiled sources in the out directory
func (l *ArtifactLocator) suggest(contract string) []string {
	entries, err := os.ReadDir(filepath.Join(l.repoPath, l.contractsDir, l.outDir))
	if err != nil {
		l.log.Debug("cannot list artifacts", "error", err)
		return nil
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return strings.TrimSuffix(e.Name(), ".sol"), e.IsDir() && strings.HasSuffix(e.Name(), ".sol")
	})

	matches := fuzzy.Find(contract, names)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

var _ usecase.ArtifactLocator = (*ArtifactLocator)(nil)
