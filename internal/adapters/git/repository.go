package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
)

// Repository drives git in the configured repository directory
type Repository struct {
	path   string
	runner shell.Runner
	log    *slog.Logger
}

// NewRepository creates a git adapter for cfg.RepoPath
func NewRepository(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *Repository {
	return &Repository{
		path:   cfg.RepoPath,
		runner: runner,
		log:    log.With("component", "GitRepository"),
	}
}

func (r *Repository) Path() string {
	return r.path
}

// Check verifies the path is a directory and reports whether it holds a .git entry
func (r *Repository) Check(_ context.Context) (bool, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", r.path)
	}
	if _, err := os.Stat(filepath.Join(r.path, ".git")); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) CommitExists(ctx context.Context, commit string) (bool, error) {
	_, err := r.git(ctx, "cat-file", "-e", commit+"^{commit}")
	if err == nil {
		return true, nil
	}
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
		return false, nil
	}
	return false, err
}

func (r *Repository) CurrentRef(ctx context.Context) (string, error) {
	// symbolic-ref exits 1 on a detached HEAD
	if res, err := r.git(ctx, "symbolic-ref", "--short", "-q", "HEAD"); err == nil {
		if branch := strings.TrimSpace(res.Stdout); branch != "" {
			return branch, nil
		}
	}

	res, err := r.git(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	sha := strings.TrimSpace(res.Stdout)
	if sha == "" {
		return "", fmt.Errorf("git rev-parse HEAD returned no commit")
	}
	return sha, nil
}

func (r *Repository) HasChanges(ctx context.Context) (bool, error) {
	res, err := r.git(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(res.Stdout) != "", nil
}

func (r *Repository) Stash(ctx context.Context, label string) error {
	_, err := r.git(ctx, "stash", "push", "--include-untracked", "-m", label)
	return err
}

// FindStash scans `git stash list` for an entry carrying label
func (r *Repository) FindStash(ctx context.Context, label string) (string, error) {
	res, err := r.git(ctx, "stash", "list", "--format=%gd %s")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		ref, message, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			continue
		}
		if strings.HasSuffix(message, label) {
			return ref, nil
		}
	}
	return "", nil
}

func (r *Repository) PopStash(ctx context.Context, ref string) error {
	_, err := r.git(ctx, "stash", "pop", ref)
	return err
}

func (r *Repository) Checkout(ctx context.Context, ref string) error {
	_, err := r.git(ctx, "checkout", ref)
	return err
}

func (r *Repository) git(ctx context.Context, args ...string) (*shell.Result, error) {
	return r.runner.Run(ctx, shell.Command{Name: "git", Args: args, Dir: r.path})
}

var _ usecase.Repository = (*Repository)(nil)
