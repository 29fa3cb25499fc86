package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
	"github.com/google/uuid"
)

const stashLabelPrefix = "predeploy-docs temporary stash"

// RepositoryGuard owns the repository for the duration of a run. Once Acquire has
// recorded the original ref, Release restores it exactly once.
type RepositoryGuard struct {
	repo      Repository
	confirmer StashConfirmer
	log       *slog.Logger

	snapshot   *domain.RepoSnapshot
	once       sync.Once
	releaseErr error
}

// NewRepositoryGuard creates a guard over repo
func NewRepositoryGuard(repo Repository, confirmer StashConfirmer, log *slog.Logger) *RepositoryGuard {
	return &RepositoryGuard{
		repo:      repo,
		confirmer: confirmer,
		log:       log.With("component", "RepositoryGuard"),
	}
}

// Acquire snapshots the current ref, stashes local changes and checks out commit.
func (g *RepositoryGuard) Acquire(ctx context.Context, commit string) (*domain.RepoSnapshot, error) {
	path := g.repo.Path()

	ref, err := g.repo.CurrentRef(ctx)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "rev-parse", Path: path, Err: err}
	}
	snapshot := &domain.RepoSnapshot{Path: path, OriginalRef: ref}
	g.snapshot = snapshot

	dirty, err := g.repo.HasChanges(ctx)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "status", Path: path, Err: err}
	}

	if dirty {
		ok, err := g.confirmer.ConfirmStash(ctx, path)
		if err != nil {
			return nil, &domain.RepositoryError{Op: "stash", Path: path, Err: err}
		}
		if !ok {
			return nil, &domain.RepositoryError{Op: "stash", Path: path, Err: errors.New("stashing local changes was declined")}
		}

		label := fmt.Sprintf("%s %s", stashLabelPrefix, uuid.NewString())
		if err := g.repo.Stash(ctx, label); err != nil {
			return nil, &domain.RepositoryError{Op: "stash", Path: path, Err: err}
		}
		snapshot.Stashed = true
		snapshot.StashLabel = label
		logging.Success(ctx, g.log, "Changes in repository stashed", "label", label)
	}

	if err := g.repo.Checkout(ctx, commit); err != nil {
		return nil, &domain.RepositoryError{Op: "checkout", Path: path, Err: err}
	}
	logging.Success(ctx, g.log, "Checked out commit", "commit", commit)

	return snapshot, nil
}

// Release restores the snapshot. It is safe to call more than once and on a guard
// that was never acquired.
func (g *RepositoryGuard) Release(ctx context.Context) error {
	g.once.Do(func() {
		g.releaseErr = g.restore(ctx)
	})
	return g.releaseErr
}

func (g *RepositoryGuard) restore(ctx context.Context) error {
	snapshot := g.snapshot
	if snapshot == nil {
		return nil
	}

	g.log.Info("Restoring repository state", "ref", snapshot.OriginalRef)
	if err := g.repo.Checkout(ctx, snapshot.OriginalRef); err != nil {
		if snapshot.Stashed {
			g.log.Warn("Local changes remain stashed", "label", snapshot.StashLabel)
		}
		return &domain.RepositoryError{Op: "checkout", Path: snapshot.Path, Err: err}
	}
	logging.Success(ctx, g.log, "Checked out original ref", "ref", snapshot.OriginalRef)

	if !snapshot.Stashed {
		return nil
	}

	stashRef, err := g.repo.FindStash(ctx, snapshot.StashLabel)
	if err != nil {
		return &domain.RepositoryError{Op: "stash list", Path: snapshot.Path, Err: err}
	}
	if stashRef == "" {
		g.log.Warn("Stash entry not found, nothing to restore", "label", snapshot.StashLabel)
		return nil
	}
	if err := g.repo.PopStash(ctx, stashRef); err != nil {
		return &domain.RepositoryError{Op: "stash pop", Path: snapshot.Path, Err: err}
	}
	logging.Success(ctx, g.log, "Stashed changes restored", "stash", stashRef)
	return nil
}

// WithCheckout checks out commit, runs fn and checks the previous ref out again on
// every path. A restore failure is returned only when fn itself succeeded.
func WithCheckout(ctx context.Context, repo Repository, log *slog.Logger, commit string, fn func(ctx context.Context) error) (err error) {
	ref, err := repo.CurrentRef(ctx)
	if err != nil {
		return &domain.RepositoryError{Op: "rev-parse", Path: repo.Path(), Err: err}
	}

	log.Info("Checking out git commit", "commit", commit)
	if err := repo.Checkout(ctx, commit); err != nil {
		return &domain.RepositoryError{Op: "checkout", Path: repo.Path(), Err: err}
	}

	defer func() {
		log.Info("Restoring git state", "path", repo.Path(), "ref", ref)
		if restoreErr := repo.Checkout(context.WithoutCancel(ctx), ref); restoreErr != nil {
			wrapped := &domain.RepositoryError{Op: "checkout", Path: repo.Path(), Err: restoreErr}
			if err == nil {
				err = wrapped
				return
			}
			log.Error("Failed to restore git state", "error", wrapped)
		}
	}()

	return fn(ctx)
}
