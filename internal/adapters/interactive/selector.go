package interactive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// ConfirmFunc asks a yes/no question
type ConfirmFunc func(label string) (bool, error)

// StashConfirmer asks before local changes are stashed. Without a terminal, or in
// non-interactive mode, stashing is approved automatically.
type StashConfirmer struct {
	nonInteractive bool
	isTerminal     func() bool
	confirm        ConfirmFunc
	log            *slog.Logger
}

// NewStashConfirmer creates a confirmer prompting on the controlling terminal
func NewStashConfirmer(cfg *config.RuntimeConfig, log *slog.Logger) *StashConfirmer {
	return &StashConfirmer{
		nonInteractive: cfg.NonInteractive,
		isTerminal:     stdinIsTerminal,
		confirm:        promptConfirm,
		log:            log.With("component", "StashConfirmer"),
	}
}

func (s *StashConfirmer) ConfirmStash(_ context.Context, repoPath string) (bool, error) {
	if s.nonInteractive || !s.isTerminal() {
		s.log.Info("Uncommitted changes will be stashed and restored afterwards", "path", repoPath)
		return true, nil
	}

	label := fmt.Sprintf("%s has uncommitted changes. Stash them for the duration of the run",
		color.New(color.Bold).Sprint(repoPath))
	return s.confirm(label)
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ usecase.StashConfirmer = (*StashConfirmer)(nil)
