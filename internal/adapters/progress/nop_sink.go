package progress

import (
	"context"
	"io"
	"os"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"golang.org/x/term"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

// OnProgress does nothing with progress events
func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Error does nothing with error messages
func (n *NopSink) Error(message string) {}

// NewProgressSink shows a spinner on w when it is a terminal. Debug runs stream
// the build output instead, so they get no spinner.
func NewProgressSink(cfg *config.RuntimeConfig, w io.Writer) usecase.ProgressSink {
	f, ok := w.(*os.File)
	return newProgressSink(cfg, w, ok && term.IsTerminal(int(f.Fd())))
}

func newProgressSink(cfg *config.RuntimeConfig, out io.Writer, isTerminal bool) usecase.ProgressSink {
	if cfg.Debug || cfg.NonInteractive || !isTerminal {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter(out)
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
