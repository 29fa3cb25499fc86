package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/fatih/color"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner      *spinner.Spinner
	out          io.Writer
	currentStage string
	stageStart   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter writing to out
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	opt := spinner.WithWriter(out)
	// the terminal check runs against the file, which defaults to stdout
	if f, ok := out.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, opt)
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events. A spinner event starts a stage, the next
// non-spinner event completes it with a green check, or a red cross when it failed.
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.currentStage = event.Stage
		r.stageStart = time.Now()
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if r.currentStage == "" {
		return
	}

	duration := time.Since(r.stageStart).Round(time.Millisecond)
	r.currentStage = ""
	mark := color.New(color.FgGreen).Sprint("✓")
	if event.Failed {
		mark = color.New(color.FgRed).Sprint("✗")
	}
	fmt.Fprintf(r.out, "%s %s (%s)\n", mark, event.Message, duration)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprint(message))
	})
}

// pause stops the spinner while fn writes, restarting it afterwards
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
