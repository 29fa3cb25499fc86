package app

import (
	"io"
	"os"

	"github.com/ethereum-optimism/predeploy-docs/internal/cli/render"
)

// Streams are the output streams of the application. The document goes to Out;
// logs, banners and tables go to Err.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams
func StdStreams() Streams {
	return Streams{Out: os.Stdout, Err: os.Stderr}
}

// ProvideMarkdownRenderer wires the document renderer to both streams
func ProvideMarkdownRenderer(streams Streams) *render.MarkdownRenderer {
	return render.NewMarkdownRenderer(streams.Out, streams.Err)
}
