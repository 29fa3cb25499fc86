package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	debugStyle   = color.New(color.Faint)
	infoStyle    = color.New(color.FgBlue)
	successStyle = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
)

// ConsoleHandlerOptions configures a ConsoleHandler
type ConsoleHandlerOptions struct {
	Level slog.Leveler
	// ShowComponent keeps the "component" attribute that adapters attach to their loggers
	ShowComponent bool
}

// ConsoleHandler is a slog.Handler printing one colored line per record
type ConsoleHandler struct {
	out    io.Writer
	mu     *sync.Mutex
	opts   ConsoleHandlerOptions
	attrs  []slog.Attr
	groups []string
}

// NewConsoleHandler creates a handler writing to out
func NewConsoleHandler(out io.Writer, opts *ConsoleHandlerOptions) *ConsoleHandler {
	h := &ConsoleHandler{out: out, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, h.qualify(a))
		return true
	})

	line := styleFor(r.Level).Sprint(b.String())

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(a))
	}
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// qualify prefixes the attribute key with the open groups
func (h *ConsoleHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}
	a.Key = strings.Join(h.groups, ".") + "." + a.Key
	return a
}

func (h *ConsoleHandler) appendAttr(b *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Key == "component" && !h.opts.ShowComponent {
		return
	}
	value := a.Value.String()
	if strings.ContainsAny(value, " \t\n") {
		value = fmt.Sprintf("%q", value)
	}
	fmt.Fprintf(b, " %s=%s", a.Key, value)
}

func styleFor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return errorStyle
	case level >= slog.LevelWarn:
		return warnStyle
	case level >= LevelSuccess:
		return successStyle
	case level >= slog.LevelInfo:
		return infoStyle
	default:
		return debugStyle
	}
}
