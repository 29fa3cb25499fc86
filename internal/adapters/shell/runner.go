package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
)

// Command describes one external process invocation
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env holds KEY=VALUE entries layered over the inherited environment
	Env []string
	// Stream copies the combined output to the terminal through a pty
	Stream bool
}

// String renders the command line for logs and errors
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result holds the captured output of a finished command
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// LastLine returns the last non-empty line of stdout
func (r *Result) LastLine() string {
	lines := strings.Split(strings.TrimSpace(r.Stdout), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// Runner executes external commands
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands with os/exec. Every command sees the configured extra PATH
// entries ahead of the inherited PATH.
type ExecRunner struct {
	extraPath []string
	streamTo  io.Writer
	log       *slog.Logger
}

// NewExecRunner creates a runner streaming pty output to w
func NewExecRunner(cfg *config.RuntimeConfig, w io.Writer, log *slog.Logger) *ExecRunner {
	return &ExecRunner{
		extraPath: cfg.ExtraPath,
		streamTo:  w,
		log:       log.With("component", "ExecRunner"),
	}
}

// Run executes cmd and returns its output. A non-zero exit becomes a domain.CommandError.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = Environ(os.Environ(), r.extraPath, cmd.Env)

	r.log.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)
	start := time.Now()

	var result *Result
	var err error
	if cmd.Stream {
		result, err = r.runPTY(c)
	} else {
		result, err = r.runCaptured(c)
	}
	result.Duration = time.Since(start)

	if err != nil {
		cmdErr := &domain.CommandError{
			Command: cmd.String(),
			Stdout:  result.Stdout,
			Stderr:  result.Stderr,
			Err:     err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			cmdErr.Err = errors.Join(ctxErr, err)
		}
		r.log.Debug("command failed", "cmd", cmd.String(), "error", err, "duration", result.Duration)
		return result, cmdErr
	}

	r.log.Debug("command completed", "cmd", cmd.String(), "duration", result.Duration)
	return result, nil
}

func (r *ExecRunner) runCaptured(c *exec.Cmd) (*Result, error) {
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	err := c.Run()
	return &Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// runPTY starts the command on a pseudo terminal so tools keep their colours
func (r *ExecRunner) runPTY(c *exec.Cmd) (*Result, error) {
	ptyFile, err := pty.Start(c)
	if err != nil {
		return &Result{}, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var output bytes.Buffer
	// reading a pty after the child exits returns EIO on linux
	_, _ = io.Copy(io.MultiWriter(r.streamTo, &output), ptyFile)

	err = c.Wait()
	return &Result{Stdout: output.String()}, err
}

// Environ returns base with extraPath prepended to PATH and overrides applied
func Environ(base, extraPath, overrides []string) []string {
	env := make([]string, 0, len(base)+len(overrides)+1)
	overridden := make(map[string]bool, len(overrides))
	for _, kv := range overrides {
		overridden[envKey(kv)] = true
	}

	path := ""
	for _, kv := range base {
		key := envKey(kv)
		if key == "PATH" {
			path = strings.TrimPrefix(kv, "PATH=")
			continue
		}
		if overridden[key] {
			continue
		}
		env = append(env, kv)
	}

	parts := append([]string{}, extraPath...)
	if path != "" {
		parts = append(parts, path)
	}
	if len(parts) > 0 && !overridden["PATH"] {
		env = append(env, "PATH="+strings.Join(parts, string(os.PathListSeparator)))
	}

	return append(env, overrides...)
}

func envKey(kv string) string {
	key, _, _ := strings.Cut(kv, "=")
	return key
}
