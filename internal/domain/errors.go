package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidRequest is returned when the deployment request is incomplete or malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrDependencyMissing is returned when a required external tool is not invocable
	ErrDependencyMissing = errors.New("dependency missing")

	// ErrRepositoryState is returned when the repository cannot be stashed, checked out or restored
	ErrRepositoryState = errors.New("repository state error")

	// ErrArtifactNotFound is returned when a forge artifact does not exist after the build
	ErrArtifactNotFound = errors.New("forge artifact not found")

	// ErrMalformedOutput is returned when a tool produces empty, null or unparsable output
	ErrMalformedOutput = errors.New("malformed tool output")

	// ErrCommandFailed is returned when a subprocess exits non-zero
	ErrCommandFailed = errors.New("command failed")

	// ErrCrossCheckMismatch is returned when toolchain output disagrees with the in-process check
	ErrCrossCheckMismatch = errors.New("cross-check mismatch")
)

// CommandError describes a failed subprocess invocation.
type CommandError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command)
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s with exit code %d", msg, e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Err}
}

// DependencyError reports a required tool that could not be run.
type DependencyError struct {
	Tool string
	Err  error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("required command '%s' not found or not working (ensure it is installed and on PATH, considering tools like mise): %v", e.Tool, e.Err)
}

func (e *DependencyError) Unwrap() []error {
	return []error{ErrDependencyMissing, e.Err}
}

// RepositoryError reports a failed git operation while mutating repository state.
type RepositoryError struct {
	Op   string
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("git %s in %s: %v", e.Op, e.Path, e.Err)
}

func (e *RepositoryError) Unwrap() []error {
	return []error{ErrRepositoryState, e.Err}
}

// ArtifactError reports a missing artifact or unusable artifact content.
type ArtifactError struct {
	Path        string
	Reason      string
	Suggestions []string
	Err         error
}

func (e *ArtifactError) Error() string {
	msg := fmt.Sprintf("artifact %s: %s", e.Path, e.Reason)
	if len(e.Suggestions) > 0 {
		var lines []string
		for _, s := range e.Suggestions {
			lines = append(lines, "  - "+s)
		}
		msg = fmt.Sprintf("%s\ndid you mean:\n%s", msg, strings.Join(lines, "\n"))
	}
	return msg
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// MismatchError reports a value that differs between cast and the in-process computation.
type MismatchError struct {
	Field     string
	Toolchain string
	Expected  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: toolchain returned %s, expected %s", e.Field, e.Toolchain, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrCrossCheckMismatch
}
