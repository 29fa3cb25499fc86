// Package shelltest provides a mock shell.Runner for adapter tests.
package shelltest

import (
	"context"
	"slices"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of shell.Runner
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, cmd shell.Command) (*shell.Result, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(*shell.Result)
	if result == nil {
		result = &shell.Result{}
	}
	return result, args.Error(1)
}

// Expect registers an invocation of name with exactly args
func (m *MockRunner) Expect(name string, args ...string) *mock.Call {
	return m.On("Run", mock.Anything, Invocation(name, args...))
}

// Invocation matches a command by name and arguments
func Invocation(name string, args ...string) any {
	return mock.MatchedBy(func(cmd shell.Command) bool {
		return cmd.Name == name && slices.Equal(cmd.Args, args)
	})
}

// Output is a result with the given stdout
func Output(stdout string) *shell.Result {
	return &shell.Result{Stdout: stdout}
}

// Commands returns the commands passed to Run, in order
func (m *MockRunner) Commands() []shell.Command {
	var cmds []shell.Command
	for _, call := range m.Calls {
		if call.Method == "Run" {
			cmds = append(cmds, call.Arguments.Get(1).(shell.Command))
		}
	}
	return cmds
}
