package forge

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell/shelltest"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstructorSignature(t *testing.T) {
	tests := []struct {
		name    string
		abi     string
		want    string
		wantErr bool
	}{
		{
			name: "no constructor",
			abi:  `[{"type":"function","name":"validateMessage","inputs":[{"name":"_id","type":"bytes32"}]}]`,
			want: "",
		},
		{
			name: "empty constructor",
			abi:  `[{"type":"constructor","inputs":[],"stateMutability":"nonpayable"}]`,
			want: "constructor()",
		},
		{
			name: "elementary inputs",
			abi: `[{"type":"constructor","inputs":[
				{"name":"_owner","type":"address","internalType":"address"},
				{"name":"_limit","type":"uint256","internalType":"uint256"},
				{"name":"_flag","type":"bool","internalType":"bool"}]}]`,
			want: "constructor(address,uint256,bool)",
		},
		{
			name: "tuple and tuple array",
			abi: `[{"type":"constructor","inputs":[
				{"name":"_cfg","type":"tuple","internalType":"struct Config",
				 "components":[{"name":"a","type":"address"},{"name":"b","type":"uint64"}]},
				{"name":"_list","type":"tuple[]","internalType":"struct Item[]",
				 "components":[{"name":"x","type":"bytes32"},{"name":"y","type":"bool"}]}]}]`,
			want: "constructor((address,uint64),(bytes32,bool)[])",
		},
		{name: "malformed json", abi: `{"type":`, wantErr: true},
		{
			name:    "unknown type",
			abi:     `[{"type":"constructor","inputs":[{"name":"a","type":"notatype"}]}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConstructorSignature([]byte(tt.abi))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInspectorRunsForgeInContractsDir(t *testing.T) {
	runner := &shelltest.MockRunner{}
	runner.Expect("forge", "inspect", "CrossL2Inbox", "abi", "--json").
		Return(shelltest.Output(`[{"type":"constructor","inputs":[{"name":"x","type":"uint256"}]}]`), nil)

	cfg := &config.RuntimeConfig{RepoPath: "/work/optimism", ContractsDir: "packages/contracts-bedrock"}
	sig, err := NewInspector(cfg, runner, logging.Discard()).ConstructorSignature(context.Background(), "CrossL2Inbox")
	require.NoError(t, err)
	assert.Equal(t, "constructor(uint256)", sig)
	assert.Equal(t, filepath.Join("/work/optimism", "packages/contracts-bedrock"), runner.Commands()[0].Dir)
}

func TestInspectorMalformedOutput(t *testing.T) {
	runner := &shelltest.MockRunner{}
	runner.Expect("forge", "inspect", "Broken", "abi", "--json").Return(shelltest.Output("Error: not found"), nil)

	_, err := NewInspector(&config.RuntimeConfig{}, runner, logging.Discard()).ConstructorSignature(context.Background(), "Broken")
	require.Error(t, err)

	var artifactErr *domain.ArtifactError
	assert.True(t, errors.As(err, &artifactErr))
	assert.True(t, errors.Is(err, domain.ErrMalformedOutput))
}
