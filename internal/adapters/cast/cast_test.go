package cast

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell/shelltest"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAddress(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "labelled output",
			output: "Computing address for 0x4210000000000000000000000000000000000000\nComputed Address: 0x4200000000000000000000000000000000000022\n",
			want:   "0x4200000000000000000000000000000000000022",
		},
		{
			name:   "bare address",
			output: "0x4200000000000000000000000000000000000022",
			want:   "0x4200000000000000000000000000000000000022",
		},
		{name: "empty", output: "\n", wantErr: true},
		{name: "garbage", output: "Error: bad nonce", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &shelltest.MockRunner{}
			runner.Expect("cast", "compute-address", "--nonce", "7", "0x4210000000000000000000000000000000000000").
				Return(shelltest.Output(tt.output), nil)

			got, err := NewAdapter(runner, logging.Discard()).
				ComputeAddress(context.Background(), "0x4210000000000000000000000000000000000000", 7)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrMalformedOutput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashingCommands(t *testing.T) {
	runner := &shelltest.MockRunner{}
	runner.Expect("cast", "keccak", "Isthmus: CrossL2Inbox Deployment").Return(shelltest.Output("0xaaaa\n"), nil)
	runner.Expect("cast", "concat-hex", domain.SourceHashPrefix, "0xaaaa").Return(shelltest.Output("0x02aaaa\n"), nil)
	runner.Expect("cast", "sig", "upgradeTo(address)").Return(shelltest.Output("0x3659cfe6\n"), nil)
	runner.Expect("cast", "abi-encode", "upgradeTo(address)", "0x4200000000000000000000000000000000000022").
		Return(shelltest.Output("0x0000000000000000000000004200000000000000000000000000000000000022\n"), nil)

	a := NewAdapter(runner, logging.Discard())
	ctx := context.Background()

	h, err := a.Keccak(ctx, "Isthmus: CrossL2Inbox Deployment")
	require.NoError(t, err)
	assert.Equal(t, "0xaaaa", h)

	c, err := a.ConcatHex(ctx, domain.SourceHashPrefix, h)
	require.NoError(t, err)
	assert.Equal(t, "0x02aaaa", c)

	sig, err := a.Sig(ctx, "upgradeTo(address)")
	require.NoError(t, err)
	assert.Equal(t, "0x3659cfe6", sig)

	enc, err := a.ABIEncode(ctx, "upgradeTo(address)", "0x4200000000000000000000000000000000000022")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000004200000000000000000000000000000000000022", enc)

	runner.AssertExpectations(t)
}

func TestEstimateCreate(t *testing.T) {
	t.Run("with constructor", func(t *testing.T) {
		runner := &shelltest.MockRunner{}
		runner.Expect("cast", "estimate", "--create", "0x6080", "constructor(uint256,bool)", "1", "true").
			Return(shelltest.Output("420000\n"), nil)

		gas, err := NewAdapter(runner, logging.Discard()).EstimateCreate(
			context.Background(), "http://localhost:8545", "0x6080", "constructor(uint256,bool)", []string{"1", "true"})
		require.NoError(t, err)
		assert.Equal(t, "420000", gas)
		assert.Equal(t, []string{"ETH_RPC_URL=http://localhost:8545"}, runner.Commands()[0].Env)
	})

	t.Run("without constructor", func(t *testing.T) {
		runner := &shelltest.MockRunner{}
		runner.Expect("cast", "estimate", "--create", "0x6080").Return(shelltest.Output("375000"), nil)

		gas, err := NewAdapter(runner, logging.Discard()).EstimateCreate(
			context.Background(), "http://localhost:8545", "0x6080", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "375000", gas)
	})

	t.Run("command failure propagates", func(t *testing.T) {
		runner := &shelltest.MockRunner{}
		runner.Expect("cast", "estimate", "--create", "0x6080").
			Return(nil, &domain.CommandError{Command: "cast estimate", ExitCode: 1, Stderr: "connection refused"})

		_, err := NewAdapter(runner, logging.Discard()).EstimateCreate(
			context.Background(), "http://localhost:8545", "0x6080", "", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	})

	t.Run("non numeric output", func(t *testing.T) {
		runner := &shelltest.MockRunner{}
		runner.Expect("cast", "estimate", "--create", "0x6080").Return(shelltest.Output("execution reverted"), nil)

		_, err := NewAdapter(runner, logging.Discard()).EstimateCreate(
			context.Background(), "http://localhost:8545", "0x6080", "", nil)
		assert.True(t, errors.Is(err, domain.ErrMalformedOutput))
	})
}
