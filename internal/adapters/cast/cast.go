package cast

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/samber/lo"
)

// Adapter implements usecase.ChainTool by shelling out to cast
type Adapter struct {
	runner shell.Runner
	log    *slog.Logger
}

// NewAdapter creates a new cast adapter
func NewAdapter(runner shell.Runner, log *slog.Logger) *Adapter {
	return &Adapter{
		runner: runner,
		log:    log.With("component", "CastAdapter"),
	}
}

// ComputeAddress prints "Computed Address: 0x..."; the address is the last token
func (a *Adapter) ComputeAddress(ctx context.Context, from string, nonce uint64) (string, error) {
	line, err := a.lastLine(ctx, nil, "compute-address", "--nonce", strconv.FormatUint(nonce, 10), from)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(line)
	address := fields[len(fields)-1]
	if !strings.HasPrefix(address, "0x") {
		return "", a.malformed("compute-address", line)
	}
	return address, nil
}

func (a *Adapter) Keccak(ctx context.Context, data string) (string, error) {
	return a.hex(ctx, "keccak", data)
}

func (a *Adapter) ConcatHex(ctx context.Context, parts ...string) (string, error) {
	return a.hex(ctx, "concat-hex", parts...)
}

func (a *Adapter) Sig(ctx context.Context, signature string) (string, error) {
	return a.hex(ctx, "sig", signature)
}

func (a *Adapter) ABIEncode(ctx context.Context, signature string, args ...string) (string, error) {
	return a.hex(ctx, "abi-encode", append([]string{signature}, args...)...)
}

// EstimateCreate estimates a contract creation against rpcURL, passed as ETH_RPC_URL
func (a *Adapter) EstimateCreate(ctx context.Context, rpcURL, bytecode, constructorSig string, args []string) (string, error) {
	cmdArgs := []string{"estimate", "--create", bytecode}
	if constructorSig != "" {
		cmdArgs = append(cmdArgs, constructorSig)
	}
	cmdArgs = append(cmdArgs, args...)

	env := lo.Ternary(rpcURL != "", []string{"ETH_RPC_URL=" + rpcURL}, nil)
	gas, err := a.lastLine(ctx, env, cmdArgs...)
	if err != nil {
		return "", err
	}
	if _, err := strconv.ParseUint(gas, 10, 64); err != nil {
		return "", a.malformed("estimate", gas)
	}
	return gas, nil
}

// hex runs a subcommand whose last output line is a 0x-prefixed value
func (a *Adapter) hex(ctx context.Context, sub string, args ...string) (string, error) {
	line, err := a.lastLine(ctx, nil, append([]string{sub}, args...)...)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(line, "0x") {
		return "", a.malformed(sub, line)
	}
	return line, nil
}

func (a *Adapter) lastLine(ctx context.Context, env []string, args ...string) (string, error) {
	res, err := a.runner.Run(ctx, shell.Command{Name: "cast", Args: args, Env: env})
	if err != nil {
		return "", err
	}
	line := res.LastLine()
	if line == "" {
		return "", a.malformed(args[0], line)
	}
	a.log.Debug("cast output", "subcommand", args[0], "value", line)
	return line, nil
}

func (a *Adapter) malformed(sub, output string) error {
	return fmt.Errorf("%w: cast %s returned %q", domain.ErrMalformedOutput, sub, output)
}

var _ usecase.ChainTool = (*Adapter)(nil)
