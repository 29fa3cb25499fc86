package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// abiEntry is one element of the JSON ABI printed by `forge inspect`
type abiEntry struct {
	Type   string                   `json:"type"`
	Inputs []abi.ArgumentMarshaling `json:"inputs"`
}

// Inspector reads contract ABIs with `forge inspect`
type Inspector struct {
	contractsDir string
	runner       shell.Runner
	log          *slog.Logger
}

// NewInspector creates an inspector running in the contracts directory
func NewInspector(cfg *config.RuntimeConfig, runner shell.Runner, log *slog.Logger) *Inspector {
	return &Inspector{
		contractsDir: filepath.Join(cfg.RepoPath, cfg.ContractsDir),
		runner:       runner,
		log:          log.With("component", "ForgeInspector"),
	}
}

// ConstructorSignature returns the canonical constructor signature, or "" when the
// contract has no constructor
func (i *Inspector) ConstructorSignature(ctx context.Context, contractName string) (string, error) {
	res, err := i.runner.Run(ctx, shell.Command{
		Name: "forge",
		Args: []string{"inspect", contractName, "abi", "--json"},
		Dir:  i.contractsDir,
	})
	if err != nil {
		return "", err
	}

	sig, err := ParseConstructorSignature([]byte(res.Stdout))
	if err != nil {
		return "", &domain.ArtifactError{
			Path:   contractName,
			Reason: fmt.Sprintf("unusable ABI from forge inspect: %v", err),
			Err:    domain.ErrMalformedOutput,
		}
	}
	i.log.Debug("constructor signature", "contract", contractName, "signature", sig)
	return sig, nil
}

// ParseConstructorSignature canonicalises the constructor of a JSON ABI, expanding
// tuples to their component types, e.g. constructor(uint256,(address,bool)[])
func ParseConstructorSignature(data []byte) (string, error) {
	var entries []abiEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("failed to parse ABI JSON: %w", err)
	}

	for _, entry := range entries {
		if entry.Type != "constructor" {
			continue
		}
		types := make([]string, 0, len(entry.Inputs))
		for _, input := range entry.Inputs {
			typ, err := abi.NewType(input.Type, input.InternalType, input.Components)
			if err != nil {
				return "", fmt.Errorf("constructor input %q: %w", input.Name, err)
			}
			types = append(types, typ.String())
		}
		return "constructor(" + strings.Join(types, ",") + ")", nil
	}
	return "", nil
}

var _ usecase.ABIInspector = (*Inspector)(nil)
