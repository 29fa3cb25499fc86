package adapters

import (
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/blockchain"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/cast"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/forge"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/fs"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/git"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/interactive"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/jq"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/progress"
	"github.com/ethereum-optimism/predeploy-docs/internal/adapters/shell"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/google/wire"
)

// ShellSet provides the subprocess runner shared by all tool adapters
var ShellSet = wire.NewSet(
	shell.NewExecRunner,
	wire.Bind(new(shell.Runner), new(*shell.ExecRunner)),
)

// GitSet provides the repository state implementation
var GitSet = wire.NewSet(
	git.NewRepository,
	wire.Bind(new(usecase.Repository), new(*git.Repository)),
)

// ForgeSet provides build, artifact and ABI implementations
var ForgeSet = wire.NewSet(
	forge.NewBuilder,
	wire.Bind(new(usecase.ContractBuilder), new(*forge.Builder)),

	forge.NewInspector,
	wire.Bind(new(usecase.ABIInspector), new(*forge.Inspector)),

	forge.NewArtifactLocator,
	wire.Bind(new(usecase.ArtifactLocator), new(*forge.ArtifactLocator)),

	forge.NewToolChecker,
	wire.Bind(new(usecase.ToolChecker), new(*forge.ToolChecker)),
)

// ToolSet provides the jq and cast implementations
var ToolSet = wire.NewSet(
	jq.NewQuery,
	wire.Bind(new(usecase.JSONQuery), new(*jq.Query)),

	cast.NewAdapter,
	wire.Bind(new(usecase.ChainTool), new(*cast.Adapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.BytecodeWriter), new(*fs.FileWriterAdapter)),
	wire.Bind(new(usecase.ParamsWriter), new(*fs.FileWriterAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewStashConfirmer,
	wire.Bind(new(usecase.StashConfirmer), new(*interactive.StashConfirmer)),
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewNonceChecker,
	wire.Bind(new(usecase.NonceReader), new(*blockchain.NonceChecker)),

	blockchain.NewVerifier,
	wire.Bind(new(usecase.Verifier), new(*blockchain.Verifier)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ShellSet,
	GitSet,
	ForgeSet,
	ToolSet,
	FSSet,
	InteractiveSet,
	BlockchainSet,
	ProgressSet,
)
