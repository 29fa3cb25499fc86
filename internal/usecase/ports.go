package usecase

import (
	"context"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
)

// Artifact fields read with jq
const (
	CreationBytecodeField = ".bytecode.object"
	DeployedBytecodeField = ".deployedBytecode.object"
)

// ToolChecker verifies that an external command can be invoked
type ToolChecker interface {
	Version(ctx context.Context, tool string) (string, error)
}

// Repository manages the git state of the Optimism repository
type Repository interface {
	Path() string
	// Check returns an error if the path is not a directory and reports whether it holds a .git entry
	Check(ctx context.Context) (isGitRepo bool, err error)
	CommitExists(ctx context.Context, commit string) (bool, error)
	// CurrentRef returns the checked out branch, or the commit SHA when HEAD is detached
	CurrentRef(ctx context.Context) (string, error)
	HasChanges(ctx context.Context) (bool, error)
	Stash(ctx context.Context, label string) error
	// FindStash returns the stash ref (stash@{n}) whose message contains label, or "" if none
	FindStash(ctx context.Context, label string) (string, error)
	PopStash(ctx context.Context, ref string) error
	Checkout(ctx context.Context, ref string) error
}

// StashConfirmer asks whether uncommitted changes may be stashed
type StashConfirmer interface {
	ConfirmStash(ctx context.Context, repoPath string) (bool, error)
}

// ContractBuilder builds the forge artifacts of the repository
type ContractBuilder interface {
	Build(ctx context.Context) error
}

// ArtifactLocator resolves forge artifact paths inside the repository
type ArtifactLocator interface {
	// ArtifactPath returns the artifact path of a contract relative to the repository root
	ArtifactPath(contractName string) string
	// Locate returns an ArtifactError with suggestions when the artifact does not exist
	Locate(ctx context.Context, artifactPath string) error
}

// JSONQuery extracts a raw field from a JSON file
type JSONQuery interface {
	Field(ctx context.Context, file string, field string) (string, error)
}

// ABIInspector reads contract metadata with forge
type ABIInspector interface {
	// ConstructorSignature returns e.g. "constructor(uint256,bool)", or "" without a constructor
	ConstructorSignature(ctx context.Context, contractName string) (string, error)
}

// ChainTool performs hashing, address derivation, ABI encoding and gas estimation
type ChainTool interface {
	ComputeAddress(ctx context.Context, from string, nonce uint64) (string, error)
	Keccak(ctx context.Context, data string) (string, error)
	ConcatHex(ctx context.Context, parts ...string) (string, error)
	Sig(ctx context.Context, signature string) (string, error)
	ABIEncode(ctx context.Context, signature string, args ...string) (string, error)
	EstimateCreate(ctx context.Context, rpcURL, bytecode, constructorSig string, args []string) (string, error)
}

// NonceReader reads account nonces from a node
type NonceReader interface {
	PendingNonce(ctx context.Context, rpcURL, address string) (uint64, error)
}

// Verifier recomputes derived values in-process to cross-check toolchain output
type Verifier interface {
	CreateAddress(from string, nonce uint64) (string, error)
	SourceHash(prefix, intent string) (string, error)
}

// DocumentPublisher renders and emits the documentation
type DocumentPublisher interface {
	Publish(ctx context.Context, params *domain.DerivedParameters) error
}

// BytecodeWriter persists the full creation bytecode
type BytecodeWriter interface {
	WriteBytecode(ctx context.Context, path string, bytecode string) error
}

// ParamsWriter persists the derived parameters in a machine readable format
type ParamsWriter interface {
	WriteParams(ctx context.Context, path string, params *domain.DerivedParameters) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update. A non-spinner event completes the
// running stage, Failed marks that completion as unsuccessful.
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
	Failed  bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	// Error reports a failure the user must act on after the run
	Error(message string)
}
