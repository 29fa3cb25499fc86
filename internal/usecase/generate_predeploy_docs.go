package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/ethereum-optimism/predeploy-docs/internal/logging"
)

// GenerateDocsResult contains the outcome of a documentation run
type GenerateDocsResult struct {
	Params         *domain.DerivedParameters
	Snapshot       *domain.RepoSnapshot
	BytecodeCopied bool
	// CopyCommand is the manual copy command, set when the bytecode was not copied
	CopyCommand string
	// RestoreErr is set when the repository could not be restored after a successful run
	RestoreErr error
}

// GeneratePredeployDocs derives the upgrade transaction parameters and publishes the document
type GeneratePredeployDocs struct {
	cfg          *config.RuntimeConfig
	dependencies *CheckDependencies
	repo         Repository
	confirmer    StashConfirmer
	builder      ContractBuilder
	artifacts    ArtifactLocator
	query        JSONQuery
	inspector    ABIInspector
	cast         ChainTool
	nonces       NonceReader
	verifier     Verifier
	publisher    DocumentPublisher
	bytecode     BytecodeWriter
	params       ParamsWriter
	sink         ProgressSink
	log          *slog.Logger
}

// NewGeneratePredeployDocs creates a new GeneratePredeployDocs use case
func NewGeneratePredeployDocs(
	cfg *config.RuntimeConfig,
	dependencies *CheckDependencies,
	repo Repository,
	confirmer StashConfirmer,
	builder ContractBuilder,
	artifacts ArtifactLocator,
	query JSONQuery,
	inspector ABIInspector,
	cast ChainTool,
	nonces NonceReader,
	verifier Verifier,
	publisher DocumentPublisher,
	bytecode BytecodeWriter,
	params ParamsWriter,
	sink ProgressSink,
	log *slog.Logger,
) *GeneratePredeployDocs {
	return &GeneratePredeployDocs{
		cfg:          cfg,
		dependencies: dependencies,
		repo:         repo,
		confirmer:    confirmer,
		builder:      builder,
		artifacts:    artifacts,
		query:        query,
		inspector:    inspector,
		cast:         cast,
		nonces:       nonces,
		verifier:     verifier,
		publisher:    publisher,
		bytecode:     bytecode,
		params:       params,
		sink:         sink,
		log:          log.With("component", "GeneratePredeployDocs"),
	}
}

// Run executes the full pipeline. The repository is restored on every path once it
// has been touched; a restore failure after success is reported in the result.
func (uc *GeneratePredeployDocs) Run(ctx context.Context, req domain.DeploymentRequest) (result *GenerateDocsResult, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.dependencies.Run(ctx); err != nil {
		return nil, fmt.Errorf("dependency check failed: %w", err)
	}

	if err := uc.checkRepository(ctx, req.GitCommitHash); err != nil {
		return nil, err
	}

	guard := NewRepositoryGuard(uc.repo, uc.confirmer, uc.log)
	defer func() {
		releaseErr := guard.Release(context.WithoutCancel(ctx))
		if releaseErr == nil {
			return
		}
		uc.log.Error("Error restoring repository state", "error", releaseErr)
		uc.sink.Error(fmt.Sprintf("Repository %s was not restored: %v", uc.repo.Path(), releaseErr))
		if result != nil {
			result.RestoreErr = releaseErr
		}
	}()

	snapshot, err := guard.Acquire(ctx, req.GitCommitHash)
	if err != nil {
		return nil, fmt.Errorf("failed to stash changes or checkout commit: %w", err)
	}

	params, err := uc.derive(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.Publish(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to publish document: %w", err)
	}

	result = &GenerateDocsResult{Params: params, Snapshot: snapshot}

	if uc.cfg.ParamsOut != "" {
		if err := uc.params.WriteParams(ctx, uc.cfg.ParamsOut, params); err != nil {
			return nil, fmt.Errorf("failed to write parameters: %w", err)
		}
		logging.Success(ctx, uc.log, "Wrote derived parameters", "path", uc.cfg.ParamsOut)
	}

	if req.CopyBytecode {
		bytecode, err := uc.extract(ctx, params.ForgeArtifactPathData, CreationBytecodeField)
		if err != nil {
			return nil, err
		}
		if err := uc.bytecode.WriteBytecode(ctx, params.DataPath, bytecode); err != nil {
			return nil, fmt.Errorf("failed to copy contract bytecode: %w", err)
		}
		result.BytecodeCopied = true
		logging.Success(ctx, uc.log, "Copied contract bytecode", "path", params.DataPath)
	} else {
		result.CopyCommand = fmt.Sprintf("jq -r '%s' %s > %s",
			CreationBytecodeField, filepath.Join(uc.repo.Path(), params.ForgeArtifactPathData), params.DataPath)
	}

	return result, nil
}

// checkRepository validates the repository before anything is mutated
func (uc *GeneratePredeployDocs) checkRepository(ctx context.Context, commit string) error {
	isGitRepo, err := uc.repo.Check(ctx)
	if err != nil {
		return fmt.Errorf("provided repository directory is not usable: %w", err)
	}
	if !isGitRepo {
		uc.log.Warn("Provided directory does not appear to be a git repository", "path", uc.repo.Path())
	}

	exists, err := uc.repo.CommitExists(ctx, commit)
	if err != nil {
		return &domain.RepositoryError{Op: "cat-file", Path: uc.repo.Path(), Err: err}
	}
	if !exists {
		return &domain.RepositoryError{
			Op:   "cat-file",
			Path: uc.repo.Path(),
			Err:  fmt.Errorf("commit %s is not reachable, fetch it first", commit),
		}
	}
	return nil
}

// derive runs the derivation steps in their required order
func (uc *GeneratePredeployDocs) derive(ctx context.Context, req domain.DeploymentRequest) (*domain.DerivedParameters, error) {
	intent := domain.DeploymentIntent(req.ForkName, req.ContractName)
	uc.log.Info("Deriving parameters", "intent", intent)

	uc.log.Info("Deriving deployed address...")
	deployedAddress, err := uc.cast.ComputeAddress(ctx, req.FromAddress, req.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to compute deployed address: %w", err)
	}
	uc.log.Info("Deployed address derived", "address", deployedAddress)

	uc.log.Info("Computing source hash...")
	sourceHash, err := uc.sourceHash(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("failed to compute source hash: %w", err)
	}
	uc.log.Info("Source hash computed", "sourceHash", sourceHash)

	uc.log.Info("Deriving contract bytecode...")
	artifactPath := uc.artifacts.ArtifactPath(req.ContractName)
	codeHash, err := uc.deriveCodeHash(ctx, req.GitCommitHash, artifactPath)
	if err != nil {
		return nil, err
	}

	creationCode, err := uc.extract(ctx, artifactPath, CreationBytecodeField)
	if err != nil {
		return nil, err
	}
	uc.log.Info("Contract bytecode extracted", "head", domain.BytecodeHead(creationCode))

	constructorSig, err := uc.inspector.ConstructorSignature(ctx, req.ContractName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract constructor signature: %w", err)
	}

	if uc.cfg.CheckNonce {
		uc.checkNonce(ctx, req)
	}

	uc.log.Info("Estimating gas for deployment...")
	gasLimit, err := uc.cast.EstimateCreate(ctx, req.RPCURL, creationCode, constructorSig, req.ConstructorArgList())
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	logging.Success(ctx, uc.log, "Estimated gas", "gas", gasLimit)

	params := &domain.DerivedParameters{
		ForkName:              req.ForkName,
		ContractName:          req.ContractName,
		Intent:                intent,
		FromAddress:           req.FromAddress,
		FromAddressNonce:      req.Nonce,
		GasLimit:              gasLimit,
		DataBytecodeHead:      domain.BytecodeHead(creationCode),
		DataPath:              domain.DataPath(uc.cfg.BytecodeDir, req.ForkName, req.ContractName),
		GitCommitHash:         req.GitCommitHash,
		ContractCodeHash:      codeHash,
		SourceHash:            sourceHash,
		DeployedAddress:       deployedAddress,
		ConstructorSignature:  constructorSig,
		Command:               domain.CommandEcho(uc.cfg.CommandPrefix, req.CommandArgs),
		ForgeArtifactPathData: artifactPath,
	}

	if req.HasProxy() {
		proxy, err := uc.deriveProxyUpdate(ctx, req, deployedAddress)
		if err != nil {
			return nil, err
		}
		params.Proxy = proxy
	}

	if uc.cfg.CrossCheck {
		if err := uc.crossCheck(req, params); err != nil {
			return nil, err
		}
	}

	return params, nil
}

// sourceHash computes keccak(prefix ++ keccak(intent))
func (uc *GeneratePredeployDocs) sourceHash(ctx context.Context, intent string) (string, error) {
	intentHash, err := uc.cast.Keccak(ctx, intent)
	if err != nil {
		return "", err
	}
	concatenated, err := uc.cast.ConcatHex(ctx, domain.SourceHashPrefix, intentHash)
	if err != nil {
		return "", err
	}
	return uc.cast.Keccak(ctx, concatenated)
}

// deriveCodeHash builds the commit and hashes the deployed bytecode
func (uc *GeneratePredeployDocs) deriveCodeHash(ctx context.Context, commit, artifactPath string) (string, error) {
	var codeHash string
	err := WithCheckout(ctx, uc.repo, uc.log, commit, func(ctx context.Context) error {
		uc.log.Info("Building contracts...")
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "building", Message: "Building contracts", Spinner: true})
		if err := uc.builder.Build(ctx); err != nil {
			uc.sink.OnProgress(ctx, ProgressEvent{Stage: "build-failed", Message: "Contract build failed", Failed: true})
			return fmt.Errorf("failed to build contracts: %w", err)
		}
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "built", Message: "Contracts built"})

		if err := uc.artifacts.Locate(ctx, artifactPath); err != nil {
			return err
		}

		uc.log.Info("Extracting deployed bytecode...")
		bytecode, err := uc.extract(ctx, artifactPath, DeployedBytecodeField)
		if err != nil {
			return err
		}

		codeHash, err = uc.cast.Keccak(ctx, bytecode)
		if err != nil {
			return fmt.Errorf("failed to compute code hash: %w", err)
		}
		logging.Success(ctx, uc.log, "Derived contract code hash", "codeHash", codeHash)
		return nil
	})
	if err != nil {
		return "", err
	}
	return codeHash, nil
}

// extract reads a bytecode field and rejects empty or unusable output
func (uc *GeneratePredeployDocs) extract(ctx context.Context, artifactPath, field string) (string, error) {
	value, err := uc.query.Field(ctx, artifactPath, field)
	if err != nil {
		var artifactErr *domain.ArtifactError
		if errors.As(err, &artifactErr) {
			return "", err
		}
		return "", &domain.ArtifactError{
			Path:   artifactPath,
			Reason: fmt.Sprintf("failed to extract %s", field),
			Err:    errors.Join(domain.ErrMalformedOutput, err),
		}
	}

	value = strings.TrimSpace(value)
	if value == "" || value == "null" || strings.HasPrefix(value, "jq: error") {
		return "", &domain.ArtifactError{
			Path:   artifactPath,
			Reason: fmt.Sprintf("no usable value at %s (output: %q)", field, value),
			Err:    domain.ErrMalformedOutput,
		}
	}
	return value, nil
}

// deriveProxyUpdate computes the proxy update transaction attributes
func (uc *GeneratePredeployDocs) deriveProxyUpdate(ctx context.Context, req domain.DeploymentRequest, deployedAddress string) (*domain.ProxyUpdate, error) {
	proxyIntent := domain.ProxyUpdateIntent(req.ForkName, req.ContractName)
	uc.log.Info("Deriving proxy update", "intent", proxyIntent, "proxy", req.ProxyAddress)

	selector, err := uc.cast.Sig(ctx, domain.UpgradeToSignature)
	if err != nil {
		return nil, fmt.Errorf("failed to compute upgradeTo selector: %w", err)
	}
	encoded, err := uc.cast.ABIEncode(ctx, domain.UpgradeToSignature, deployedAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upgradeTo arguments: %w", err)
	}
	data, err := uc.cast.ConcatHex(ctx, selector, encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to build proxy update data: %w", err)
	}

	proxySourceHash, err := uc.sourceHash(ctx, proxyIntent)
	if err != nil {
		return nil, fmt.Errorf("failed to compute proxy source hash: %w", err)
	}

	return &domain.ProxyUpdate{
		ProxyAddress:    req.ProxyAddress,
		ProxyIntent:     proxyIntent,
		ProxySourceHash: proxySourceHash,
		ProxyData:       data,
	}, nil
}

// checkNonce warns when the deployer account has already been used
func (uc *GeneratePredeployDocs) checkNonce(ctx context.Context, req domain.DeploymentRequest) {
	onChain, err := uc.nonces.PendingNonce(ctx, req.RPCURL, req.FromAddress)
	if err != nil {
		uc.log.Warn("Could not read deployer nonce", "address", req.FromAddress, "error", err)
		return
	}
	if onChain != req.Nonce {
		uc.log.Warn("Deployer nonce differs from the documented nonce, the upgrade transaction may revert",
			"address", req.FromAddress, "onChain", onChain, "documented", req.Nonce)
	}
}

type sourceHashCheck struct {
	field  string
	intent string
	got    string
}

// crossCheck compares toolchain output with the in-process computation
func (uc *GeneratePredeployDocs) crossCheck(req domain.DeploymentRequest, params *domain.DerivedParameters) error {
	expectedAddress, err := uc.verifier.CreateAddress(req.FromAddress, req.Nonce)
	if err != nil {
		return fmt.Errorf("cross-check: %w", err)
	}
	if !strings.EqualFold(expectedAddress, params.DeployedAddress) {
		return &domain.MismatchError{Field: "deployed address", Toolchain: params.DeployedAddress, Expected: expectedAddress}
	}

	checks := []sourceHashCheck{
		{field: "source hash", intent: params.Intent, got: params.SourceHash},
	}
	if params.Proxy != nil {
		checks = append(checks, sourceHashCheck{
			field:  "proxy source hash",
			intent: params.Proxy.ProxyIntent,
			got:    params.Proxy.ProxySourceHash,
		})
	}

	for _, c := range checks {
		expected, err := uc.verifier.SourceHash(domain.SourceHashPrefix, c.intent)
		if err != nil {
			return fmt.Errorf("cross-check: %w", err)
		}
		if !strings.EqualFold(expected, c.got) {
			return &domain.MismatchError{Field: c.field, Toolchain: c.got, Expected: expected}
		}
	}
	uc.log.Debug("cross-check passed", "address", params.DeployedAddress)
	return nil
}
