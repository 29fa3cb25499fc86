package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// SourceHashPrefix is the domain separator of "Upgrade-deposited" source hashes.
const SourceHashPrefix = "0x0000000000000000000000000000000000000000000000000000000000000002"

// ProxyUpdateGasLimit is the fixed gas limit documented for the proxy update transaction.
const ProxyUpdateGasLimit = "50,000"

// UpgradeToSignature is the proxy function used to point a proxy at a new implementation.
const UpgradeToSignature = "upgradeTo(address)"

// DeploymentRequest holds everything a user supplies for one documentation run.
type DeploymentRequest struct {
	ForkName        string `json:"forkName" yaml:"forkName"`
	ContractName    string `json:"contractName" yaml:"contractName"`
	FromAddress     string `json:"fromAddress" yaml:"fromAddress"`
	Nonce           uint64 `json:"nonce" yaml:"nonce"`
	GitCommitHash   string `json:"gitCommitHash" yaml:"gitCommitHash"`
	RPCURL          string `json:"-" yaml:"-"`
	ConstructorArgs string `json:"constructorArgs,omitempty" yaml:"constructorArgs,omitempty"`
	TemplatePath    string `json:"-" yaml:"-"`
	ProxyAddress    string `json:"proxyAddress,omitempty" yaml:"proxyAddress,omitempty"`
	CopyBytecode    bool   `json:"copyBytecode" yaml:"copyBytecode"`

	// CommandArgs is the flag list echoed into the generated document.
	CommandArgs []string `json:"-" yaml:"-"`
}

// Validate checks required fields and address formats.
func (r *DeploymentRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fork name", r.ForkName},
		{"contract name", r.ContractName},
		{"from address", r.FromAddress},
		{"git commit hash", r.GitCommitHash},
		{"eth rpc url", r.RPCURL},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, f.name)
		}
	}

	if !common.IsHexAddress(r.FromAddress) {
		return fmt.Errorf("%w: from address %q", ErrInvalidAddress, r.FromAddress)
	}
	if r.HasProxy() && !common.IsHexAddress(r.ProxyAddress) {
		return fmt.Errorf("%w: proxy address %q", ErrInvalidAddress, r.ProxyAddress)
	}
	return nil
}

// HasProxy reports whether a proxy update section was requested.
func (r *DeploymentRequest) HasProxy() bool {
	return r.ProxyAddress != ""
}

// ConstructorArgList splits the comma separated constructor arguments.
func (r *DeploymentRequest) ConstructorArgList() []string {
	if r.ConstructorArgs == "" {
		return nil
	}
	return strings.Split(r.ConstructorArgs, ",")
}

// RepoSnapshot records the repository state to restore after a run.
type RepoSnapshot struct {
	Path        string
	OriginalRef string
	Stashed     bool
	StashLabel  string
}

// ProxyUpdate is the optional second deposit transaction that repoints a proxy.
type ProxyUpdate struct {
	ProxyAddress    string `json:"proxyAddress" yaml:"proxyAddress"`
	ProxyIntent     string `json:"proxyIntent" yaml:"proxyIntent"`
	ProxySourceHash string `json:"proxySourceHash" yaml:"proxySourceHash"`
	ProxyData       string `json:"proxyData" yaml:"proxyData"`
}

// DerivedParameters are the values bound into the rendered document.
type DerivedParameters struct {
	ForkName              string       `json:"forkName" yaml:"forkName"`
	ContractName          string       `json:"contractName" yaml:"contractName"`
	Intent                string       `json:"intent" yaml:"intent"`
	FromAddress           string       `json:"fromAddress" yaml:"fromAddress"`
	FromAddressNonce      uint64       `json:"fromAddressNonce" yaml:"fromAddressNonce"`
	GasLimit              string       `json:"gasLimit" yaml:"gasLimit"`
	DataBytecodeHead      string       `json:"dataBytecodeHead" yaml:"dataBytecodeHead"`
	DataPath              string       `json:"dataPath" yaml:"dataPath"`
	GitCommitHash         string       `json:"gitCommitHash" yaml:"gitCommitHash"`
	ContractCodeHash      string       `json:"contractCodeHash" yaml:"contractCodeHash"`
	SourceHash            string       `json:"sourceHash" yaml:"sourceHash"`
	DeployedAddress       string       `json:"deployedAddress" yaml:"deployedAddress"`
	ConstructorSignature  string       `json:"constructorSignature,omitempty" yaml:"constructorSignature,omitempty"`
	Command               string       `json:"command" yaml:"command"`
	ForgeArtifactPathData string       `json:"forgeArtifactPath" yaml:"forgeArtifactPath"`
	Proxy                 *ProxyUpdate `json:"proxy,omitempty" yaml:"proxy,omitempty"`
}
