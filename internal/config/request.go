package config

import (
	"os"
	"regexp"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/spf13/viper"
)

// envVarPattern matches ${VAR_NAME} and $VAR_NAME references
var envVarPattern = regexp.MustCompile(`^\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?$`)

// DetectEnvVar checks if a value is a simple environment variable reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// ResolveRPCURL returns the configured RPC URL. A value such as "${MAINNET_RPC_URL}"
// is looked up in the environment so config files can stay free of API keys.
func ResolveRPCURL(v *viper.Viper) string {
	raw := v.GetString("eth_rpc_url")
	if name, ok := DetectEnvVar(raw); ok {
		return os.Getenv(name)
	}
	return raw
}

// Request builds the deployment request from flags, environment and config file.
// commandArgs is the argument list echoed into the generated document.
func Request(v *viper.Viper, commandArgs []string) domain.DeploymentRequest {
	return domain.DeploymentRequest{
		ForkName:        v.GetString("fork_name"),
		ContractName:    v.GetString("contract_name"),
		FromAddress:     v.GetString("from_address"),
		Nonce:           v.GetUint64("from_address_nonce"),
		GitCommitHash:   v.GetString("git_commit_hash"),
		RPCURL:          ResolveRPCURL(v),
		ConstructorArgs: v.GetString("constructor_args"),
		TemplatePath:    v.GetString("template_path"),
		ProxyAddress:    v.GetString("proxy_address"),
		CopyBytecode:    v.GetBool("copy_contract_bytecode"),
		CommandArgs:     commandArgs,
	}
}
