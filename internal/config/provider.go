package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults matching the layout of the Optimism monorepo and the specs repository
const (
	DefaultContractsDir  = "packages/contracts-bedrock"
	DefaultBuildTarget   = "build-contracts"
	DefaultBytecodeDir   = "../specs/static/bytecode"
	DefaultCommandPrefix = "./scripts/run_gen_predeploy_docs.sh"
	ConfigFileName       = ".predeploy-docs"
	EnvPrefix            = "PREDEPLOY"
)

// DefaultDependencies are the tools invoked during a run
var DefaultDependencies = []string{"git", "make", "jq", "cast", "forge"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	cfg := &config.RuntimeConfig{
		ContractsDir:   v.GetString("contracts_dir"),
		ArtifactsDir:   v.GetString("artifacts_dir"),
		BuildTarget:    v.GetString("build_target"),
		BytecodeDir:    v.GetString("bytecode_dir"),
		CommandPrefix:  v.GetString("command_prefix"),
		ParamsOut:      v.GetString("params_out"),
		Summary:        v.GetBool("summary"),
		ExtraPath:      expandPaths(v.GetStringSlice("extra_path")),
		Dependencies:   v.GetStringSlice("dependencies"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		CrossCheck:     v.GetBool("cross_check"),
		CheckNonce:     v.GetBool("check_nonce"),
	}

	if repoPath := v.GetString("optimism_repo_path"); repoPath != "" {
		abs, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve repository path: %w", err)
		}
		cfg.RepoPath = abs

		contractsDir := filepath.Join(abs, cfg.ContractsDir)
		LoadDotEnv(contractsDir)

		foundryConfig, err := loadFoundryConfig(contractsDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
		cfg.FoundryConfig = foundryConfig
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance. Flags are bound under their
// snake_case names so that flags, PREDEPLOY_* variables and the config file share keys.
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// .env values never override variables already set
	if wd, err := os.Getwd(); err == nil {
		LoadDotEnv(wd)
	}

	// Set up config file
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	_ = v.BindEnv("eth_rpc_url", EnvPrefix+"_ETH_RPC_URL", "ETH_RPC_URL")

	// Set defaults
	v.SetDefault("contracts_dir", DefaultContractsDir)
	v.SetDefault("build_target", DefaultBuildTarget)
	v.SetDefault("bytecode_dir", DefaultBytecodeDir)
	v.SetDefault("command_prefix", DefaultCommandPrefix)
	v.SetDefault("extra_path", []string{"$HOME/.local/bin", "$HOME/.local/share/mise/shims"})
	v.SetDefault("dependencies", DefaultDependencies)
	v.SetDefault("summary", true)
	v.SetDefault("cross_check", true)
	v.SetDefault("check_nonce", true)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bind := func(f *pflag.Flag) {
			if err := v.BindPFlag(FlagKey(f.Name), f); err != nil {
				panic(err)
			}
		}
		cmd.Flags().VisitAll(bind)
		cmd.InheritedFlags().VisitAll(bind)
	}

	return v
}

// FlagKey maps a flag name to its viper key
func FlagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// expandPaths expands environment references such as $HOME
func expandPaths(paths []string) []string {
	expanded := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = os.ExpandEnv(p); p != "" {
			expanded = append(expanded, p)
		}
	}
	return expanded
}
