package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and adapters and contains all resolved settings
type RuntimeConfig struct {
	// Repository settings
	RepoPath     string // Optimism monorepo checkout
	ContractsDir string // Foundry project inside the repo, relative to RepoPath
	ArtifactsDir string // Foundry "out" directory, relative to ContractsDir
	BuildTarget  string // make target producing the forge artifacts

	// Output settings
	BytecodeDir   string // where full bytecode files live, relative to the working directory
	CommandPrefix string // reproduction command echoed into the document
	ParamsOut     string // optional YAML/JSON dump of the derived parameters
	Summary       bool

	// Subprocess settings
	ExtraPath    []string // prepended to PATH for every subprocess
	Dependencies []string // tools verified before any repository mutation

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	CrossCheck     bool
	CheckNonce     bool

	// Resolved configurations
	FoundryConfig *FoundryConfig
}
