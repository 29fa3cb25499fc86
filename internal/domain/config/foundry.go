package config

// DefaultArtifactsDir is the out directory of the contracts-bedrock foundry profile.
const DefaultArtifactsDir = "forge-artifacts"

// FoundryConfig represents the parts of foundry.toml the generator reads
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}

// OutDir returns the artifacts directory of the default profile.
func (c *FoundryConfig) OutDir() string {
	if c == nil {
		return DefaultArtifactsDir
	}
	if profile, ok := c.Profile["default"]; ok && profile.OutPath != "" {
		return profile.OutPath
	}
	return DefaultArtifactsDir
}
