package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env and .env.local from dir. Existing variables take precedence.
func LoadDotEnv(dir string) {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig parses foundry.toml in contractsDir. A missing file yields nil,
// which resolves to the default artifacts directory.
func loadFoundryConfig(contractsDir string) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(contractsDir, "foundry.toml")

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}
	return &cfg, nil
}
