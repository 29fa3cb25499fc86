package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CrossL2Inbox", "cross-l2-inbox"},
		{"L1Block", "l1-block"},
		{"GasPriceOracle", "gas-price-oracle"},
		{"Counter", "counter"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelToKebab(tt.input))
		})
	}
}

func TestDataPath(t *testing.T) {
	got := DataPath("../specs/static/bytecode", "Isthmus", "CrossL2Inbox")
	assert.Equal(t, "../specs/static/bytecode/isthmus-cross-l2-inbox-deployment.txt", got)
}

func TestForgeArtifactPath(t *testing.T) {
	got := ForgeArtifactPath("packages/contracts-bedrock", "forge-artifacts", "L1Block")
	assert.Equal(t, "packages/contracts-bedrock/forge-artifacts/L1Block.sol/L1Block.json", got)
}

func TestIntents(t *testing.T) {
	assert.Equal(t, "Isthmus: CrossL2Inbox Deployment", DeploymentIntent("Isthmus", "CrossL2Inbox"))
	assert.Equal(t, "Isthmus: CrossL2Inbox Proxy Update", ProxyUpdateIntent("Isthmus", "CrossL2Inbox"))
}

func TestBytecodeHead(t *testing.T) {
	tests := []struct {
		name     string
		bytecode string
		expected string
	}{
		{
			name:     "prefixed bytecode",
			bytecode: "0x608060405234801561001057600080fd5b50610123",
			expected: "0x608060405234801561001057600080fd...",
		},
		{
			name:     "unprefixed bytecode",
			bytecode: "608060405234801561001057600080fd5b50610123",
			expected: "0x608060405234801561001057600080fd...",
		},
		{
			name:     "short bytecode",
			bytecode: "0x6080",
			expected: "0x6080...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BytecodeHead(tt.bytecode))
		})
	}
}

func TestFormatArgsWithAlternateNewlines(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "empty",
			args:     nil,
			expected: "",
		},
		{
			name:     "single pair",
			args:     []string{"--fork-name", "Isthmus"},
			expected: "--fork-name Isthmus",
		},
		{
			name:     "two pairs",
			args:     []string{"--fork-name", "Isthmus", "--contract-name", "CrossL2Inbox"},
			expected: "--fork-name Isthmus \\\n--contract-name CrossL2Inbox",
		},
		{
			name:     "odd count",
			args:     []string{"--fork-name", "Isthmus", "--copy-contract-bytecode=true"},
			expected: "--fork-name Isthmus \\\n--copy-contract-bytecode=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatArgsWithAlternateNewlines(tt.args))
		})
	}
}

func TestCommandEcho(t *testing.T) {
	got := CommandEcho("./scripts/run_gen_predeploy_docs.sh", []string{"--fork-name", "Isthmus"})
	assert.Equal(t, "./scripts/run_gen_predeploy_docs.sh --fork-name Isthmus", got)
}
