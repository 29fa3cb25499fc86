package blockchain

import (
	"fmt"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Verifier recomputes addresses and source hashes with go-ethereum
type Verifier struct{}

// NewVerifier creates a new verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// CreateAddress returns the checksummed CREATE address for from and nonce
func (v *Verifier) CreateAddress(from string, nonce uint64) (string, error) {
	if !common.IsHexAddress(from) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAddress, from)
	}
	return crypto.CreateAddress(common.HexToAddress(from), nonce).Hex(), nil
}

// SourceHash returns keccak256(prefix ++ keccak256(intent))
func (v *Verifier) SourceHash(prefix, intent string) (string, error) {
	prefixBytes, err := hexutil.Decode(prefix)
	if err != nil {
		return "", fmt.Errorf("invalid source hash prefix %q: %w", prefix, err)
	}
	intentHash := crypto.Keccak256([]byte(intent))
	return crypto.Keccak256Hash(prefixBytes, intentHash).Hex(), nil
}

var _ usecase.Verifier = (*Verifier)(nil)
