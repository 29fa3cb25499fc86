package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain"
	"github.com/ethereum-optimism/predeploy-docs/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

const nonceTimeout = 10 * time.Second

// NonceChecker reads account nonces using ethclient
type NonceChecker struct {
	log *slog.Logger
}

// NewNonceChecker creates a new nonce checker
func NewNonceChecker(log *slog.Logger) *NonceChecker {
	return &NonceChecker{log: log.With("component", "NonceChecker")}
}

// PendingNonce dials rpcURL and returns the pending nonce of address
func (c *NonceChecker) PendingNonce(ctx context.Context, rpcURL, address string) (uint64, error) {
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}

	ctx, cancel := context.WithTimeout(ctx, nonceTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	nonce, err := client.PendingNonceAt(ctx, common.HexToAddress(address))
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	c.log.Debug("read pending nonce", "address", address, "nonce", nonce)
	return nonce, nil
}

var _ usecase.NonceReader = (*NonceChecker)(nil)
