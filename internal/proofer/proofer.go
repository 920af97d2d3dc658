package proofer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/metrics"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

var (
	retryAttempts = retry.Attempts(4)
	retryDelay    = retry.Delay(1 * time.Second)
	retryError    = retry.LastErrorOnly(true)
)

// ProofClient is the capability subset of the target chain gateway the
// proofer needs: block headers and account/storage proofs.
type ProofClient interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	GetProof(ctx context.Context, account common.Address, keys []string, blockNumber *big.Int) (*gethclient.AccountResult, error)
}

// Proofer fetches storage values with inclusion proofs from the target
// chain and assembles the Bridge contract's proof payload.
type Proofer struct {
	client ProofClient
	logger *zap.Logger
}

func NewProofer(client ProofClient, logger *zap.Logger) *Proofer {
	return &Proofer{
		client: client,
		logger: logger,
	}
}

// GetStorageProof implements relay.Proofer. The read is evaluated at the
// fixed height blockID so replies stay reproducible no matter when the
// relay gets to the request.
func (p *Proofer) GetStorageProof(ctx context.Context, account common.Address, key *big.Int, blockID uint64) (*relay.StateProof, error) {
	blockNumber := new(big.Int).SetUint64(blockID)

	header, err := p.getHeader(ctx, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get target chain header for block=%d: %w", blockID, err)
	}

	result, err := p.getProof(ctx, account, key, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get proof for account=%s key=%s block=%d: %w",
			account.Hex(), key.String(), blockID, err)
	}

	return BuildStateProof(header, result, key)
}

func (p *Proofer) getHeader(ctx context.Context, blockNumber *big.Int) (*types.Header, error) {
	start := time.Now()

	var header *types.Header
	if err := retry.Do(func() error {
		var err error
		header, err = p.client.HeaderByNumber(ctx, blockNumber)
		return err
	}, retry.Context(ctx), retryAttempts, retryDelay, retryError, retry.OnRetry(func(n uint, err error) {
		p.logger.Info("failed to get header", zap.Uint("attempt", n), zap.Error(err))
	})); err != nil {
		metrics.AddFailedTargetChainGetter("HeaderByNumber", time.Since(start).Seconds())
		return nil, err
	}

	metrics.AddSuccessTargetChainGetter("HeaderByNumber", time.Since(start).Seconds())
	return header, nil
}

func (p *Proofer) getProof(ctx context.Context, account common.Address, key *big.Int, blockNumber *big.Int) (*gethclient.AccountResult, error) {
	start := time.Now()

	var result *gethclient.AccountResult
	if err := retry.Do(func() error {
		var err error
		result, err = p.client.GetProof(ctx, account, []string{common.BigToHash(key).Hex()}, blockNumber)
		return err
	}, retry.Context(ctx), retryAttempts, retryDelay, retryError, retry.OnRetry(func(n uint, err error) {
		p.logger.Info("failed to get proof", zap.Uint("attempt", n), zap.Error(err))
	})); err != nil {
		metrics.AddFailedTargetChainGetter("GetProof", time.Since(start).Seconds())
		return nil, err
	}

	metrics.AddSuccessTargetChainGetter("GetProof", time.Since(start).Seconds())
	return result, nil
}
