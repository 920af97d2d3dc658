package txsubmitchecker

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

var (
	retryAttempts = retry.Attempts(4)
	retryDelay    = retry.Delay(1 * time.Second)
	retryError    = retry.LastErrorOnly(true)
)

const getReceiptTimeout = 10 * time.Second

// ReceiptClient is the capability subset of the home chain gateway the
// checker needs.
type ReceiptClient interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// TxSubmitChecker resolves the final status of verification txs the relayer
// recorded as Submitted but could not confirm itself, e.g. after a crash
// between submission and receipt.
type TxSubmitChecker struct {
	storage relay.Storage
	client  ReceiptClient
	logger  *zap.Logger
}

func NewTxSubmitChecker(
	storage relay.Storage,
	client ReceiptClient,
	logger *zap.Logger,
) *TxSubmitChecker {
	return &TxSubmitChecker{
		storage: storage,
		client:  client,
		logger:  logger,
	}
}

func (tc *TxSubmitChecker) Run(ctx context.Context, submittedTxsTasksQueue <-chan relay.PendingSubmittedTxInfo) error {
	// Read and process all pending submitted transactions on startup.
	pending, err := tc.storage.GetAllPendingTxs()
	if err != nil {
		return fmt.Errorf("failed to read pending txs from storage: %w", err)
	}

	for _, tx := range pending {
		if err := tc.processSubmittedTx(ctx, tx); err != nil {
			tc.logger.Error("Failed to processSubmittedTx (on startup)",
				zap.Error(err), zap.Uint64("request_id", tx.RequestID),
				zap.String("tx_hash", tx.SubmittedTxHash))
		}
	}

	for {
		select {
		case tx := <-submittedTxsTasksQueue:
			if err := tc.processSubmittedTx(ctx, &tx); err != nil {
				tc.logger.Error("Failed to processSubmittedTx",
					zap.Error(err), zap.Uint64("request_id", tx.RequestID),
					zap.String("tx_hash", tx.SubmittedTxHash))
			}
		case <-ctx.Done():
			tc.logger.Info("Context cancelled, shutting down TxSubmitChecker...")
			return nil
		}
	}
}

func (tc *TxSubmitChecker) processSubmittedTx(ctx context.Context, tx *relay.PendingSubmittedTxInfo) error {
	receipt, err := tc.retryGetReceiptWithTimeout(ctx, common.HexToHash(tx.SubmittedTxHash))
	if err != nil {
		return fmt.Errorf("failed to get receipt for tx %s: %w", tx.SubmittedTxHash, err)
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		tc.updateTxStatus(tx, relay.SubmittedTxInfo{
			Status: relay.Committed,
		})
	} else {
		tc.updateTxStatus(tx, relay.SubmittedTxInfo{
			Status:  relay.ErrorOnCommit,
			Message: "transaction reverted",
		})
	}

	return nil
}

func (tc *TxSubmitChecker) retryGetReceiptWithTimeout(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	timeoutCtx, cancel := context.WithTimeout(ctx, getReceiptTimeout)
	defer cancel()

	if err := retry.Do(func() error {
		var err error
		receipt, err = tc.client.TransactionReceipt(timeoutCtx, hash)
		return err
	}, retry.Context(timeoutCtx), retryAttempts, retryDelay, retryError); err != nil {
		return nil, err
	}

	return receipt, nil
}

func (tc *TxSubmitChecker) updateTxStatus(tx *relay.PendingSubmittedTxInfo, status relay.SubmittedTxInfo) {
	err := tc.storage.SetTxStatus(tx.RequestID, tx.SubmittedTxHash, status)
	if err != nil {
		tc.logger.Error(
			"failed to update tx status in storage",
			zap.String("tx_hash", tx.SubmittedTxHash),
			zap.Error(err),
		)
	} else {
		tc.logger.Info(
			"set tx status",
			zap.String("tx_hash", tx.SubmittedTxHash),
			zap.String("status", string(status.Status)),
		)
	}
}
