package submit

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/metrics"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// VerifyTransactor is the Bridge contract surface the submitter uses.
type VerifyTransactor interface {
	Verify(opts *bind.TransactOpts, requestID uint64, proof *relay.StateProof) (*types.Transaction, error)
}

// SubmitterImpl submits state proofs to the Bridge contract's verify entry
// point on the home chain.
type SubmitterImpl struct {
	contract VerifyTransactor
	sender   *TxSender
	logger   *zap.Logger
}

func NewSubmitterImpl(contract VerifyTransactor, sender *TxSender, logger *zap.Logger) *SubmitterImpl {
	return &SubmitterImpl{
		contract: contract,
		sender:   sender,
		logger:   logger,
	}
}

// SubmitProof implements relay.Submitter.
func (s *SubmitterImpl) SubmitProof(ctx context.Context, requestID uint64, proof *relay.StateProof) (string, error) {
	tx, err := s.sender.Send(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.Verify(opts, requestID, proof)
	})
	if err != nil {
		metrics.IncFailedTxSubmitted()
		return "", fmt.Errorf("failed to send verify tx for request id=%d: %w", requestID, err)
	}

	metrics.IncSuccessTxSubmitted()
	s.logger.Info("verify tx sent",
		zap.Uint64("request_id", requestID), zap.String("hash", tx.Hash().Hex()))

	return tx.Hash().Hex(), nil
}

// WaitConfirmed implements relay.Submitter.
func (s *SubmitterImpl) WaitConfirmed(ctx context.Context, hash string) error {
	receipt, err := s.sender.WaitForReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("verify tx %s reverted: %w", hash, relay.ErrTxRejected)
	}

	return nil
}
