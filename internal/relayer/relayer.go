package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/metrics"
	"github.com/xcqa/xcqa-query-relayer/internal/registry"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// Relayer is the controller of the relay loop:
// 1. takes RequestLogged events from the home chain
// 2. fetches the storage proof for each request from the target chain
// 3. submits the proof back to the Bridge contract's verify entry point
//
// Events are processed strictly one at a time: the verify tx of event n is
// confirmed before event n+1 is touched, which keeps the signing account's
// nonces ordered without extra coordination.
type Relayer struct {
	proofer   relay.Proofer
	submitter relay.Submitter
	storage   relay.Storage
	registry  *registry.Registry
	logger    *zap.Logger
}

func NewRelayer(
	proofer relay.Proofer,
	submitter relay.Submitter,
	storage relay.Storage,
	registry *registry.Registry,
	logger *zap.Logger,
) *Relayer {
	return &Relayer{
		proofer:   proofer,
		submitter: submitter,
		storage:   storage,
		registry:  registry,
		logger:    logger,
	}
}

// Run consumes RequestLogged tasks until ctx is cancelled. Failure of any
// step for one event is logged and the event is dropped; the loop itself
// only stops on shutdown. Verification txs whose outcome stays unknown are
// handed to submittedTxsTasksQueue for the tx submit checker.
func (r *Relayer) Run(ctx context.Context, tasks <-chan *relay.MessageRequestLogged, submittedTxsTasksQueue chan<- relay.PendingSubmittedTxInfo) error {
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Context cancelled, shutting down Relayer...")
			return nil
		case m := <-tasks:
			start := time.Now()
			if err := r.processRequest(ctx, m, submittedTxsTasksQueue); err != nil {
				metrics.AddFailedRequest(time.Since(start).Seconds())
				r.logger.Error("failed to process request",
					zap.Uint64("request_id", m.RequestID), zap.Error(err))
			} else {
				metrics.AddSuccessRequest(time.Since(start).Seconds())
			}
		}
	}
}

func (r *Relayer) processRequest(ctx context.Context, m *relay.MessageRequestLogged, submittedTxsTasksQueue chan<- relay.PendingSubmittedTxInfo) error {
	if !r.isWatchedAccount(m) {
		r.logger.Debug("skipping request for unwatched account",
			zap.Uint64("request_id", m.RequestID), zap.String("account", m.Account.Hex()))
		return nil
	}

	processed, err := r.storage.IsRequestProcessed(m.RequestID)
	if err != nil {
		return fmt.Errorf("failed to check if request is processed: %w", err)
	}
	if processed {
		r.logger.Debug("request already processed, skipping",
			zap.Uint64("request_id", m.RequestID))
		return nil
	}

	proof, err := r.proofer.GetStorageProof(ctx, m.Account, m.Key, m.BlockID)
	if err != nil {
		return fmt.Errorf("could not get proof for request id=%d: %w", m.RequestID, err)
	}

	return r.submitProof(ctx, m.RequestID, proof, submittedTxsTasksQueue)
}

func (r *Relayer) submitProof(ctx context.Context, requestID uint64, proof *relay.StateProof, submittedTxsTasksQueue chan<- relay.PendingSubmittedTxInfo) error {
	start := time.Now()

	hash, err := r.submitter.SubmitProof(ctx, requestID, proof)
	if err != nil {
		metrics.AddFailedProof(time.Since(start).Seconds())
		r.setTxStatus(requestID, "", relay.SubmittedTxInfo{
			Status:  relay.ErrorOnSubmit,
			Message: err.Error(),
		})

		return fmt.Errorf("could not submit proof for request id=%d: %w", requestID, err)
	}

	r.setTxStatus(requestID, hash, relay.SubmittedTxInfo{Status: relay.Submitted})

	err = r.submitter.WaitConfirmed(ctx, hash)
	switch {
	case err == nil:
		metrics.AddSuccessProof(time.Since(start).Seconds())
		r.setTxStatus(requestID, hash, relay.SubmittedTxInfo{Status: relay.Committed})
		r.logger.Info("proof for request submitted successfully",
			zap.Uint64("request_id", requestID), zap.String("hash", hash))
		return nil
	case errors.Is(err, relay.ErrTxRejected):
		metrics.AddFailedProof(time.Since(start).Seconds())
		r.setTxStatus(requestID, hash, relay.SubmittedTxInfo{
			Status:  relay.ErrorOnCommit,
			Message: err.Error(),
		})

		return fmt.Errorf("verify tx for request id=%d: %w", requestID, err)
	default:
		// The tx may still land; leave it pending and let the checker
		// resolve its final status.
		metrics.AddFailedProof(time.Since(start).Seconds())
		select {
		case submittedTxsTasksQueue <- relay.PendingSubmittedTxInfo{
			RequestID:       requestID,
			SubmittedTxHash: hash,
			SubmitTime:      time.Now(),
		}:
		case <-ctx.Done():
		}

		return fmt.Errorf("could not confirm verify tx %s for request id=%d: %w", hash, requestID, err)
	}
}

func (r *Relayer) setTxStatus(requestID uint64, hash string, txInfo relay.SubmittedTxInfo) {
	if err := r.storage.SetTxStatus(requestID, hash, txInfo); err != nil {
		r.logger.Error("failed to update tx status in storage",
			zap.Uint64("request_id", requestID), zap.String("hash", hash), zap.Error(err))
	}
}

func (r *Relayer) isWatchedAccount(m *relay.MessageRequestLogged) bool {
	return r.registry.IsEmpty() || r.registry.Contains(m.Account)
}
