package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/submit"
)

// BridgeContract is the surface of the Bridge contract binding the client
// uses.
type BridgeContract interface {
	Address() common.Address
	GetTotal(opts *bind.CallOpts) (uint64, error)
	GetPending(opts *bind.CallOpts) (uint64, error)
	GetServed(opts *bind.CallOpts) (uint64, error)
	GetRequest(opts *bind.CallOpts, requestID uint64) (*relay.Request, error)
	Request(opts *bind.TransactOpts, account common.Address, key *big.Int, blockID uint64) (*types.Transaction, error)
	EventTopic(name string) common.Hash
	ParseRequestLogged(log types.Log) (*relay.MessageRequestLogged, error)
}

// TxSender signs and submits home chain transactions and waits for their
// receipts.
type TxSender interface {
	Send(ctx context.Context, fn submit.SendTxFunc) (*types.Transaction, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// Client submits read requests to the Bridge contract and waits for the
// relayer to serve them. It also exposes the contract's counters and stored
// requests for status queries.
type Client struct {
	contract BridgeContract
	sender   TxSender
	tracker  relay.Tracker
	logger   *zap.Logger

	// waitTimeout bounds how long WaitServed blocks per request. Zero
	// disables the bound, leaving only ctx in control.
	waitTimeout time.Duration
}

func NewClient(
	contract BridgeContract,
	sender TxSender,
	tracker relay.Tracker,
	waitTimeout time.Duration,
	logger *zap.Logger,
) *Client {
	return &Client{
		contract:    contract,
		sender:      sender,
		tracker:     tracker,
		waitTimeout: waitTimeout,
		logger:      logger,
	}
}

// SubmitRequest sends a request tx for account's storage slot key at the
// target chain height blockID, waits for the tx to be mined and returns the
// request id the contract assigned. The id comes from the RequestLogged
// event in the submission's own receipt, so concurrent submitters cannot be
// handed each other's ids.
func (c *Client) SubmitRequest(ctx context.Context, account common.Address, key *big.Int, blockID uint64) (uint64, error) {
	tx, err := c.sender.Send(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.contract.Request(opts, account, key, blockID)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to send request tx: %w", err)
	}

	receipt, err := c.sender.WaitForReceipt(ctx, tx.Hash())
	if err != nil {
		return 0, fmt.Errorf("failed to wait for request tx %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return 0, fmt.Errorf("request tx %s: %w", tx.Hash().Hex(), relay.ErrTxRejected)
	}

	requestID, err := c.requestIDFromReceipt(receipt)
	if err != nil {
		return 0, err
	}

	c.tracker.RecordSubmission(requestID)
	c.logger.Info("request submitted",
		zap.Uint64("request_id", requestID),
		zap.String("account", account.Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return requestID, nil
}

// WaitServed blocks until the request is served and returns its reply. The
// wait is bounded by the client's waitTimeout; hitting the bound fails with
// relay.ErrWaitTimeout while the request stays pending on chain.
func (c *Client) WaitServed(ctx context.Context, requestID uint64) ([]byte, error) {
	if c.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.waitTimeout)
		defer cancel()
	}

	return c.tracker.AwaitServed(ctx, requestID)
}

// Execute submits a request and waits for its reply. The request id is
// returned even when the wait fails, so the caller can query the request
// later.
func (c *Client) Execute(ctx context.Context, account common.Address, key *big.Int, blockID uint64) (uint64, []byte, error) {
	requestID, err := c.SubmitRequest(ctx, account, key, blockID)
	if err != nil {
		return 0, nil, err
	}

	reply, err := c.WaitServed(ctx, requestID)
	if err != nil {
		return requestID, nil, err
	}

	return requestID, reply, nil
}

// GetTotal returns the total number of submitted requests.
func (c *Client) GetTotal(ctx context.Context) (uint64, error) {
	return c.contract.GetTotal(&bind.CallOpts{Context: ctx})
}

// GetPending returns the number of requests awaiting a proof.
func (c *Client) GetPending(ctx context.Context) (uint64, error) {
	return c.contract.GetPending(&bind.CallOpts{Context: ctx})
}

// GetServed returns the number of requests served with a verified proof.
func (c *Client) GetServed(ctx context.Context) (uint64, error) {
	return c.contract.GetServed(&bind.CallOpts{Context: ctx})
}

// GetRequest returns the stored request with the given id.
func (c *Client) GetRequest(ctx context.Context, requestID uint64) (*relay.Request, error) {
	return c.contract.GetRequest(&bind.CallOpts{Context: ctx}, requestID)
}

// requestIDFromReceipt finds the RequestLogged event the Bridge contract
// emitted for this submission and extracts its request id.
func (c *Client) requestIDFromReceipt(receipt *types.Receipt) (uint64, error) {
	topic := c.contract.EventTopic(bridge.RequestLoggedEvent)
	for _, log := range receipt.Logs {
		if log.Address != c.contract.Address() || len(log.Topics) == 0 || log.Topics[0] != topic {
			continue
		}

		m, err := c.contract.ParseRequestLogged(*log)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s log of tx %s: %w",
				bridge.RequestLoggedEvent, receipt.TxHash.Hex(), err)
		}

		return m.RequestID, nil
	}

	return 0, errors.New("receipt carries no RequestLogged event")
}
