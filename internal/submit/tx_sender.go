package submit

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const defaultReceiptWaitTime = 500 * time.Millisecond

// SendTxFunc builds and sends a contract transaction with the prepared
// transact opts.
type SendTxFunc func(*bind.TransactOpts) (*types.Transaction, error)

// EthClient is the capability subset of the home chain gateway the sender
// needs besides the bound contract backend.
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// TxSender signs and submits transactions from a single account and waits
// for their receipts. The signing account must be used by exactly one
// process; Send serializes submissions so the account's nonces stay
// ordered.
type TxSender struct {
	client  EthClient
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	logger  *zap.Logger

	receiptWaitTime time.Duration
	mutex           sync.Mutex
}

// NewTxSender derives the signing account from the hex-encoded private key
// and fetches the chain id used for replay-protected signatures.
func NewTxSender(ctx context.Context, client EthClient, signerKey string, logger *zap.Logger) (*TxSender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(signerKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse signer key: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	return &TxSender{
		client:          client,
		key:             key,
		address:         crypto.PubkeyToAddress(key.PublicKey),
		chainID:         chainID,
		logger:          logger,
		receiptWaitTime: defaultReceiptWaitTime,
	}, nil
}

// Address returns the signing account's address.
func (s *TxSender) Address() common.Address {
	return s.address
}

// Send prepares signed transact opts and runs fn under the sender's lock.
func (s *TxSender) Send(ctx context.Context, fn SendTxFunc) (*types.Transaction, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transact opts: %w", err)
	}
	opts.Context = ctx

	tx, err := fn(opts)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("transaction sent",
		zap.String("hash", tx.Hash().Hex()), zap.Uint64("nonce", tx.Nonce()))

	return tx, nil
}

// WaitForReceipt polls the gateway until the transaction is mined or ctx
// ends. A receipt that is simply not there yet keeps the poll going; any
// other gateway failure aborts the wait.
func (s *TxSender) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}

		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to get receipt for tx %s: %w", hash.Hex(), err)
		}

		select {
		case <-time.After(s.receiptWaitTime):
		case <-ctx.Done():
			return nil, fmt.Errorf("context ended waiting for tx %s: %w", hash.Hex(), ctx.Err())
		}
	}
}
