package submit_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/submit"
	mock_submit "github.com/xcqa/xcqa-query-relayer/testutil/mocks/submit"
)

// Throwaway key, the first account of the default hardhat mnemonic.
const (
	testSignerKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testSignerAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func testLogger(t *testing.T) *zap.Logger {
	cfgLogger := zap.NewProductionConfig()
	logger, err := cfgLogger.Build()
	require.NoError(t, err)
	return logger
}

func setupSender(t *testing.T, client *mock_submit.MockEthClient) *submit.TxSender {
	client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1337), nil)

	sender, err := submit.NewTxSender(context.Background(), client, testSignerKey, testLogger(t))
	require.NoError(t, err)
	return sender
}

func testTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)})
}

func TestNewTxSenderDerivesAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := setupSender(t, mock_submit.NewMockEthClient(ctrl))
	assert.Equal(t, common.HexToAddress(testSignerAddress), sender.Address())
}

func TestNewTxSenderRejectsMalformedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := submit.NewTxSender(context.Background(), mock_submit.NewMockEthClient(ctrl), "not-a-key", testLogger(t))
	assert.Error(t, err)
}

func TestSendPreparesSignedOpts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := setupSender(t, mock_submit.NewMockEthClient(ctrl))

	tx := testTx()
	sent, err := sender.Send(context.Background(), func(opts *bind.TransactOpts) (*types.Transaction, error) {
		assert.Equal(t, common.HexToAddress(testSignerAddress), opts.From)
		assert.NotNil(t, opts.Signer)
		assert.NotNil(t, opts.Context)
		return tx, nil
	})
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), sent.Hash())
}

func TestWaitForReceiptPollsThroughNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_submit.NewMockEthClient(ctrl)
	sender := setupSender(t, client)

	tx := testTx()
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}

	// The node has not indexed the tx yet on the first poll.
	first := client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, ethereum.NotFound)
	client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(receipt, nil).After(first)

	got, err := sender.WaitForReceipt(context.Background(), tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, receipt, got)
}

func TestWaitForReceiptAbortsOnTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_submit.NewMockEthClient(ctrl)
	sender := setupSender(t, client)

	tx := testTx()
	client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, errors.New("connection refused"))

	_, err := sender.WaitForReceipt(context.Background(), tx.Hash())
	assert.Error(t, err)
}

func TestWaitForReceiptEndsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_submit.NewMockEthClient(ctrl)
	sender := setupSender(t, client)

	tx := testTx()
	client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).Return(nil, ethereum.NotFound).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sender.WaitForReceipt(ctx, tx.Hash())
	assert.Error(t, err)
}

// fakeVerifyContract builds verify txs without a node.
type fakeVerifyContract struct {
	tx  *types.Transaction
	err error
}

func (f *fakeVerifyContract) Verify(opts *bind.TransactOpts, requestID uint64, proof *relay.StateProof) (*types.Transaction, error) {
	return f.tx, f.err
}

func TestSubmitProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := setupSender(t, mock_submit.NewMockEthClient(ctrl))

	tx := testTx()
	submitter := submit.NewSubmitterImpl(&fakeVerifyContract{tx: tx}, sender, testLogger(t))

	hash, err := submitter.SubmitProof(context.Background(), 1, &relay.StateProof{})
	require.NoError(t, err)
	assert.Equal(t, tx.Hash().Hex(), hash)
}

func TestSubmitProofSendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := setupSender(t, mock_submit.NewMockEthClient(ctrl))

	submitter := submit.NewSubmitterImpl(&fakeVerifyContract{err: errors.New("nonce too low")}, sender, testLogger(t))

	_, err := submitter.SubmitProof(context.Background(), 1, &relay.StateProof{})
	assert.Error(t, err)
}

func TestWaitConfirmedRevertedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_submit.NewMockEthClient(ctrl)
	sender := setupSender(t, client)

	tx := testTx()
	client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash()}, nil)

	submitter := submit.NewSubmitterImpl(&fakeVerifyContract{tx: tx}, sender, testLogger(t))

	err := submitter.WaitConfirmed(context.Background(), tx.Hash().Hex())
	assert.ErrorIs(t, err, relay.ErrTxRejected)
}

func TestWaitConfirmedCommittedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_submit.NewMockEthClient(ctrl)
	sender := setupSender(t, client)

	tx := testTx()
	client.EXPECT().TransactionReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil)

	submitter := submit.NewSubmitterImpl(&fakeVerifyContract{tx: tx}, sender, testLogger(t))

	assert.NoError(t, submitter.WaitConfirmed(context.Background(), tx.Hash().Hex()))
}
