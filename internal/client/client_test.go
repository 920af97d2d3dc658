package client_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/client"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/tracker"
	mock_client "github.com/xcqa/xcqa-query-relayer/testutil/mocks/client"
	mock_relay "github.com/xcqa/xcqa-query-relayer/testutil/mocks/relay"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	requestAccount  = common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	loggedTopic     = common.HexToHash("0x0badc0de0badc0de0badc0de0badc0de0badc0de0badc0de0badc0de0badc0de")
)

func testLogger(t *testing.T) *zap.Logger {
	cfgLogger := zap.NewProductionConfig()
	logger, err := cfgLogger.Build()
	require.NoError(t, err)
	return logger
}

func testTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)})
}

// successfulReceipt carries a foreign log before the Bridge's own
// RequestLogged entry.
func successfulReceipt(tx *types.Transaction, requestID uint64) *types.Receipt {
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: tx.Hash(),
		Logs: []*types.Log{
			{
				Address: common.HexToAddress("0x0000000000000000000000000000000000000001"),
				Topics:  []common.Hash{loggedTopic},
			},
			{
				Address: contractAddress,
				Topics:  []common.Hash{loggedTopic, common.BigToHash(new(big.Int).SetUint64(requestID))},
			},
		},
	}
}

func setupContract(ctrl *gomock.Controller, tx *types.Transaction) *mock_client.MockBridgeContract {
	contract := mock_client.NewMockBridgeContract(ctrl)
	contract.EXPECT().Address().Return(contractAddress).AnyTimes()
	contract.EXPECT().EventTopic("RequestLogged").Return(loggedTopic).AnyTimes()
	contract.EXPECT().Request(gomock.Any(), requestAccount, big.NewInt(5), uint64(100)).Return(tx, nil).AnyTimes()
	return contract
}

func TestSubmitRequestDerivesIDFromReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := testTx()
	contract := setupContract(ctrl, tx)
	contract.EXPECT().ParseRequestLogged(gomock.Any()).
		DoAndReturn(func(log types.Log) (*relay.MessageRequestLogged, error) {
			return &relay.MessageRequestLogged{RequestID: 7}, nil
		})

	sender := mock_client.NewMockTxSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tx, nil)
	sender.EXPECT().WaitForReceipt(gomock.Any(), tx.Hash()).Return(successfulReceipt(tx, 7), nil)

	requestsTracker := mock_relay.NewMockTracker(ctrl)
	requestsTracker.EXPECT().RecordSubmission(uint64(7))

	c := client.NewClient(contract, sender, requestsTracker, 0, testLogger(t))

	requestID, err := c.SubmitRequest(context.Background(), requestAccount, big.NewInt(5), uint64(100))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), requestID)
}

func TestSubmitRequestRejectedTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := testTx()
	contract := setupContract(ctrl, tx)

	sender := mock_client.NewMockTxSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tx, nil)
	sender.EXPECT().WaitForReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash()}, nil)

	c := client.NewClient(contract, sender, mock_relay.NewMockTracker(ctrl), 0, testLogger(t))

	_, err := c.SubmitRequest(context.Background(), requestAccount, big.NewInt(5), uint64(100))
	assert.ErrorIs(t, err, relay.ErrTxRejected)
}

func TestSubmitRequestReceiptWithoutEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := testTx()
	contract := setupContract(ctrl, tx)

	sender := mock_client.NewMockTxSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tx, nil)
	sender.EXPECT().WaitForReceipt(gomock.Any(), tx.Hash()).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil)

	c := client.NewClient(contract, sender, mock_relay.NewMockTracker(ctrl), 0, testLogger(t))

	_, err := c.SubmitRequest(context.Background(), requestAccount, big.NewInt(5), uint64(100))
	assert.Error(t, err)
}

func TestExecuteServed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := testTx()
	contract := setupContract(ctrl, tx)
	contract.EXPECT().ParseRequestLogged(gomock.Any()).
		Return(&relay.MessageRequestLogged{RequestID: 7}, nil)

	sender := mock_client.NewMockTxSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tx, nil)
	sender.EXPECT().WaitForReceipt(gomock.Any(), tx.Hash()).Return(successfulReceipt(tx, 7), nil)

	requestsTracker := tracker.NewTracker()
	c := client.NewClient(contract, sender, requestsTracker, time.Minute, testLogger(t))

	go func() {
		// The relay serves the request shortly after submission.
		time.Sleep(10 * time.Millisecond)
		requestsTracker.RecordServed(7, []byte("reply"))
	}()

	requestID, reply, err := c.Execute(context.Background(), requestAccount, big.NewInt(5), uint64(100))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), requestID)
	assert.Equal(t, []byte("reply"), reply)
}

func TestExecuteWaitTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := testTx()
	contract := setupContract(ctrl, tx)
	contract.EXPECT().ParseRequestLogged(gomock.Any()).
		Return(&relay.MessageRequestLogged{RequestID: 7}, nil)

	sender := mock_client.NewMockTxSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(tx, nil)
	sender.EXPECT().WaitForReceipt(gomock.Any(), tx.Hash()).Return(successfulReceipt(tx, 7), nil)

	requestsTracker := tracker.NewTracker()
	c := client.NewClient(contract, sender, requestsTracker, 50*time.Millisecond, testLogger(t))

	// Nobody serves the request, the bounded wait must expire and still hand
	// back the request id.
	requestID, _, err := c.Execute(context.Background(), requestAccount, big.NewInt(5), uint64(100))
	assert.ErrorIs(t, err, relay.ErrWaitTimeout)
	assert.Equal(t, uint64(7), requestID)
	assert.True(t, requestsTracker.IsPending(7))
}
