package subscriber_test

import (
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/subscriber"
	mock_subscriber "github.com/xcqa/xcqa-query-relayer/testutil/mocks/subscriber"
)

var (
	contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	requestAccount  = common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
)

func testLogger(t *testing.T) *zap.Logger {
	cfgLogger := zap.NewProductionConfig()
	logger, err := cfgLogger.Build()
	require.NoError(t, err)
	return logger
}

func testBridge(t *testing.T) *bridge.Bridge {
	contract, err := bridge.NewBridge(contractAddress, nil)
	require.NoError(t, err)
	return contract
}

func requestLoggedLog(t *testing.T, contract *bridge.Bridge, requestID uint64, blockNumber uint64) types.Log {
	parsed, err := abi.JSON(strings.NewReader(bridge.BridgeABI))
	require.NoError(t, err)

	data, err := parsed.Events[bridge.RequestLoggedEvent].Inputs.NonIndexed().Pack(
		requestAccount, big.NewInt(5), big.NewInt(100))
	require.NoError(t, err)

	return types.Log{
		Address:     contractAddress,
		Topics:      []common.Hash{contract.EventTopic(bridge.RequestLoggedEvent), common.BigToHash(new(big.Int).SetUint64(requestID))},
		Data:        data,
		BlockNumber: blockNumber,
	}
}

func requestServedLog(t *testing.T, contract *bridge.Bridge, requestID uint64, reply []byte, blockNumber uint64) types.Log {
	parsed, err := abi.JSON(strings.NewReader(bridge.BridgeABI))
	require.NoError(t, err)

	data, err := parsed.Events[bridge.RequestServedEvent].Inputs.NonIndexed().Pack(reply)
	require.NoError(t, err)

	return types.Log{
		Address:     contractAddress,
		Topics:      []common.Hash{contract.EventTopic(bridge.RequestServedEvent), common.BigToHash(new(big.Int).SetUint64(requestID))},
		Data:        data,
		BlockNumber: blockNumber,
	}
}

func TestNewSubscriberRejectsUnknownEvent(t *testing.T) {
	_, err := subscriber.NewSubscriber(&subscriber.Config{
		PollInterval:  time.Millisecond,
		WatchedEvents: []string{"NoSuchEvent"},
	}, nil, testBridge(t), testLogger(t))
	assert.Error(t, err)
}

func TestDoneShouldEndSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_subscriber.NewMockEthClient(ctrl)
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil).AnyTimes()

	s, err := subscriber.NewSubscriber(&subscriber.Config{
		PollInterval:  time.Millisecond,
		WatchedEvents: []string{bridge.RequestLoggedEvent},
	}, client, testBridge(t), testLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, s.Subscribe(ctx, make(chan *relay.MessageRequestLogged, 1), nil))
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not shut down")
	}
}

func TestSubscribeDeliversLoggedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := testBridge(t)
	client := mock_subscriber.NewMockEthClient(ctrl)

	// Head is 10 at subscription time, so scanning starts at block 11.
	first := client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil)
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(12), nil).After(first).AnyTimes()

	client.EXPECT().FilterLogs(gomock.Any(), ethereum.FilterQuery{
		FromBlock: big.NewInt(11),
		ToBlock:   big.NewInt(12),
		Addresses: []common.Address{contractAddress},
		Topics:    [][]common.Hash{{contract.EventTopic(bridge.RequestLoggedEvent)}},
	}).Return([]types.Log{
		requestLoggedLog(t, contract, 7, 12),
	}, nil)

	s, err := subscriber.NewSubscriber(&subscriber.Config{
		PollInterval:  time.Millisecond,
		WatchedEvents: []string{bridge.RequestLoggedEvent},
	}, client, contract, testLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	logged := make(chan *relay.MessageRequestLogged, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, s.Subscribe(ctx, logged, nil))
	}()

	select {
	case m := <-logged:
		assert.Equal(t, uint64(7), m.RequestID)
		assert.Equal(t, requestAccount, m.Account)
		assert.Equal(t, big.NewInt(5), m.Key)
		assert.Equal(t, uint64(100), m.BlockID)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()
	<-done
}

func TestSubscribeDeliversServedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contract := testBridge(t)
	client := mock_subscriber.NewMockEthClient(ctrl)

	first := client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(10), nil)
	client.EXPECT().BlockNumber(gomock.Any()).Return(uint64(11), nil).After(first).AnyTimes()

	removed := requestServedLog(t, contract, 3, []byte("stale"), 11)
	removed.Removed = true

	client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		removed,
		requestServedLog(t, contract, 7, []byte("reply"), 11),
	}, nil)

	s, err := subscriber.NewSubscriber(&subscriber.Config{
		PollInterval:  time.Millisecond,
		WatchedEvents: []string{bridge.RequestServedEvent},
	}, client, contract, testLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan *relay.MessageRequestServed, 2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, s.Subscribe(ctx, nil, served))
	}()

	select {
	case m := <-served:
		// The removed log must have been dropped.
		assert.Equal(t, uint64(7), m.RequestID)
		assert.Equal(t, []byte("reply"), m.Reply)
	case <-time.After(5 * time.Second):
		t.Fatal("event was not delivered")
	}

	cancel()
	<-done
	assert.Empty(t, served)
}
