package proofer_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/proofer"
	mock_proofer "github.com/xcqa/xcqa-query-relayer/testutil/mocks/proofer"
)

func TestGetStorageProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgLogger := zap.NewProductionConfig()
	logger, err := cfgLogger.Build()
	require.NoError(t, err)

	var (
		account = common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
		key     = big.NewInt(5)
		blockID = uint64(1337)
		header  = &types.Header{Root: common.HexToHash("0xaa")}
	)

	client := mock_proofer.NewMockProofClient(ctrl)
	client.EXPECT().
		HeaderByNumber(gomock.Any(), big.NewInt(1337)).
		Return(header, nil)

	// The storage key is requested in full 32-byte hex form.
	paddedKey := "0x0000000000000000000000000000000000000000000000000000000000000005"
	client.EXPECT().
		GetProof(gomock.Any(), account, []string{paddedKey}, big.NewInt(1337)).
		Return(&gethclient.AccountResult{
			Address:     account,
			StorageHash: common.HexToHash("0xbb"),
			StorageProof: []gethclient.StorageResult{
				{Key: paddedKey, Value: big.NewInt(99), Proof: []string{"0x0199"}},
			},
		}, nil)

	p := proofer.NewProofer(client, logger)

	proof, err := p.GetStorageProof(context.Background(), account, key, blockID)
	require.NoError(t, err)

	assert.Equal(t, [32]byte(header.Root), proof.StateRoot)
	assert.Equal(t, account, proof.Account)
	assert.Equal(t, big.NewInt(99).Bytes(), proof.StorageValue)
}
