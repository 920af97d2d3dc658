package proofer

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

func sampleResult(key string, value *big.Int) *gethclient.AccountResult {
	return &gethclient.AccountResult{
		Address:      common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F"),
		AccountProof: []string{"0xdead", "0xbeef"},
		StorageHash:  common.HexToHash("0x02"),
		StorageProof: []gethclient.StorageResult{
			{Key: key, Value: value, Proof: []string{"0xc0ffee"}},
		},
	}
}

func TestBuildStateProof(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}
	result := sampleResult("0x1", big.NewInt(42))

	proof, err := BuildStateProof(header, result, big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, [32]byte(header.Root), proof.StateRoot)
	assert.Equal(t, result.Address, proof.Account)
	assert.Equal(t, [][]byte{{0xde, 0xad}, {0xbe, 0xef}}, proof.AccountProof)
	assert.Equal(t, [32]byte(result.StorageHash), proof.StorageHash)
	assert.Equal(t, big.NewInt(42).Bytes(), proof.StorageValue)
	assert.Equal(t, [][]byte{{0xc0, 0xff, 0xee}}, proof.StorageProof)
}

func TestBuildStateProofPadsStorageKey(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}
	result := sampleResult("0x1", big.NewInt(42))

	proof, err := BuildStateProof(header, result, big.NewInt(1))
	require.NoError(t, err)

	// The key must be exactly 32 bytes, left-padded with zeros.
	expected := [32]byte{}
	expected[31] = 0x01
	assert.Equal(t, expected, proof.StorageKey)
}

func TestBuildStateProofKeyWidthMismatch(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}

	// The gateway returns the key zero-padded to the full word while the
	// request carried the short form.
	result := sampleResult("0x0000000000000000000000000000000000000000000000000000000000000001", big.NewInt(7))

	proof, err := BuildStateProof(header, result, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7).Bytes(), proof.StorageValue)
}

func TestBuildStateProofMissingEntry(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}
	result := sampleResult("0x1", big.NewInt(42))

	_, err := BuildStateProof(header, result, big.NewInt(2))
	assert.ErrorIs(t, err, relay.ErrProofConstruction)
}

func TestBuildStateProofNilValue(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}
	result := sampleResult("0x1", nil)

	_, err := BuildStateProof(header, result, big.NewInt(1))
	assert.ErrorIs(t, err, relay.ErrProofConstruction)
}

func TestBuildStateProofMalformedProofNode(t *testing.T) {
	header := &types.Header{Root: common.HexToHash("0x01")}
	result := sampleResult("0x1", big.NewInt(42))
	result.AccountProof = []string{"not-hex"}

	_, err := BuildStateProof(header, result, big.NewInt(1))
	assert.ErrorIs(t, err, relay.ErrProofConstruction)
}
