package proofer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// BuildStateProof turns a target chain block header and an eth_getProof
// response into the canonical proof payload of the Bridge contract. The
// response must contain a storage proof entry for key; the storage key is
// left-padded to exactly 32 bytes regardless of its numeric width.
func BuildStateProof(header *types.Header, result *gethclient.AccountResult, key *big.Int) (*relay.StateProof, error) {
	entry, err := findStorageEntry(result.StorageProof, key)
	if err != nil {
		return nil, err
	}

	if entry.Value == nil {
		return nil, fmt.Errorf("%w: storage proof entry for key %s carries no value",
			relay.ErrProofConstruction, key.String())
	}

	accountProof, err := decodeProofNodes(result.AccountProof)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed account proof: %s", relay.ErrProofConstruction, err)
	}

	storageProof, err := decodeProofNodes(entry.Proof)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed storage proof: %s", relay.ErrProofConstruction, err)
	}

	return &relay.StateProof{
		StateRoot:    header.Root,
		Account:      result.Address,
		AccountProof: accountProof,
		StorageHash:  result.StorageHash,
		StorageKey:   common.BigToHash(key),
		StorageValue: entry.Value.Bytes(),
		StorageProof: storageProof,
	}, nil
}

// findStorageEntry locates the proof entry for key. Gateways are free to
// return the key in any hex width, so entries are compared numerically.
func findStorageEntry(entries []gethclient.StorageResult, key *big.Int) (*gethclient.StorageResult, error) {
	for i := range entries {
		entryKey, ok := new(big.Int).SetString(strings.TrimPrefix(entries[i].Key, "0x"), 16)
		if ok && entryKey.Cmp(key) == 0 {
			return &entries[i], nil
		}
	}

	return nil, fmt.Errorf("%w: no storage proof entry for key %s", relay.ErrProofConstruction, key.String())
}

func decodeProofNodes(nodes []string) ([][]byte, error) {
	decoded := make([][]byte, 0, len(nodes))
	for _, node := range nodes {
		raw, err := hexutil.Decode(node)
		if err != nil {
			return nil, fmt.Errorf("failed to decode trie node %q: %w", node, err)
		}

		decoded = append(decoded, raw)
	}

	return decoded, nil
}
