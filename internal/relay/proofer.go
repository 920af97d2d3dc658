package relay

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Proofer obtains a storage value from the target chain together with the
// proof of its inclusion, shaped as the Bridge contract expects it.
type Proofer interface {
	// GetStorageProof reads account's storage slot key at blockID and
	// returns the state proof justifying the value. A proof response that
	// does not cover key fails with ErrProofConstruction.
	GetStorageProof(ctx context.Context, account common.Address, key *big.Int, blockID uint64) (*StateProof, error)
}
