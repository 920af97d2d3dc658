package relay

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Request is the Bridge contract's view of a single cross-chain read. It is
// returned by the contract's getRequest method and never mutated locally:
// the contract assigns the ID, records the submission time and flips Served
// exactly once when a valid proof arrives.
type Request struct {
	ID          uint64
	Account     common.Address
	Key         *big.Int
	BlockID     uint64
	SubmittedAt time.Time
	Served      bool
	Reply       []byte
}

// StateProof is the payload submitted to the Bridge contract's verify method
// to justify a reply. Field order and types mirror the verify() ABI tuple,
// so values of this struct can be passed to the bound contract directly.
//
// AccountProof proves the account's inclusion under StateRoot, StorageProof
// proves StorageValue's inclusion under StorageHash. StorageKey is the
// requested slot left-padded to 32 bytes regardless of its numeric width.
type StateProof struct {
	StateRoot    [32]byte
	Account      common.Address
	AccountProof [][]byte
	StorageHash  [32]byte
	StorageKey   [32]byte
	StorageValue []byte
	StorageProof [][]byte
}
