package relay

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Subscriber provides a stream of Bridge contract events to be processed.
type Subscriber interface {
	// Subscribe polls the home chain for new Bridge events and pushes them
	// to the given channels until ctx is cancelled. A nil channel disables
	// delivery of that event kind.
	Subscribe(ctx context.Context, logged chan<- *MessageRequestLogged, served chan<- *MessageRequestServed) error
}

// MessageRequestLogged contains params of a RequestLogged Bridge event.
type MessageRequestLogged struct {
	// RequestID is the contract-assigned id of the request.
	RequestID uint64
	// Account is the target chain address whose storage is being read.
	Account common.Address
	// Key is the storage slot to read.
	Key *big.Int
	// BlockID is the target chain height the read is evaluated at.
	BlockID uint64
}

// MessageRequestServed contains params of a RequestServed Bridge event.
type MessageRequestServed struct {
	// RequestID is the contract-assigned id of the request.
	RequestID uint64
	// Reply is the verified storage value.
	Reply []byte
}
