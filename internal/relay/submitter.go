package relay

import "context"

// Submitter knows how to submit a state proof to the Bridge contract.
type Submitter interface {
	// SubmitProof sends a verify transaction for requestID and returns its
	// hash as soon as the transaction is accepted by the node.
	SubmitProof(ctx context.Context, requestID uint64, proof *StateProof) (string, error)

	// WaitConfirmed blocks until the transaction with the given hash is
	// mined. A reverted transaction fails with ErrTxRejected.
	WaitConfirmed(ctx context.Context, hash string) error
}
