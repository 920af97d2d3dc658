package relay

import "errors"

// Error taxonomy of the relay protocol. Gateway transport errors are passed
// through wrapped; the sentinels below mark outcomes callers handle
// specially.
var (
	// ErrRequestNotFound is returned by the read path for an unknown
	// requestId. It is a normal user-visible outcome, not a system fault.
	ErrRequestNotFound = errors.New("request not found")

	// ErrProofConstruction marks a proof response that cannot justify the
	// requested storage key. The affected event is dropped and the request
	// stays Pending.
	ErrProofConstruction = errors.New("proof construction failed")

	// ErrTxRejected marks an on-chain revert of a submitted transaction,
	// e.g. proof verification failure or double processing.
	ErrTxRejected = errors.New("transaction rejected on-chain")

	// ErrWaitTimeout is returned when a bounded wait for a RequestServed
	// event expires. The requestId stays valid and can be polled via the
	// read path.
	ErrWaitTimeout = errors.New("timed out waiting for request to be served")
)
