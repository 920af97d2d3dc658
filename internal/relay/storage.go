package relay

import "time"

// SubmittedTxStatus is the status of a verification tx submitted for a
// request.
type SubmittedTxStatus string

const (
	// Submitted means the tx was accepted by the node but its receipt has
	// not been seen yet.
	Submitted SubmittedTxStatus = "Submitted"
	// Committed means the tx was mined successfully.
	Committed SubmittedTxStatus = "Committed"
	// ErrorOnSubmit means the node rejected the tx outright.
	ErrorOnSubmit SubmittedTxStatus = "ErrorOnSubmit"
	// ErrorOnCommit means the tx was mined but reverted.
	ErrorOnCommit SubmittedTxStatus = "ErrorOnCommit"
)

// SubmittedTxInfo is the stored status of a single verification tx.
type SubmittedTxInfo struct {
	Status  SubmittedTxStatus `json:"status"`
	Message string            `json:"message,omitempty"`
}

// PendingSubmittedTxInfo describes a verification tx whose receipt is still
// outstanding.
type PendingSubmittedTxInfo struct {
	RequestID       uint64    `json:"request_id"`
	SubmittedTxHash string    `json:"submitted_tx_hash"`
	SubmitTime      time.Time `json:"submit_time"`
}

// UnsuccessfulTxInfo describes a verification tx that failed either on
// submit or on commit.
type UnsuccessfulTxInfo struct {
	RequestID       uint64            `json:"request_id"`
	SubmittedTxHash string            `json:"submitted_tx_hash"`
	SubmitTime      time.Time         `json:"submit_time"`
	Type            SubmittedTxStatus `json:"type"`
	Message         string            `json:"message"`
}

// Storage is the relayer's local bookkeeping: which requests already have a
// verification tx (idempotency across duplicate events and restarts) and
// what happened to every tx we sent.
type Storage interface {
	// IsRequestProcessed reports whether a verification tx has ever been
	// recorded for requestID.
	IsRequestProcessed(requestID uint64) (bool, error)
	// SetTxStatus records the status of the verification tx with the given
	// hash for requestID, maintaining the pending and unsuccessful queues.
	SetTxStatus(requestID uint64, hash string, txInfo SubmittedTxInfo) error
	// GetAllPendingTxs returns every tx recorded as Submitted whose final
	// status is unknown.
	GetAllPendingTxs() ([]*PendingSubmittedTxInfo, error)
	// GetAllUnsuccessfulTxs returns every tx that ended in an error status.
	GetAllUnsuccessfulTxs() ([]*UnsuccessfulTxInfo, error)
	Close() error
}
