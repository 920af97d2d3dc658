package relay

import "context"

// TxSubmitChecker runs in background and resolves the final status of
// submitted verification txs whose receipt the relayer did not observe.
type TxSubmitChecker interface {
	Run(ctx context.Context, submittedTxsTasksQueue <-chan PendingSubmittedTxInfo) error
}
