package relay

import "context"

// Tracker models the one-way Pending -> Served lifecycle of requests and
// lets callers block until a specific request is served. Transitions for
// one requestId never unblock waiters registered for another.
type Tracker interface {
	// RecordSubmission enters requestID in the Pending state.
	RecordSubmission(requestID uint64)
	// RecordServed transitions requestID to Served with the given reply.
	// Recording the same id again is a no-op: the first reply wins.
	RecordServed(requestID uint64, reply []byte)
	// AwaitServed blocks until requestID is served and returns its reply.
	// Cancellation of ctx fails the wait with ErrWaitTimeout.
	AwaitServed(ctx context.Context, requestID uint64) ([]byte, error)
}
