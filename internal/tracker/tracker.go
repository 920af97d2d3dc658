package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// Tracker implements relay.Tracker. Requests progress Pending -> Served and
// never back; each id gets a single-resolution signal channel that is
// closed when the reply arrives, so any number of waiters on the same id
// wake up and read the reply, while waiters on other ids are untouched.
type Tracker struct {
	mu      sync.Mutex
	pending map[uint64]struct{}
	replies map[uint64][]byte
	signals map[uint64]chan struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		pending: make(map[uint64]struct{}),
		replies: make(map[uint64][]byte),
		signals: make(map[uint64]chan struct{}),
	}
}

// RecordSubmission enters requestID in the Pending state. Recording an id
// that is already served is a no-op.
func (t *Tracker) RecordSubmission(requestID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, served := t.replies[requestID]; served {
		return
	}

	t.pending[requestID] = struct{}{}
}

// RecordServed transitions requestID to Served and wakes its waiters. The
// transition happens at most once: later calls for the same id are ignored.
func (t *Tracker) RecordServed(requestID uint64, reply []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, served := t.replies[requestID]; served {
		return
	}

	t.replies[requestID] = reply
	delete(t.pending, requestID)

	if signal, ok := t.signals[requestID]; ok {
		close(signal)
		delete(t.signals, requestID)
	}
}

// AwaitServed blocks until requestID is served and returns its reply. A
// cancelled or expired ctx fails the wait with relay.ErrWaitTimeout, the
// request id intact in the error message so the caller can poll the read
// path later.
func (t *Tracker) AwaitServed(ctx context.Context, requestID uint64) ([]byte, error) {
	t.mu.Lock()
	if reply, served := t.replies[requestID]; served {
		t.mu.Unlock()
		return reply, nil
	}

	signal, ok := t.signals[requestID]
	if !ok {
		signal = make(chan struct{})
		t.signals[requestID] = signal
	}
	t.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("request id=%d: %w", requestID, relay.ErrWaitTimeout)
	case <-signal:
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.replies[requestID], nil
}

// IsPending reports whether requestID was submitted and not yet served.
func (t *Tracker) IsPending(requestID uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.pending[requestID]
	return ok
}
