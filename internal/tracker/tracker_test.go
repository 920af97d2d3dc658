package tracker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/tracker"
)

func TestAwaitAlreadyServed(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)
	tr.RecordServed(1, []byte("reply"))

	reply, err := tr.AwaitServed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("reply"), reply)
	assert.False(t, tr.IsPending(1))
}

func TestAwaitWakesOnServe(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)

	done := make(chan struct{})
	var reply []byte
	var err error
	go func() {
		defer close(done)
		reply, err = tr.AwaitServed(context.Background(), 1)
	}()

	tr.RecordServed(1, []byte("reply"))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("waiter did not wake up")
	}

	require.NoError(t, err)
	assert.Equal(t, []byte("reply"), reply)
}

// Serving requests out of submission order must wake exactly the waiters of
// the served ids.
func TestWaiterIsolation(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)
	tr.RecordSubmission(2)
	tr.RecordSubmission(3)

	var wg sync.WaitGroup
	replies := make([][]byte, 4)
	for _, id := range []uint64{1, 2, 3} {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			reply, err := tr.AwaitServed(context.Background(), id)
			assert.NoError(t, err)
			replies[id] = reply
		}(id)
	}

	// Reverse order on purpose.
	tr.RecordServed(3, []byte("third"))
	tr.RecordServed(2, []byte("second"))
	tr.RecordServed(1, []byte("first"))
	wg.Wait()

	assert.Equal(t, []byte("first"), replies[1])
	assert.Equal(t, []byte("second"), replies[2])
	assert.Equal(t, []byte("third"), replies[3])
}

func TestAwaitTimeout(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := tr.AwaitServed(ctx, 1)
	assert.ErrorIs(t, err, relay.ErrWaitTimeout)

	// The request stays pending, a later serve still resolves it.
	assert.True(t, tr.IsPending(1))
	tr.RecordServed(1, []byte("late"))

	reply, err := tr.AwaitServed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("late"), reply)
}

func TestServedIsFinal(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)
	tr.RecordServed(1, []byte("first"))

	// Duplicate serve events and late submissions must not change the reply.
	tr.RecordServed(1, []byte("second"))
	tr.RecordSubmission(1)

	reply, err := tr.AwaitServed(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), reply)
	assert.False(t, tr.IsPending(1))
}

func TestMultipleWaitersSameRequest(t *testing.T) {
	tr := tracker.NewTracker()
	tr.RecordSubmission(1)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := tr.AwaitServed(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, []byte("reply"), reply)
		}()
	}

	tr.RecordServed(1, []byte("reply"))
	wg.Wait()
}
