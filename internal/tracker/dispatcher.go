package tracker

import (
	"context"

	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// Dispatcher demultiplexes incoming RequestServed events to the tracker's
// waiters by request id. One dispatcher serves all concurrent waiters; no
// per-wait event subscription exists.
type Dispatcher struct {
	tracker relay.Tracker
	logger  *zap.Logger
}

func NewDispatcher(tracker relay.Tracker, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		tracker: tracker,
		logger:  logger,
	}
}

// Run consumes served events until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context, served <-chan *relay.MessageRequestServed) error {
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Context cancelled, shutting down Dispatcher...")
			return nil
		case m := <-served:
			d.tracker.RecordServed(m.RequestID, m.Reply)
			d.logger.Debug("dispatched served event", zap.Uint64("request_id", m.RequestID))
		}
	}
}
