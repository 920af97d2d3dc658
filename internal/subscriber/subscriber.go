package subscriber

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// EthClient is the capability subset of the home chain gateway the
// subscriber needs: the current head and log filtering.
type EthClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Config holds the subscriber's settings.
type Config struct {
	// PollInterval is the cadence of the log scan cycle.
	PollInterval time.Duration
	// WatchedEvents lists the Bridge event names to deliver
	// (bridge.RequestLoggedEvent, bridge.RequestServedEvent).
	WatchedEvents []string
}

// NewSubscriber creates a Subscriber ready to poll the Bridge contract's
// events on the home chain.
func NewSubscriber(cfg *Config, client EthClient, contract *bridge.Bridge, logger *zap.Logger) (*Subscriber, error) {
	if len(cfg.WatchedEvents) == 0 {
		return nil, fmt.Errorf("no watched events configured")
	}

	watched := make(map[string]struct{}, len(cfg.WatchedEvents))
	for _, name := range cfg.WatchedEvents {
		if name != bridge.RequestLoggedEvent && name != bridge.RequestServedEvent {
			return nil, fmt.Errorf("unknown Bridge event %q", name)
		}

		watched[name] = struct{}{}
	}

	return &Subscriber{
		client:   client,
		contract: contract,
		cfg:      cfg,
		watched:  watched,
		logger:   logger,
	}, nil
}

// Subscriber polls the home chain for Bridge contract events. The cursor
// starts at the chain head when Subscribe is called, so only events emitted
// from that point on are delivered; events emitted while no subscriber was
// running are not replayed.
type Subscriber struct {
	client   EthClient
	contract *bridge.Bridge
	cfg      *Config
	watched  map[string]struct{}
	logger   *zap.Logger

	// cursor is the next block to scan.
	cursor uint64
}

// Subscribe implements relay.Subscriber. Transport errors during a scan
// cycle are logged and retried on the next tick; the cursor only advances
// past blocks whose logs were delivered.
func (s *Subscriber) Subscribe(ctx context.Context, logged chan<- *relay.MessageRequestLogged, served chan<- *relay.MessageRequestServed) error {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain head: %w", err)
	}
	s.cursor = head + 1

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Context cancelled, shutting down Subscriber...")
			return nil
		case <-ticker.C:
			if err := s.poll(ctx, logged, served); err != nil {
				if ctx.Err() != nil {
					return nil
				}

				s.logger.Error("failed to poll events", zap.Error(err))
			}
		}
	}
}

func (s *Subscriber) poll(ctx context.Context, logged chan<- *relay.MessageRequestLogged, served chan<- *relay.MessageRequestServed) error {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain head: %w", err)
	}

	if head < s.cursor {
		return nil
	}

	logs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(s.cursor),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: []common.Address{s.contract.Address()},
		Topics:    [][]common.Hash{s.watchedTopics()},
	})
	if err != nil {
		return fmt.Errorf("failed to filter logs from=%d to=%d: %w", s.cursor, head, err)
	}

	// The gateway returns logs in block order; deliver them in that order.
	for _, log := range logs {
		if log.Removed {
			continue
		}

		if err := s.deliver(ctx, log, logged, served); err != nil {
			return err
		}
	}

	s.cursor = head + 1
	return nil
}

func (s *Subscriber) deliver(ctx context.Context, log types.Log, logged chan<- *relay.MessageRequestLogged, served chan<- *relay.MessageRequestServed) error {
	switch log.Topics[0] {
	case s.contract.EventTopic(bridge.RequestLoggedEvent):
		if logged == nil {
			return nil
		}

		m, err := s.contract.ParseRequestLogged(log)
		if err != nil {
			s.logger.Error("failed to parse RequestLogged event", zap.Error(err))
			return nil
		}

		select {
		case logged <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	case s.contract.EventTopic(bridge.RequestServedEvent):
		if served == nil {
			return nil
		}

		m, err := s.contract.ParseRequestServed(log)
		if err != nil {
			s.logger.Error("failed to parse RequestServed event", zap.Error(err))
			return nil
		}

		select {
		case served <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (s *Subscriber) watchedTopics() []common.Hash {
	topics := make([]common.Hash, 0, len(s.watched))
	for name := range s.watched {
		topics = append(topics, s.contract.EventTopic(name))
	}

	return topics
}
