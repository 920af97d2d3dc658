package app

import (
	"fmt"

	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/client"
	"github.com/xcqa/xcqa-query-relayer/internal/config"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/relayer"
	"github.com/xcqa/xcqa-query-relayer/internal/storage"
	relaysubscriber "github.com/xcqa/xcqa-query-relayer/internal/subscriber"
	"github.com/xcqa/xcqa-query-relayer/internal/txsubmitchecker"
)

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext               = "app"
	SubscriberContext        = "subscriber"
	RelayerContext           = "relayer"
	HomeChainClientContext   = "home_chain_client"
	TargetChainClientContext = "target_chain_client"
	TxSenderContext          = "tx_sender"
	ProoferContext           = "proofer"
	TxSubmitCheckerContext   = "tx_submit_checker"
	ClientContext            = "client"
	TrackerDispatcherContext = "tracker_dispatcher"
)

// NewDefaultSubscriber returns a subscriber that watches the Bridge events
// named in watchedEvents.
func NewDefaultSubscriber(
	cfg config.XcqaQueryRelayerConfig,
	logRegistry *nlogger.Registry,
	deps *DependencyContainer,
	watchedEvents []string,
) (relay.Subscriber, error) {
	subscriber, err := relaysubscriber.NewSubscriber(
		&relaysubscriber.Config{
			PollInterval:  cfg.PollInterval,
			WatchedEvents: watchedEvents,
		},
		deps.GetHomeClient(),
		deps.GetBridge(),
		logRegistry.Get(SubscriberContext),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create a NewSubscriber: %w", err)
	}

	return subscriber, nil
}

func NewDefaultTxSubmitChecker(logRegistry *nlogger.Registry, storage relay.Storage,
	deps *DependencyContainer) (relay.TxSubmitChecker, error) {
	return txsubmitchecker.NewTxSubmitChecker(
		storage,
		deps.GetHomeClient(),
		logRegistry.Get(TxSubmitCheckerContext),
	), nil
}

// NewDefaultRelayer returns a relayer built with cfg.
func NewDefaultRelayer(
	logRegistry *nlogger.Registry,
	storage relay.Storage,
	deps *DependencyContainer,
) (*relayer.Relayer, error) {
	return relayer.NewRelayer(
		deps.GetProofer(),
		deps.GetSubmitter(),
		storage,
		deps.GetRegistry(),
		logRegistry.Get(RelayerContext),
	), nil
}

// NewDefaultClient returns a Bridge client that submits requests and waits
// for their replies via tracker.
func NewDefaultClient(
	cfg config.XcqaQueryRelayerConfig,
	logRegistry *nlogger.Registry,
	tracker relay.Tracker,
	deps *DependencyContainer,
) (*client.Client, error) {
	return client.NewClient(
		deps.GetBridge(),
		deps.GetTxSender(),
		tracker,
		cfg.SubmitWaitTimeout,
		logRegistry.Get(ClientContext),
	), nil
}

func NewDefaultStorage(cfg config.XcqaQueryRelayerConfig, logger *zap.Logger) (relay.Storage, error) {
	leveldbStorage, err := storage.NewLevelDBStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create NewLevelDBStorage: %w", err)
	}

	return leveldbStorage, nil
}
