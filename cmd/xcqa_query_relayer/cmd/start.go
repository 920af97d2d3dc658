package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nlogger "github.com/neutron-org/neutron-logger"

	"github.com/xcqa/xcqa-query-relayer/internal/app"
	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/config"
	"github.com/xcqa/xcqa-query-relayer/internal/monitoring"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/webserver"
)

const (
	mainContext = "main"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the query relayer main app",
	Run: func(cmd *cobra.Command, args []string) {
		startRelayer()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func newLogRegistry() (*nlogger.Registry, error) {
	return nlogger.NewRegistry(
		mainContext,
		app.AppContext,
		app.SubscriberContext,
		app.RelayerContext,
		app.HomeChainClientContext,
		app.TargetChainClientContext,
		app.TxSenderContext,
		app.ProoferContext,
		app.TxSubmitCheckerContext,
		app.ClientContext,
		app.TrackerDispatcherContext,
		webserver.ServerContext,
		monitoring.MonitoringLoggerContext,
	)
}

func startRelayer() {
	logRegistry, err := newLogRegistry()
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("xcqa-query-relayer starts...")

	cfg, err := config.NewXcqaQueryRelayerConfig()
	if err != nil {
		logger.Fatal("cannot initialize relayer config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	// The storage has to be shared because of the LevelDB single process restriction.
	storage, err := app.NewDefaultStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create NewDefaultStorage", zap.Error(err))
	}
	defer func(storage relay.Storage) {
		if err := storage.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}(storage)

	http.Handle("/metrics", monitoring.NewPromWrapper(logRegistry, storage))
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.PrometheusPort), nil)
		if err != nil {
			logger.Fatal("failed to serve metrics", zap.Error(err))
		}
	}()
	logger.Info("metrics handler set up")

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := webserver.Run(ctx, logRegistry, storage, fmt.Sprintf(":%d", cfg.WebserverPort))
		if err != nil {
			logger.Error("WebServer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	deps, err := app.NewDefaultDependencyContainer(ctx, cfg, logRegistry)
	if err != nil {
		logger.Fatal("failed to build dependency container", zap.Error(err))
	}

	var (
		requestsTasksQueue     = make(chan *relay.MessageRequestLogged, cfg.RequestsTaskQueueCapacity)
		submittedTxsTasksQueue = make(chan relay.PendingSubmittedTxInfo)
	)

	subscriber, err := app.NewDefaultSubscriber(cfg, logRegistry, deps, []string{bridge.RequestLoggedEvent})
	if err != nil {
		logger.Fatal("failed to get NewDefaultSubscriber", zap.Error(err))
	}

	relayer, err := app.NewDefaultRelayer(logRegistry, storage, deps)
	if err != nil {
		logger.Fatal("failed to get NewDefaultRelayer", zap.Error(err))
	}

	txSubmitChecker, err := app.NewDefaultTxSubmitChecker(logRegistry, storage, deps)
	if err != nil {
		logger.Fatal("failed to get NewDefaultTxSubmitChecker", zap.Error(err))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := txSubmitChecker.Run(ctx, submittedTxsTasksQueue)
		if err != nil {
			logger.Error("TxSubmitChecker exited with an error", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		// The subscriber writes to the tasks queue.
		if err := subscriber.Subscribe(ctx, requestsTasksQueue, nil); err != nil {
			logger.Error("Subscriber exited with an error", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		// The relayer reads from the tasks queue.
		if err := relayer.Run(ctx, requestsTasksQueue, submittedTxsTasksQueue); err != nil {
			logger.Error("Relayer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		s := <-sigs
		logger.Info("Received termination signal, gracefully shutting down...",
			zap.String("signal", s.String()))
		cancel()
	}()

	wg.Wait()
}
