package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xcqa/xcqa-query-relayer/internal/app"
	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/config"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/tracker"
)

// requestCmd represents the request command
var requestCmd = &cobra.Command{
	Use:   "request <account> <key> <blockId>",
	Args:  cobra.ExactArgs(3),
	Short: "Submit a storage read request to the Bridge contract and wait for the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("invalid account address: %s", args[0])
		}
		account := common.HexToAddress(args[0])

		key, ok := new(big.Int).SetString(args[1], 0)
		if !ok {
			return fmt.Errorf("invalid storage key: %s", args[1])
		}

		blockID, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block id: %w", err)
		}

		return submitRequest(account, key, blockID)
	},
}

func init() {
	RootCmd.AddCommand(requestCmd)
}

func submitRequest(account common.Address, key *big.Int, blockID uint64) error {
	logRegistry, err := newLogRegistry()
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)

	cfg, err := config.NewXcqaQueryRelayerConfig()
	if err != nil {
		return fmt.Errorf("cannot initialize relayer config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		<-sigs
		cancel()
	}()

	deps, err := app.NewDefaultDependencyContainer(ctx, cfg, logRegistry)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	requestsTracker := tracker.NewTracker()

	// The served events subscription must be live before the request tx is
	// sent, otherwise the reply could slip past the waiter.
	subscriber, err := app.NewDefaultSubscriber(cfg, logRegistry, deps, []string{bridge.RequestServedEvent})
	if err != nil {
		return fmt.Errorf("failed to get NewDefaultSubscriber: %w", err)
	}

	servedQueue := make(chan *relay.MessageRequestServed)
	go func() {
		if err := subscriber.Subscribe(ctx, nil, servedQueue); err != nil {
			logger.Error("Subscriber exited with an error", zap.Error(err))
			cancel()
		}
	}()

	dispatcher := tracker.NewDispatcher(requestsTracker, logRegistry.Get(app.TrackerDispatcherContext))
	go func() {
		if err := dispatcher.Run(ctx, servedQueue); err != nil {
			logger.Error("Dispatcher exited with an error", zap.Error(err))
			cancel()
		}
	}()

	client, err := app.NewDefaultClient(cfg, logRegistry, requestsTracker, deps)
	if err != nil {
		return fmt.Errorf("failed to get NewDefaultClient: %w", err)
	}

	requestID, reply, err := client.Execute(ctx, account, key, blockID)
	if errors.Is(err, relay.ErrWaitTimeout) {
		fmt.Printf("Request id=%d is submitted but not served yet; query it later with the status command\n", requestID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}

	fmt.Printf("Request id=%d served\nReply: %s\n", requestID, hexutil.Encode(reply))
	return nil
}
