package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/config"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [requestId]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Show the Bridge contract's request counters or a single stored request",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewXcqaQueryRelayerConfig()
		if err != nil {
			return fmt.Errorf("cannot initialize relayer config: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HomeChain.Timeout)
		defer cancel()

		homeClient, err := ethclient.DialContext(ctx, cfg.HomeChain.RPCAddr)
		if err != nil {
			return fmt.Errorf("could not initialize home chain client: %w", err)
		}
		defer homeClient.Close()

		contract, err := bridge.NewBridge(common.HexToAddress(cfg.HomeChain.ContractAddress), homeClient)
		if err != nil {
			return fmt.Errorf("cannot bind Bridge contract: %w", err)
		}

		if len(args) == 0 {
			return printCounters(ctx, contract)
		}

		requestID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid request id: %w", err)
		}

		return printRequest(ctx, contract, requestID)
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func printCounters(ctx context.Context, contract *bridge.Bridge) error {
	opts := &bind.CallOpts{Context: ctx}

	total, err := contract.GetTotal(opts)
	if err != nil {
		return fmt.Errorf("failed to get total requests: %w", err)
	}

	pending, err := contract.GetPending(opts)
	if err != nil {
		return fmt.Errorf("failed to get pending requests: %w", err)
	}

	served, err := contract.GetServed(opts)
	if err != nil {
		return fmt.Errorf("failed to get served requests: %w", err)
	}

	fmt.Printf("Total requests: %d\nPending: %d\nServed: %d\n", total, pending, served)
	return nil
}

func printRequest(ctx context.Context, contract *bridge.Bridge, requestID uint64) error {
	request, err := contract.GetRequest(&bind.CallOpts{Context: ctx}, requestID)
	if errors.Is(err, relay.ErrRequestNotFound) {
		fmt.Printf("Request id=%d is not known to the Bridge contract\n", requestID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get request: %w", err)
	}

	fmt.Printf("Request id=%d\n", request.ID)
	fmt.Printf("Account: %s\n", request.Account.Hex())
	fmt.Printf("Key: %s\n", request.Key.String())
	fmt.Printf("Block id: %d\n", request.BlockID)
	fmt.Printf("Submitted at: %s\n", request.SubmittedAt.Format(time.RFC3339))
	if request.Served {
		fmt.Printf("Served: true\nReply: %s\n", hexutil.Encode(request.Reply))
	} else {
		fmt.Println("Served: false")
	}

	return nil
}
