package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"
	"github.com/ethereum/go-ethereum/rpc"
	nlogger "github.com/neutron-org/neutron-logger"

	"github.com/xcqa/xcqa-query-relayer/internal/bridge"
	"github.com/xcqa/xcqa-query-relayer/internal/config"
	"github.com/xcqa/xcqa-query-relayer/internal/proofer"
	"github.com/xcqa/xcqa-query-relayer/internal/registry"
	"github.com/xcqa/xcqa-query-relayer/internal/relay"
	"github.com/xcqa/xcqa-query-relayer/internal/submit"
)

// DependencyContainer holds the clients and services shared between the
// relayer's parts: the home and target chain gateways, the Bridge contract
// binding, the tx sender, the proofer and the proof submitter.
type DependencyContainer struct {
	homeClient   *ethclient.Client
	targetClient *targetChainGateway
	bridge       *bridge.Bridge
	txSender     *submit.TxSender
	submitter    relay.Submitter
	proofer      relay.Proofer
	registry     *registry.Registry
}

func NewDefaultDependencyContainer(ctx context.Context,
	cfg config.XcqaQueryRelayerConfig,
	logRegistry *nlogger.Registry) (*DependencyContainer, error) {
	homeClient, err := ethclient.DialContext(ctx, cfg.HomeChain.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("could not initialize home chain client: %w", err)
	}

	targetClient, err := newTargetChainGateway(ctx, cfg.TargetChain)
	if err != nil {
		return nil, fmt.Errorf("could not initialize target chain client: %w", err)
	}

	bridgeContract, err := bridge.NewBridge(common.HexToAddress(cfg.HomeChain.ContractAddress), homeClient)
	if err != nil {
		return nil, fmt.Errorf("cannot bind Bridge contract: %w", err)
	}

	txSender, err := submit.NewTxSender(ctx,
		homeClient,
		cfg.HomeChain.SignerKey,
		logRegistry.Get(TxSenderContext))
	if err != nil {
		return nil, fmt.Errorf("cannot create tx sender: %w", err)
	}

	proofSubmitter := submit.NewSubmitterImpl(bridgeContract, txSender, logRegistry.Get(TxSenderContext))
	proofFetcher := proofer.NewProofer(targetClient, logRegistry.Get(ProoferContext))

	return &DependencyContainer{
		homeClient:   homeClient,
		targetClient: targetClient,
		bridge:       bridgeContract,
		txSender:     txSender,
		submitter:    proofSubmitter,
		proofer:      proofFetcher,
		registry:     registry.New(&registry.RegistryConfig{Accounts: cfg.WatchedAccounts}),
	}, nil
}

func (c *DependencyContainer) GetHomeClient() *ethclient.Client {
	return c.homeClient
}

func (c *DependencyContainer) GetBridge() *bridge.Bridge {
	return c.bridge
}

func (c *DependencyContainer) GetTxSender() *submit.TxSender {
	return c.txSender
}

func (c *DependencyContainer) GetSubmitter() relay.Submitter {
	return c.submitter
}

func (c *DependencyContainer) GetProofer() relay.Proofer {
	return c.proofer
}

func (c *DependencyContainer) GetRegistry() *registry.Registry {
	return c.registry
}

// targetChainGateway joins the generic and the geth-specific RPC surfaces of
// the target chain node behind the proofer's client interface.
type targetChainGateway struct {
	eth  *ethclient.Client
	geth *gethclient.Client
}

func newTargetChainGateway(ctx context.Context, cfg config.TargetChainConfig) (*targetChainGateway, error) {
	opts := []rpc.ClientOption{}
	if cfg.APIToken != "" {
		opts = append(opts, rpc.WithHeader("Authorization", "Bearer "+cfg.APIToken))
	}

	rpcClient, err := rpc.DialOptions(ctx, cfg.RPCAddr, opts...)
	if err != nil {
		return nil, err
	}

	return &targetChainGateway{
		eth:  ethclient.NewClient(rpcClient),
		geth: gethclient.New(rpcClient),
	}, nil
}

func (g *targetChainGateway) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return g.eth.HeaderByNumber(ctx, number)
}

func (g *targetChainGateway) GetProof(ctx context.Context, account common.Address, keys []string, blockNumber *big.Int) (*gethclient.AccountResult, error) {
	return g.geth.GetProof(ctx, account, keys, blockNumber)
}
