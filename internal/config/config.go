package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "RELAYER"

// HomeChainConfig describes the chain hosting the Bridge contract.
type HomeChainConfig struct {
	RPCAddr         string        `required:"true" split_words:"true"`
	ContractAddress string        `required:"true" split_words:"true"`
	SignerKey       string        `required:"true" split_words:"true"`
	Timeout         time.Duration `default:"10s"`
}

// TargetChainConfig describes the chain whose state gets proven.
type TargetChainConfig struct {
	RPCAddr  string        `required:"true" split_words:"true"`
	APIToken string        `split_words:"true"`
	Timeout  time.Duration `default:"10s"`
}

// XcqaQueryRelayerConfig is the config of the whole relayer, built from
// environment variables with the RELAYER prefix.
type XcqaQueryRelayerConfig struct {
	HomeChain   HomeChainConfig   `split_words:"true"`
	TargetChain TargetChainConfig `split_words:"true"`

	// WatchedAccounts limits relaying to requests reading these target
	// chain accounts. Empty means serve everything.
	WatchedAccounts []string `split_words:"true"`

	PollInterval time.Duration `split_words:"true" default:"2s"`
	StoragePath  string        `split_words:"true" default:"storage/leveldb"`

	// SubmitWaitTimeout bounds how long the client waits for a submitted
	// request to be served. Zero disables the bound.
	SubmitWaitTimeout time.Duration `split_words:"true" default:"10m"`

	RequestsTaskQueueCapacity int `split_words:"true" default:"10000"`

	PrometheusPort uint16 `split_words:"true" default:"9999"`
	WebserverPort  uint16 `split_words:"true" default:"9998"`
}

func NewXcqaQueryRelayerConfig() (XcqaQueryRelayerConfig, error) {
	config := XcqaQueryRelayerConfig{}
	if err := envconfig.Process(envPrefix, &config); err != nil {
		return config, fmt.Errorf("failed to init config: %w", err)
	}

	return config, nil
}
