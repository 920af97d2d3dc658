package registry

import "github.com/ethereum/go-ethereum/common"

// RegistryConfig represents the config structure for the Registry.
type RegistryConfig struct {
	Accounts []string
}

// New instantiates a new *Registry based on the cfg. Configured addresses
// are normalized, so mixed-case hex input matches event payloads.
func New(cfg *RegistryConfig) *Registry {
	r := &Registry{
		accounts: make(map[common.Address]struct{}, len(cfg.Accounts)),
	}
	for _, account := range cfg.Accounts {
		r.accounts[common.HexToAddress(account)] = struct{}{}
	}
	return r
}

// Registry is the relayer's watch list. It contains target chain accounts,
// and a non-empty registry makes the relayer serve only requests that read
// these accounts' storage.
type Registry struct {
	accounts map[common.Address]struct{}
}

// IsEmpty returns true if the registry accounts list is empty.
func (r *Registry) IsEmpty() bool {
	return len(r.accounts) == 0
}

// Contains returns true if the account is in the registry.
func (r *Registry) Contains(account common.Address) bool {
	_, ex := r.accounts[account]
	return ex
}

func (r *Registry) GetAccounts() []string {
	var out []string
	for account := range r.accounts {
		out = append(out, account.Hex())
	}

	return out
}
