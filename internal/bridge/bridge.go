package bridge

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/xcqa/xcqa-query-relayer/internal/relay"
)

// BridgeABI is the interface description of the Bridge contract consumed by
// the relayer and the client. The verify() proof tuple field order is the
// canonical state proof layout (see relay.StateProof).
const BridgeABI = `[
	{"type":"function","name":"getTotal","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getPending","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getServed","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getRequest","stateMutability":"view","inputs":[{"name":"requestId","type":"uint256"}],"outputs":[{"name":"account","type":"address"},{"name":"key","type":"uint256"},{"name":"blockId","type":"uint256"},{"name":"submittedAt","type":"uint256"},{"name":"reserved1","type":"uint256"},{"name":"reserved2","type":"uint256"},{"name":"served","type":"bool"},{"name":"reply","type":"bytes"}]},
	{"type":"function","name":"request","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"key","type":"uint256"},{"name":"blockId","type":"uint256"},{"name":"reserved1","type":"uint256"},{"name":"reserved2","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"verify","stateMutability":"nonpayable","inputs":[{"name":"requestId","type":"uint256"},{"name":"proof","type":"tuple","components":[{"name":"stateRoot","type":"bytes32"},{"name":"account","type":"address"},{"name":"accountProof","type":"bytes[]"},{"name":"storageHash","type":"bytes32"},{"name":"storageKey","type":"bytes32"},{"name":"storageValue","type":"bytes"},{"name":"storageProof","type":"bytes[]"}]}],"outputs":[]},
	{"type":"event","name":"RequestLogged","anonymous":false,"inputs":[{"name":"requestId","type":"uint256","indexed":true},{"name":"account","type":"address","indexed":false},{"name":"key","type":"uint256","indexed":false},{"name":"blockId","type":"uint256","indexed":false}]},
	{"type":"event","name":"RequestServed","anonymous":false,"inputs":[{"name":"requestId","type":"uint256","indexed":true},{"name":"reply","type":"bytes","indexed":false}]}
]`

// Event names emitted by the Bridge contract.
const (
	RequestLoggedEvent = "RequestLogged"
	RequestServedEvent = "RequestServed"
)

// Bridge wraps the deployed Bridge contract on the home chain.
type Bridge struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewBridge binds the Bridge contract at address to the given backend.
func NewBridge(address common.Address, backend bind.ContractBackend) (*Bridge, error) {
	parsed, err := abi.JSON(strings.NewReader(BridgeABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Bridge ABI: %w", err)
	}

	return &Bridge{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func (b *Bridge) Address() common.Address {
	return b.address
}

// GetTotal returns the total number of submitted requests.
func (b *Bridge) GetTotal(opts *bind.CallOpts) (uint64, error) {
	return b.callUint(opts, "getTotal")
}

// GetPending returns the number of requests awaiting a proof.
func (b *Bridge) GetPending(opts *bind.CallOpts) (uint64, error) {
	return b.callUint(opts, "getPending")
}

// GetServed returns the number of requests served with a verified proof.
func (b *Bridge) GetServed(opts *bind.CallOpts) (uint64, error) {
	return b.callUint(opts, "getServed")
}

func (b *Bridge) callUint(opts *bind.CallOpts, method string) (uint64, error) {
	var out []interface{}
	if err := b.contract.Call(opts, &out, method); err != nil {
		return 0, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return out[0].(*big.Int).Uint64(), nil
}

// GetRequest returns the stored request with the given id. An id the
// contract does not know fails with relay.ErrRequestNotFound; transport
// failures are passed through as-is.
func (b *Bridge) GetRequest(opts *bind.CallOpts, requestID uint64) (*relay.Request, error) {
	var out []interface{}
	err := b.contract.Call(opts, &out, "getRequest", new(big.Int).SetUint64(requestID))
	if err != nil {
		if isRevert(err) {
			return nil, fmt.Errorf("request id=%d: %w", requestID, relay.ErrRequestNotFound)
		}

		return nil, fmt.Errorf("failed to call getRequest: %w", err)
	}

	return &relay.Request{
		ID:          requestID,
		Account:     out[0].(common.Address),
		Key:         out[1].(*big.Int),
		BlockID:     out[2].(*big.Int).Uint64(),
		SubmittedAt: time.Unix(out[3].(*big.Int).Int64(), 0),
		Served:      out[6].(bool),
		Reply:       out[7].([]byte),
	}, nil
}

// Request submits a new read request for account's storage slot key at the
// target chain height blockID.
func (b *Bridge) Request(opts *bind.TransactOpts, account common.Address, key *big.Int, blockID uint64) (*types.Transaction, error) {
	return b.contract.Transact(opts, "request",
		account, key, new(big.Int).SetUint64(blockID), big.NewInt(0), big.NewInt(0))
}

// Verify submits the state proof serving the request with the given id.
func (b *Bridge) Verify(opts *bind.TransactOpts, requestID uint64, proof *relay.StateProof) (*types.Transaction, error) {
	return b.contract.Transact(opts, "verify", new(big.Int).SetUint64(requestID), *proof)
}

// EventTopic returns the topic hash of the named Bridge event.
func (b *Bridge) EventTopic(name string) common.Hash {
	return b.abi.Events[name].ID
}

// ParseRequestLogged decodes a RequestLogged log entry.
func (b *Bridge) ParseRequestLogged(log types.Log) (*relay.MessageRequestLogged, error) {
	requestID, err := b.parseRequestID(RequestLoggedEvent, log)
	if err != nil {
		return nil, err
	}

	vals, err := b.abi.Events[RequestLoggedEvent].Inputs.NonIndexed().Unpack(log.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", RequestLoggedEvent, err)
	}

	return &relay.MessageRequestLogged{
		RequestID: requestID,
		Account:   vals[0].(common.Address),
		Key:       vals[1].(*big.Int),
		BlockID:   vals[2].(*big.Int).Uint64(),
	}, nil
}

// ParseRequestServed decodes a RequestServed log entry.
func (b *Bridge) ParseRequestServed(log types.Log) (*relay.MessageRequestServed, error) {
	requestID, err := b.parseRequestID(RequestServedEvent, log)
	if err != nil {
		return nil, err
	}

	vals, err := b.abi.Events[RequestServedEvent].Inputs.NonIndexed().Unpack(log.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s data: %w", RequestServedEvent, err)
	}

	return &relay.MessageRequestServed{
		RequestID: requestID,
		Reply:     vals[0].([]byte),
	}, nil
}

// parseRequestID extracts the indexed requestId topic of an event log.
func (b *Bridge) parseRequestID(event string, log types.Log) (uint64, error) {
	if len(log.Topics) != 2 || log.Topics[0] != b.abi.Events[event].ID {
		return 0, fmt.Errorf("log is not a %s event", event)
	}

	return new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(), nil
}

// isRevert reports whether err is an execution revert rather than a
// transport failure. Reverts carry JSON-RPC error data.
func isRevert(err error) bool {
	var dataErr rpc.DataError
	return errors.As(err, &dataErr)
}
