package broadcaster

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Broadcaster sends contract-creation transactions and waits for them to be
// mined. Implementations decide how transactions are signed.
type Broadcaster interface {
	// Deploy broadcasts a creation transaction for the given bytecode, with
	// any constructor arguments ABI-encoded per contractABI, and returns the
	// address of the deployed contract once the transaction is confirmed.
	Deploy(ctx context.Context, contractABI abi.ABI, bytecode []byte, args ...interface{}) (common.Address, error)
}
