package broadcaster

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
)

// Keyed broadcasts deployment transactions signed with a local key through
// an ethclient connection.
type Keyed struct {
	lgr    log.Logger
	client *ethclient.Client
	opts   *bind.TransactOpts
}

var _ Broadcaster = (*Keyed)(nil)

func NewKeyed(lgr log.Logger, client *ethclient.Client, opts *bind.TransactOpts) *Keyed {
	return &Keyed{
		lgr:    lgr,
		client: client,
		opts:   opts,
	}
}

func (b *Keyed) Deploy(ctx context.Context, contractABI abi.ABI, bytecode []byte, args ...interface{}) (common.Address, error) {
	opts := *b.opts
	opts.Context = ctx

	_, tx, _, err := bind.DeployContract(&opts, contractABI, bytecode, b.client, args...)
	if err != nil {
		return common.Address{}, fmt.Errorf("sending deployment transaction: %w", err)
	}
	b.lgr.Debug("deployment transaction sent", "tx", tx.Hash(), "nonce", tx.Nonce())

	addr, err := bind.WaitDeployed(ctx, b.client, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("waiting for deployment transaction %s: %w", tx.Hash(), err)
	}
	return addr, nil
}
