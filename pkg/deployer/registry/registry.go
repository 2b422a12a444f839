package registry

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// DeployFunc deploys a contract and returns its address. It receives the
// registry so it can resolve its own dependencies first.
type DeployFunc func(ctx context.Context, reg *Registry) (common.Address, error)

// Registry caches the addresses of contracts that were predeployed or
// deployed during the current run. Each contract is recorded at most once;
// a recorded address never changes for the lifetime of the registry.
//
// Registry is not safe for concurrent use. Deployment is strictly
// sequential, so there is never more than one caller.
type Registry struct {
	lgr   log.Logger
	addrs map[Contract]common.Address
}

// Record is a single (contract, address) entry of the final output.
type Record struct {
	Contract Contract
	Address  common.Address
}

func New(lgr log.Logger, predeployed map[Contract]common.Address) *Registry {
	addrs := make(map[Contract]common.Address, len(All))
	for name, addr := range predeployed {
		addrs[name] = addr
	}
	return &Registry{
		lgr:   lgr,
		addrs: addrs,
	}
}

// Resolve returns the address of name, deploying it first if it is not known
// yet. The deploy function is only invoked on a miss; it may call back into
// the registry to resolve dependencies recursively, which makes any traversal
// order that resolves dependencies before using them correct. Nothing is
// recorded when deploy fails.
func (r *Registry) Resolve(ctx context.Context, name Contract, deploy DeployFunc) (common.Address, error) {
	if addr, ok := r.addrs[name]; ok {
		r.lgr.Info("skipping deployment, contract already deployed", "contract", name, "address", addr)
		return addr, nil
	}
	r.lgr.Info("deploying contract", "contract", name)
	addr, err := deploy(ctx, r)
	if err != nil {
		return common.Address{}, fmt.Errorf("deploying %s: %w", name, err)
	}
	r.addrs[name] = addr
	r.lgr.Info("deployed contract", "contract", name, "address", addr)
	return addr, nil
}

// ResolveTx is a shorthand for contracts whose deployment is a single
// transaction with no further preparation.
func (r *Registry) ResolveTx(ctx context.Context, name Contract, send func(ctx context.Context) (common.Address, error)) (common.Address, error) {
	return r.Resolve(ctx, name, func(ctx context.Context, _ *Registry) (common.Address, error) {
		return send(ctx)
	})
}

// Address returns the recorded address of name, if any.
func (r *Registry) Address(name Contract) (common.Address, bool) {
	addr, ok := r.addrs[name]
	return addr, ok
}

// Records returns all recorded entries in a fixed order.
func (r *Registry) Records() []Record {
	var recs []Record
	for _, name := range All {
		if addr, ok := r.addrs[name]; ok {
			recs = append(recs, Record{Contract: name, Address: addr})
		}
	}
	return recs
}

// WriteEnv writes the recorded addresses as one NAME=0xADDRESS line per
// contract, suitable for sourcing as a .env file.
func (r *Registry) WriteEnv(w io.Writer) error {
	for _, rec := range r.Records() {
		if _, err := fmt.Fprintf(w, "%s=0x%x\n", rec.Contract.EnvVar(), rec.Address); err != nil {
			return err
		}
	}
	return nil
}
