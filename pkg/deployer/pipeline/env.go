// Package pipeline contains the per-contract deployment procedures. The
// dependency graph is expressed by each procedure resolving its dependencies
// through the registry before deploying itself; memoization in the registry
// makes redundant resolutions free, so no explicit ordering is needed beyond
// the call structure.
package pipeline

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
	"github.com/espressosystems/l1-deployer/pkg/deployer/broadcaster"
	"github.com/espressosystems/l1-deployer/pkg/deployer/genesis"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

// GenesisProvider supplies the light client genesis state.
type GenesisProvider interface {
	Fetch(ctx context.Context) (*genesis.State, error)
}

// Env carries the collaborators shared by all deployment stages.
type Env struct {
	Logger      log.Logger
	Registry    *registry.Registry
	Broadcaster broadcaster.Broadcaster
	Genesis     GenesisProvider
}

// deployArtifact broadcasts the embedded artifact's bytecode with the given
// constructor arguments.
func deployArtifact(ctx context.Context, env *Env, name string, args ...interface{}) (common.Address, error) {
	art, err := artifacts.Load(name)
	if err != nil {
		return common.Address{}, err
	}
	code, err := art.Bytecode.Bytes()
	if err != nil {
		return common.Address{}, fmt.Errorf("preparing bytecode of %s: %w", name, err)
	}
	return env.Broadcaster.Deploy(ctx, art.ABI.Parsed, code, args...)
}
