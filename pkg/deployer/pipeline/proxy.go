package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

// DeployLightClientProxy deploys the ERC1967 proxy in front of the light
// client. The proxy is constructed with calldata that initializes the light
// client with the genesis state fetched from the orchestrator.
func DeployLightClientProxy(ctx context.Context, env *Env) (common.Address, error) {
	return env.Registry.Resolve(ctx, registry.LightClientProxy, func(ctx context.Context, _ *registry.Registry) (common.Address, error) {
		lightClient, err := DeployLightClient(ctx, env)
		if err != nil {
			return common.Address{}, err
		}

		genesisState, err := env.Genesis.Fetch(ctx)
		if err != nil {
			return common.Address{}, fmt.Errorf("fetching light client genesis: %w", err)
		}

		lcArt, err := artifacts.Load(artifacts.LightClient)
		if err != nil {
			return common.Address{}, err
		}
		// An interface mismatch here means the embedded artifacts are out of
		// sync with the contracts, not that the network misbehaved.
		data, err := lcArt.ABI.Parsed.Pack("initialize", *genesisState, uint32(math.MaxUint32))
		if err != nil {
			return common.Address{}, fmt.Errorf("encoding initialize call for %s: %w", artifacts.LightClient, err)
		}

		return deployArtifact(ctx, env, artifacts.ERC1967Proxy, lightClient, data)
	})
}
