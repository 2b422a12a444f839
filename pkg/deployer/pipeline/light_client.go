package pipeline

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
	"github.com/espressosystems/l1-deployer/pkg/deployer/linker"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

// DeployLightClient deploys the light client implementation. Its bytecode
// links against the PlonkVerifier and LightClientStateUpdateVK libraries, so
// both are resolved first and the linked bytecode is deployed raw, without a
// constructor call. Initialization happens through the proxy.
func DeployLightClient(ctx context.Context, env *Env) (common.Address, error) {
	return env.Registry.Resolve(ctx, registry.LightClient, func(ctx context.Context, reg *registry.Registry) (common.Address, error) {
		verifier, err := reg.ResolveTx(ctx, registry.PlonkVerifier, func(ctx context.Context) (common.Address, error) {
			return deployArtifact(ctx, env, artifacts.PlonkVerifier)
		})
		if err != nil {
			return common.Address{}, err
		}
		vk, err := reg.ResolveTx(ctx, registry.StateUpdateVK, func(ctx context.Context) (common.Address, error) {
			return deployArtifact(ctx, env, artifacts.LightClientStateUpdateVK)
		})
		if err != nil {
			return common.Address{}, err
		}

		art, err := artifacts.Load(artifacts.LightClient)
		if err != nil {
			return common.Address{}, err
		}
		code, err := linker.Link(art.Bytecode, map[string]common.Address{
			artifacts.PlonkVerifierLib:            verifier,
			artifacts.LightClientStateUpdateVKLib: vk,
		})
		if err != nil {
			return common.Address{}, fmt.Errorf("linking %s: %w", artifacts.LightClient, err)
		}

		return env.Broadcaster.Deploy(ctx, art.ABI.Parsed, code)
	})
}
