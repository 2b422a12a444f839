package pipeline

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/espressosystems/l1-deployer/pkg/deployer/artifacts"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

// DeployHotShot deploys the sequencer contract. It has no dependencies.
func DeployHotShot(ctx context.Context, env *Env) (common.Address, error) {
	return env.Registry.ResolveTx(ctx, registry.HotShot, func(ctx context.Context) (common.Address, error) {
		return deployArtifact(ctx, env, artifacts.HotShot)
	})
}
