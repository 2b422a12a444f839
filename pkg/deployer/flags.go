package deployer

import (
	"github.com/urfave/cli/v2"

	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
	"github.com/espressosystems/l1-deployer/pkg/deployer/wallet"
)

// EnvVarPrefix is prepended to the environment variable of every
// configuration flag. The predeployed address variables are exempt: their
// names are fixed by the .env format this tool reads and writes.
const EnvVarPrefix = "DEPLOYER"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	RPCURLFlag = &cli.StringFlag{
		Name:    "rpc-url",
		Usage:   "JSON-RPC endpoint of the L1 to deploy to.",
		Value:   "http://localhost:8545",
		EnvVars: prefixEnvVars("RPC_URL"),
	}
	OrchestratorURLFlag = &cli.StringFlag{
		Name:    "orchestrator-url",
		Usage:   "URL of the orchestrator supplying the light client genesis state.",
		Value:   "http://localhost:40001",
		EnvVars: prefixEnvVars("ORCHESTRATOR_URL"),
	}
	MnemonicFlag = &cli.StringFlag{
		Name:    "mnemonic",
		Usage:   "Mnemonic of the L1 wallet paying for the deployment.",
		Value:   wallet.TestMnemonic,
		EnvVars: prefixEnvVars("MNEMONIC"),
	}
	AccountIndexFlag = &cli.UintFlag{
		Name:    "account-index",
		Usage:   "Index of the funded account within the mnemonic's wallet.",
		Value:   0,
		EnvVars: prefixEnvVars("ACCOUNT_INDEX"),
	}
	OutfileFlag = &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Write deployment results to this .env file instead of stdout.",
		EnvVars: prefixEnvVars("OUT_PATH"),
	}
	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Lowest log level that will be output.",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
	}

	HotShotAddressFlag = &cli.StringFlag{
		Name:    "hotshot-address",
		Usage:   "Use an already-deployed HotShot.sol at this address.",
		EnvVars: []string{registry.HotShot.EnvVar()},
	}
	PlonkVerifierAddressFlag = &cli.StringFlag{
		Name:    "plonk-verifier-address",
		Usage:   "Use an already-deployed PlonkVerifier.sol at this address.",
		EnvVars: []string{registry.PlonkVerifier.EnvVar()},
	}
	StateUpdateVKAddressFlag = &cli.StringFlag{
		Name:    "light-client-state-update-vk-address",
		Usage:   "Use an already-deployed LightClientStateUpdateVK.sol at this address.",
		EnvVars: []string{registry.StateUpdateVK.EnvVar()},
	}
	LightClientAddressFlag = &cli.StringFlag{
		Name:    "light-client-address",
		Usage:   "Use an already-deployed LightClient.sol at this address.",
		EnvVars: []string{registry.LightClient.EnvVar()},
	}
	LightClientProxyAddressFlag = &cli.StringFlag{
		Name:    "light-client-proxy-address",
		Usage:   "Use an already-deployed LightClient.sol proxy at this address.",
		EnvVars: []string{registry.LightClientProxy.EnvVar()},
	}
)

// addressFlags maps each contract to the flag carrying its predeployed
// address.
var addressFlags = map[registry.Contract]*cli.StringFlag{
	registry.HotShot:          HotShotAddressFlag,
	registry.PlonkVerifier:    PlonkVerifierAddressFlag,
	registry.StateUpdateVK:    StateUpdateVKAddressFlag,
	registry.LightClient:      LightClientAddressFlag,
	registry.LightClientProxy: LightClientProxyAddressFlag,
}

var DeployFlags = []cli.Flag{
	RPCURLFlag,
	OrchestratorURLFlag,
	MnemonicFlag,
	AccountIndexFlag,
	OutfileFlag,
	LogLevelFlag,
	HotShotAddressFlag,
	PlonkVerifierAddressFlag,
	StateUpdateVKAddressFlag,
	LightClientAddressFlag,
	LightClientProxyAddressFlag,
}
