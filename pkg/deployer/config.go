package deployer

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
)

// Config holds everything a deployment run needs.
type Config struct {
	RPCURL          string
	OrchestratorURL string
	Mnemonic        string
	AccountIndex    uint32
	Outfile         string

	// Predeployed seeds the registry with contracts that should not be
	// deployed again.
	Predeployed map[registry.Contract]common.Address

	Logger log.Logger
}

func NewConfig(cliCtx *cli.Context, lgr log.Logger) (*Config, error) {
	predeployed := make(map[registry.Contract]common.Address)
	for contract, flag := range addressFlags {
		if !cliCtx.IsSet(flag.Name) {
			continue
		}
		raw := cliCtx.String(flag.Name)
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("invalid address %q for %s", raw, contract)
		}
		predeployed[contract] = common.HexToAddress(raw)
	}

	return &Config{
		RPCURL:          cliCtx.String(RPCURLFlag.Name),
		OrchestratorURL: cliCtx.String(OrchestratorURLFlag.Name),
		Mnemonic:        cliCtx.String(MnemonicFlag.Name),
		AccountIndex:    uint32(cliCtx.Uint(AccountIndexFlag.Name)),
		Outfile:         cliCtx.String(OutfileFlag.Name),
		Predeployed:     predeployed,
		Logger:          lgr,
	}, nil
}

func (c *Config) Check() error {
	if c.RPCURL == "" {
		return errors.New("rpc url must be specified")
	}
	if c.OrchestratorURL == "" {
		return errors.New("orchestrator url must be specified")
	}
	if c.Mnemonic == "" {
		return errors.New("mnemonic must be specified")
	}
	if c.Logger == nil {
		return errors.New("logger must be specified")
	}
	return nil
}
