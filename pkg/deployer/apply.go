package deployer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/espressosystems/l1-deployer/pkg/deployer/broadcaster"
	"github.com/espressosystems/l1-deployer/pkg/deployer/genesis"
	"github.com/espressosystems/l1-deployer/pkg/deployer/pipeline"
	"github.com/espressosystems/l1-deployer/pkg/deployer/registry"
	"github.com/espressosystems/l1-deployer/pkg/deployer/wallet"
	"github.com/espressosystems/l1-deployer/pkg/ioutil"
)

// ApplyCLI is the action of the deploy command.
func ApplyCLI(cliCtx *cli.Context) error {
	lgr, err := newLogger(cliCtx.String(LogLevelFlag.Name))
	if err != nil {
		return err
	}

	cfg, err := NewConfig(cliCtx, lgr)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Apply(ctx, cfg)
}

// Apply deploys any contract whose address is not already known and writes
// the resulting address file. Contracts deployed before a later failure stay
// on chain; rerunning with their addresses supplied skips them.
func Apply(ctx context.Context, cfg *Config) error {
	if err := cfg.Check(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	lgr := cfg.Logger

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dialing L1 RPC %s: %w", cfg.RPCURL, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("querying chain ID: %w", err)
	}

	key, account, err := wallet.Derive(cfg.Mnemonic, cfg.AccountIndex)
	if err != nil {
		return err
	}
	lgr.Info("deploying from account", "address", account, "chain_id", chainID)

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return fmt.Errorf("building transactor: %w", err)
	}

	reg := registry.New(lgr, cfg.Predeployed)
	env := &pipeline.Env{
		Logger:      lgr,
		Registry:    reg,
		Broadcaster: broadcaster.NewKeyed(lgr, client, opts),
		Genesis:     genesis.NewClient(cfg.OrchestratorURL),
	}

	if _, err := pipeline.DeployHotShot(ctx, env); err != nil {
		return err
	}
	if _, err := pipeline.DeployLightClientProxy(ctx, env); err != nil {
		return err
	}

	return writeRecords(reg, cfg.Outfile)
}

func writeRecords(reg *registry.Registry, path string) error {
	w, err := ioutil.ToStdOutOrFile(path, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", path, err)
	}
	if err := reg.WriteEnv(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing deployment results to %s: %w", outputName(path), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func newLogger(level string) (log.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	color := isatty.IsTerminal(os.Stderr.Fd())
	return log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, color)), nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
