package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/espressosystems/l1-deployer/pkg/deployer"
)

// NewApp creates and configures the CLI application.
func NewApp(versionWithMeta string) *cli.App {
	app := cli.NewApp()
	app.Version = versionWithMeta
	app.Name = "l1-deployer"
	app.Usage = "Deploys the contracts needed to run the sequencer to an L1."
	app.Description = "Deployments are incremental: pass the addresses of already-deployed " +
		"contracts via flags or the corresponding *_ADDRESS environment variables and they " +
		"will be reused instead of redeployed. The resulting addresses are written as a .env file."
	app.Commands = []*cli.Command{
		{
			Name:   "deploy",
			Usage:  "deploys any missing contracts and writes the address file",
			Flags:  deployer.DeployFlags,
			Action: deployer.ApplyCLI,
		},
	}
	return app
}
