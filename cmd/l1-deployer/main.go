package main

import (
	"fmt"
	"os"

	"github.com/espressosystems/l1-deployer/pkg/cli"
	"github.com/espressosystems/l1-deployer/pkg/deployer/version"
)

var (
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp(version.WithMeta(GitCommit, GitDate))
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}
