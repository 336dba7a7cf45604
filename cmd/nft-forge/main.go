package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/deployer"
	"github.com/roothash-pay/nft-forge/pkg/deployer/clean"
	"github.com/roothash-pay/nft-forge/pkg/deployer/inspect"
	"github.com/roothash-pay/nft-forge/pkg/deployer/version"
	"github.com/roothash-pay/nft-forge/pkg/service"
	"github.com/roothash-pay/nft-forge/pkg/service/cliapp"
)

var (
	GitCommit = ""
	GitDate   = ""
)

// VersionWithMeta holds the textual version string including the metadata.
var VersionWithMeta = service.FormatVersion(version.Version, GitCommit, GitDate, version.Meta)

func main() {
	app := cli.NewApp()
	app.Version = VersionWithMeta
	app.Name = "nft-forge"
	app.Usage = "Tool to bootstrap, deploy, and mint an ERC-721 project."
	app.Flags = cliapp.ProtectFlags(deployer.GlobalFlags)
	app.Commands = []*cli.Command{
		{
			Name:   "init",
			Usage:  "initializes a project intent and state file",
			Flags:  cliapp.ProtectFlags(append(deployer.InitFlags, deployer.GlobalFlags...)),
			Action: deployer.InitCLI(),
		},
		{
			Name:   "apply",
			Usage:  "applies the intent: scaffolds, compiles, deploys, and mints",
			Flags:  cliapp.ProtectFlags(append(deployer.ApplyFlags, deployer.GlobalFlags...)),
			Action: deployer.ApplyCLI(),
		},
		{
			Name:        "inspect",
			Usage:       "inspects the state of a bootstrapped project",
			Subcommands: inspect.Commands,
		},
		{
			Name:        "clean",
			Usage:       "cleans up generated artifacts",
			Subcommands: clean.Commands,
		},
	}
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	err := app.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}
