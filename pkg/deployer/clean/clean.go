package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/deployer/pipeline"
	"github.com/roothash-pay/nft-forge/pkg/service"
	svclog "github.com/roothash-pay/nft-forge/pkg/service/log"
)

const EnvVarPrefix = "NFT_FORGE"

var (
	WorkdirFlag = &cli.StringFlag{
		Name:    "workdir",
		Usage:   "Directory storing the generated project.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "WORKDIR"),
		Value:   "nft-project",
	}
	AllFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Also remove installed node modules and generated sources.",
	}
)

var Commands = []*cli.Command{
	{
		Name:   "artifacts",
		Usage:  "Removes compiler output and the deployed-address file. The mint log and credential file are never removed.",
		Flags:  []cli.Flag{WorkdirFlag, AllFlag},
		Action: ArtifactsCLI,
	},
}

// artifactPaths are always removed. The mint log is deliberately not here:
// it is append-only across runs.
var artifactPaths = []string{
	"artifacts",
	"cache",
	pipeline.AddressFilename,
}

// allPaths are removed with --all, returning the workdir to a pre-scaffold
// layout while keeping intent, state, credential, and mint log.
var allPaths = []string{
	"node_modules",
	"package.json",
	"package-lock.json",
	"contracts",
	"scripts",
	pipeline.ConfigFilename,
}

func ArtifactsCLI(cliCtx *cli.Context) error {
	lgr := svclog.NewLogger(os.Stderr, svclog.ReadCLIConfig(cliCtx))
	workdir := cliCtx.String(WorkdirFlag.Name)

	paths := artifactPaths
	if cliCtx.Bool(AllFlag.Name) {
		paths = append(append([]string{}, artifactPaths...), allPaths...)
	}
	for _, rel := range paths {
		p := filepath.Join(workdir, rel)
		if err := os.RemoveAll(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", rel, err)
		}
		lgr.Info("removed", "path", rel)
	}
	return nil
}
