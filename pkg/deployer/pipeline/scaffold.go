package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
)

// npm packages installed into the scaffolded project.
var (
	npmDevPackages = []string{
		"hardhat",
		"@nomicfoundation/hardhat-toolbox",
	}
	npmPackages = []string{
		"@openzeppelin/contracts",
		"dotenv",
		"@oasisprotocol/sapphire-hardhat",
	}
)

// placeholderFiles are the sample artifacts the scaffolding tool leaves
// behind, removed by the cleanup stage.
var placeholderFiles = []string{
	"contracts/Lock.sol",
	"test/Lock.js",
	"ignition/modules/Lock.js",
}

// ScaffoldProject initializes the npm package, installs the hardhat
// toolchain and contract dependencies, and creates the standard project
// layout.
func ScaffoldProject(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageScaffoldProject)
	lgr.Info("scaffolding hardhat project", "workdir", env.Workdir)

	if err := env.Runner.Run(ctx, env.Workdir, "npm", "init", "-y"); err != nil {
		return fmt.Errorf("failed to init npm package: %w", err)
	}
	devArgs := append([]string{"install", "--save-dev"}, npmDevPackages...)
	if err := env.Runner.Run(ctx, env.Workdir, "npm", devArgs...); err != nil {
		return fmt.Errorf("failed to install dev dependencies: %w", err)
	}
	args := append([]string{"install"}, npmPackages...)
	if err := env.Runner.Run(ctx, env.Workdir, "npm", args...); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}

	for _, dir := range []string{"contracts", "scripts"} {
		if err := os.MkdirAll(filepath.Join(env.Workdir, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create %s dir: %w", dir, err)
		}
	}
	return nil
}

// CleanupScaffold removes the placeholder artifacts the scaffolding step
// generates. Missing placeholders are not an error; a re-run has already
// removed them.
func CleanupScaffold(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageCleanupScaffold)

	for _, rel := range placeholderFiles {
		p := filepath.Join(env.Workdir, rel)
		if err := os.Remove(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to remove placeholder %s: %w", rel, err)
		}
		lgr.Info("removed placeholder", "file", rel)
	}
	return nil
}
