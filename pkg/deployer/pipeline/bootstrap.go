package pipeline

import (
	"context"
	"fmt"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
)

// systemPackages is the fixed set of system packages the toolchain needs.
var systemPackages = []string{"curl", "git", "nodejs", "npm"}

// SystemUpdate refreshes the system package manager's metadata.
func SystemUpdate(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageSystemUpdate)
	lgr.Info("refreshing system package metadata")

	if err := env.Runner.Run(ctx, env.Workdir, "apt-get", "update", "-y"); err != nil {
		return fmt.Errorf("failed to update package metadata: %w", err)
	}
	return nil
}

// InstallDeps installs the system packages the node toolchain requires.
func InstallDeps(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageInstallDeps)
	lgr.Info("installing system packages", "packages", systemPackages)

	args := append([]string{"install", "-y"}, systemPackages...)
	if err := env.Runner.Run(ctx, env.Workdir, "apt-get", args...); err != nil {
		return fmt.Errorf("failed to install system packages: %w", err)
	}
	return nil
}
