// Package pipeline implements the staged bootstrap flow: system setup,
// project scaffolding, credential capture, file generation, compile,
// deploy, and mint. Execution is strictly sequential and fail-fast: the
// first stage error aborts the run, nothing is retried or rolled back, and
// files written by completed stages stay on disk.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
)

// Stage names, in execution order.
const (
	StageSystemUpdate      = "system-update"
	StageInstallDeps       = "install-deps"
	StageScaffoldProject   = "scaffold-project"
	StageCleanupScaffold   = "cleanup-scaffold"
	StageCaptureCredential = "capture-credential"
	StageWriteConfig       = "write-config"
	StageWriteContract     = "write-contract"
	StageCompile           = "compile"
	StageDeploy            = "deploy"
	StageMint              = "mint"
)

type StageFunc func(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error

type Stage struct {
	Name  string
	Apply StageFunc
}

// Stages returns the full pipeline in execution order.
func Stages() []Stage {
	return []Stage{
		{StageSystemUpdate, SystemUpdate},
		{StageInstallDeps, InstallDeps},
		{StageScaffoldProject, ScaffoldProject},
		{StageCleanupScaffold, CleanupScaffold},
		{StageCaptureCredential, CaptureCredential},
		{StageWriteConfig, WriteNetworkConfig},
		{StageWriteContract, WriteContract},
		{StageCompile, Compile},
		{StageDeploy, Deploy},
		{StageMint, Mint},
	}
}

// Apply runs the pipeline from the given stage (or from the start when
// fromStage is empty). Generated config and contract files are overwritten
// in full on every run; the mint log only ever grows.
func Apply(ctx context.Context, env *Env, intent *state.Intent, st *state.State, fromStage string) error {
	if err := intent.Check(); err != nil {
		return fmt.Errorf("invalid intent: %w", err)
	}
	if err := os.MkdirAll(env.Workdir, 0o755); err != nil {
		return fmt.Errorf("failed to create workdir: %w", err)
	}

	stages := Stages()
	start := 0
	if fromStage != "" {
		start = -1
		for i, stage := range stages {
			if stage.Name == fromStage {
				start = i
				break
			}
		}
		if start < 0 {
			return fmt.Errorf("unknown stage %q", fromStage)
		}
	}

	st.AppliedIntent = intent
	for _, stage := range stages[start:] {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("apply interrupted before stage %s: %w", stage.Name, err)
		}
		env.Logger.Info("starting stage", "stage", stage.Name)
		if err := stage.Apply(ctx, env, intent, st); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}
		st.RecordCompleted(stage.Name)
		if err := env.StateWriter.WriteState(st); err != nil {
			return fmt.Errorf("failed to write state after stage %s: %w", stage.Name, err)
		}
	}
	return nil
}
