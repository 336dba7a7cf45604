package deployer

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/deployer/pipeline"
	"github.com/roothash-pay/nft-forge/pkg/deployer/prompt"
	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/deployer/tooling"
	"github.com/roothash-pay/nft-forge/pkg/service/ctxinterrupt"
	svclog "github.com/roothash-pay/nft-forge/pkg/service/log"
)

// ApplyCLI loads the intent written by init and drives the full bootstrap
// pipeline against it. The run is fail-fast: the first stage error aborts
// with exit code 1 and files written by completed stages stay on disk.
func ApplyCLI() cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		lgr := svclog.NewLogger(os.Stderr, svclog.ReadCLIConfig(cliCtx))
		ctx := ctxinterrupt.WithCancelOnInterrupt(cliCtx.Context)

		workdir := cliCtx.String(WorkdirFlag.Name)
		intent, err := state.ReadIntent(workdir)
		if err != nil {
			return fmt.Errorf("failed to read intent (run init first): %w", err)
		}
		st, err := state.ReadState(workdir)
		if err != nil {
			lgr.Warn("no readable state file, starting fresh", "err", err)
			st = state.NewState()
		}

		env := &pipeline.Env{
			Workdir:     workdir,
			Logger:      lgr,
			Runner:      tooling.NewRunner(lgr),
			Prompter:    prompt.New(os.Stdin, os.Stderr),
			StateWriter: &pipeline.WorkdirStateWriter{Workdir: workdir},
			PrivateKey:  cliCtx.String(PrivateKeyFlag.Name),
		}

		if err := pipeline.Apply(ctx, env, intent, st, cliCtx.String(StageFlag.Name)); err != nil {
			return err
		}
		lgr.Info("bootstrap complete",
			"address", st.ContractAddress,
			"mints", len(st.Mints),
			"network", intent.Network.Name,
		)
		return nil
	}
}
