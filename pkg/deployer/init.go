package deployer

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/deployer/prompt"
	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	svclog "github.com/roothash-pay/nft-forge/pkg/service/log"
)

// InitCLI gathers the project parameters and writes a fresh intent and
// state file into the workdir. Parameters come from flags and env vars;
// the token name and symbol fall back to interactive prompts when omitted,
// everything else falls back to the defaults.
func InitCLI() cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		lgr := svclog.NewLogger(os.Stderr, svclog.ReadCLIConfig(cliCtx))
		prompter := prompt.New(os.Stdin, os.Stderr)

		intent := state.DefaultIntent()
		intent.TokenName = cliCtx.String(TokenNameFlag.Name)
		intent.TokenSymbol = cliCtx.String(TokenSymbolFlag.Name)
		if v := cliCtx.String(NetworkNameFlag.Name); v != "" {
			intent.Network.Name = v
		}
		if v := cliCtx.String(RPCURLFlag.Name); v != "" {
			intent.Network.RPCURL = v
		}
		if v := cliCtx.Uint64(ChainIDFlag.Name); v != 0 {
			intent.Network.ChainID = v
		}
		if v := cliCtx.String(SolidityVersionFlag.Name); v != "" {
			intent.SolidityVersion = v
		}
		if v := cliCtx.String(ExplorerTxURLFlag.Name); v != "" {
			intent.ExplorerTxURL = v
		}

		var err error
		if intent.TokenName == "" {
			if intent.TokenName, err = prompter.Prompt("Token name"); err != nil {
				return err
			}
		}
		if intent.TokenSymbol == "" {
			if intent.TokenSymbol, err = prompter.Prompt("Token symbol"); err != nil {
				return err
			}
		}

		if err := intent.Check(); err != nil {
			return fmt.Errorf("invalid intent: %w", err)
		}

		workdir := cliCtx.String(WorkdirFlag.Name)
		if err := intent.WriteToFile(workdir); err != nil {
			return fmt.Errorf("failed to write intent: %w", err)
		}
		if err := state.NewState().WriteToFile(workdir); err != nil {
			return fmt.Errorf("failed to write state: %w", err)
		}
		lgr.Info("initialized workdir", "workdir", workdir, "tokenName", intent.TokenName, "tokenSymbol", intent.TokenSymbol)
		return nil
	}
}
