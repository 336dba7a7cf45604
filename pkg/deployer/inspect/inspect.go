package inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/roothash-pay/nft-forge/pkg/deployer/pipeline"
	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/service"
	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
	"github.com/roothash-pay/nft-forge/pkg/service/jsonutil"
)

const EnvVarPrefix = "NFT_FORGE"

var (
	WorkdirFlag = &cli.StringFlag{
		Name:    "workdir",
		Usage:   "Directory storing intent and state.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "WORKDIR"),
		Value:   "nft-project",
	}
	OutfileFlag = &cli.StringFlag{
		Name:    "outfile",
		Usage:   "Output file. Use - for stdout.",
		EnvVars: service.PrefixEnvVar(EnvVarPrefix, "OUTFILE"),
		Value:   "-",
	}
)

var Flags = []cli.Flag{
	WorkdirFlag,
	OutfileFlag,
}

var Commands = []*cli.Command{
	{
		Name:   "intent",
		Usage:  "Prints the intent as JSON.",
		Flags:  Flags,
		Action: IntentCLI,
	},
	{
		Name:   "state",
		Usage:  "Prints the pipeline state as JSON.",
		Flags:  Flags,
		Action: StateCLI,
	},
	{
		Name:   "address",
		Usage:  "Prints the deployed contract address.",
		Flags:  Flags,
		Action: AddressCLI,
	},
	{
		Name:   "mint-log",
		Usage:  "Prints the mint log.",
		Flags:  Flags,
		Action: MintLogCLI,
	},
}

type cliConfig struct {
	Workdir string
	Outfile string
}

func readConfig(cliCtx *cli.Context) cliConfig {
	return cliConfig{
		Workdir: cliCtx.String(WorkdirFlag.Name),
		Outfile: cliCtx.String(OutfileFlag.Name),
	}
}

func IntentCLI(cliCtx *cli.Context) error {
	cfg := readConfig(cliCtx)
	intent, err := state.ReadIntent(cfg.Workdir)
	if err != nil {
		return err
	}
	w, err := ioutil.ToStdOutOrFileOrNoop(cfg.Outfile, 0o666)
	if err != nil {
		return err
	}
	return jsonutil.WriteJSON(intent, w)
}

func StateCLI(cliCtx *cli.Context) error {
	cfg := readConfig(cliCtx)
	st, err := state.ReadState(cfg.Workdir)
	if err != nil {
		return err
	}
	w, err := ioutil.ToStdOutOrFileOrNoop(cfg.Outfile, 0o666)
	if err != nil {
		return err
	}
	return jsonutil.WriteJSON(st, w)
}

func AddressCLI(cliCtx *cli.Context) error {
	cfg := readConfig(cliCtx)
	addr, err := pipeline.ReadDeployedAddress(cfg.Workdir)
	if err != nil {
		return err
	}
	w, err := ioutil.ToStdOutOrFileOrNoop(cfg.Outfile, 0o666)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, addr.Hex()); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func MintLogCLI(cliCtx *cli.Context) error {
	cfg := readConfig(cliCtx)
	f, err := os.Open(filepath.Join(cfg.Workdir, pipeline.MintLogFilename))
	if err != nil {
		return fmt.Errorf("failed to open mint log: %w", err)
	}
	defer f.Close()
	w, err := ioutil.ToStdOutOrFileOrNoop(cfg.Outfile, 0o666)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
