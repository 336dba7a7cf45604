package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/deployer/templates"
	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
)

const (
	// ConfigFilename is the hardhat network configuration, overwritten in
	// full on each run.
	ConfigFilename = "hardhat.config.js"

	// ContractFilename is the generated ERC-721 source, overwritten in
	// full on each run.
	ContractFilename = "contracts/" + templates.ContractName + ".sol"
)

// WriteNetworkConfig renders the network configuration from the intent. The
// credential itself never appears in the config; it is referenced through
// the env file written by the credential stage.
func WriteNetworkConfig(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageWriteConfig)

	content, err := templates.RenderHardhatConfig(templates.HardhatConfigParams{
		SolidityVersion: intent.SolidityVersion,
		NetworkName:     intent.Network.Name,
		RPCURL:          intent.Network.RPCURL,
		ChainID:         intent.Network.ChainID,
	})
	if err != nil {
		return err
	}
	if err := ioutil.WriteFileAtomic(filepath.Join(env.Workdir, ConfigFilename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write network config: %w", err)
	}
	lgr.Info("wrote network config", "file", ConfigFilename, "network", intent.Network.Name, "chainId", intent.Network.ChainID)
	return nil
}

// WriteContract renders the ERC-721 source with the intent's name and
// symbol substituted into the token constructor, in that order.
func WriteContract(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageWriteContract)

	content, err := templates.RenderContract(templates.ContractParams{
		Name:            intent.TokenName,
		Symbol:          intent.TokenSymbol,
		SolidityVersion: intent.SolidityVersion,
	})
	if err != nil {
		return err
	}
	if err := ioutil.WriteFileAtomic(filepath.Join(env.Workdir, ContractFilename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write contract source: %w", err)
	}
	lgr.Info("wrote contract source", "file", ContractFilename, "name", intent.TokenName, "symbol", intent.TokenSymbol)
	return nil
}

// Compile invokes the external compiler on the generated project.
func Compile(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageCompile)
	lgr.Info("compiling contracts")

	if err := env.Runner.Run(ctx, env.Workdir, "npx", "hardhat", "compile"); err != nil {
		return fmt.Errorf("failed to compile contracts: %w", err)
	}
	return nil
}
