package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/deployer/templates"
	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
)

const (
	// AddressFilename is written by the generated deploy script and read
	// back here and by the mint script.
	AddressFilename = "contract-address.js"

	DeployScriptFilename = "scripts/deploy.js"
)

var (
	ErrAddressFileMissing   = errors.New("deployed-address file does not exist")
	ErrAddressFileEmpty     = errors.New("deployed-address file is empty")
	ErrAddressFileMalformed = errors.New("deployed-address file is malformed")

	addressFileRe = regexp.MustCompile(`module\.exports = "(0x[0-9a-fA-F]{40})";`)
)

// Deploy renders the deploy script, runs it on the configured network, and
// reads the deployed contract address back into state.
func Deploy(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageDeploy)

	script, err := templates.RenderDeployScript(templates.DeployScriptParams{
		ContractName: templates.ContractName,
		AddressFile:  AddressFilename,
	})
	if err != nil {
		return err
	}
	if err := ioutil.WriteFileAtomic(filepath.Join(env.Workdir, DeployScriptFilename), []byte(script), 0o644); err != nil {
		return fmt.Errorf("failed to write deploy script: %w", err)
	}

	lgr.Info("deploying contract", "network", intent.Network.Name)
	if err := env.Runner.Run(ctx, env.Workdir, "npx", "hardhat", "run", DeployScriptFilename, "--network", intent.Network.Name); err != nil {
		return fmt.Errorf("failed to deploy contract: %w", err)
	}

	addr, err := ReadDeployedAddress(env.Workdir)
	if err != nil {
		return err
	}
	st.ContractAddress = addr
	lgr.Info("contract deployed", "address", addr)
	return nil
}

// ReadDeployedAddress parses the address file the deploy script wrote. The
// mint stage uses this as its precondition: no address, no mint.
func ReadDeployedAddress(workdir string) (common.Address, error) {
	data, err := os.ReadFile(filepath.Join(workdir, AddressFilename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return common.Address{}, ErrAddressFileMissing
		}
		return common.Address{}, fmt.Errorf("failed to read deployed-address file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return common.Address{}, ErrAddressFileEmpty
	}
	m := addressFileRe.FindSubmatch(data)
	if m == nil {
		return common.Address{}, fmt.Errorf("%w: %q", ErrAddressFileMalformed, strings.TrimSpace(string(data)))
	}
	hexAddr := string(m[1])
	if !common.IsHexAddress(hexAddr) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrAddressFileMalformed, hexAddr)
	}
	return common.HexToAddress(hexAddr), nil
}
