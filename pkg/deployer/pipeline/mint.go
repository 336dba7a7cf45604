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
	"github.com/holiman/uint256"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/deployer/templates"
	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
)

const (
	// MintLogFilename is append-only: each successful mint adds one line,
	// no run ever truncates it.
	MintLogFilename = "mint.log"

	MintScriptFilename = "scripts/mint.js"
)

var (
	ErrMintLogNotGrown = errors.New("mint log did not grow after mint run")

	mintLineRe = regexp.MustCompile(`^NFT ID (\d+) : (\S+)$`)
)

// Mint renders the mint script and runs it, then parses the line the script
// appended to the mint log into a typed record. The deployed address must
// already exist and parse; a missing or empty address file fails the stage
// before anything is written or executed.
func Mint(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageMint)

	if _, err := ReadDeployedAddress(env.Workdir); err != nil {
		return fmt.Errorf("cannot mint: %w", err)
	}

	before, err := countMintLogLines(env.Workdir)
	if err != nil {
		return err
	}

	script, err := templates.RenderMintScript(templates.MintScriptParams{
		ContractName:  templates.ContractName,
		AddressFile:   AddressFilename,
		MintLogFile:   MintLogFilename,
		ExplorerTxURL: intent.ExplorerTxURL,
	})
	if err != nil {
		return err
	}
	if err := ioutil.WriteFileAtomic(filepath.Join(env.Workdir, MintScriptFilename), []byte(script), 0o644); err != nil {
		return fmt.Errorf("failed to write mint script: %w", err)
	}

	lgr.Info("minting token", "network", intent.Network.Name)
	if err := env.Runner.Run(ctx, env.Workdir, "npx", "hardhat", "run", MintScriptFilename, "--network", intent.Network.Name); err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	after, err := countMintLogLines(env.Workdir)
	if err != nil {
		return err
	}
	if after != before+1 {
		return fmt.Errorf("%w: %d lines before, %d after", ErrMintLogNotGrown, before, after)
	}

	rec, err := readLastMintRecord(env.Workdir, intent.ExplorerTxURL)
	if err != nil {
		return err
	}
	st.Mints = append(st.Mints, rec)
	lgr.Info("minted token", "tokenId", rec.TokenID, "tx", rec.TxHash)
	return nil
}

func mintLogLines(workdir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(workdir, MintLogFilename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mint log: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func countMintLogLines(workdir string) (int, error) {
	lines, err := mintLogLines(workdir)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func readLastMintRecord(workdir string, explorerTxURL string) (state.MintRecord, error) {
	lines, err := mintLogLines(workdir)
	if err != nil {
		return state.MintRecord{}, err
	}
	if len(lines) == 0 {
		return state.MintRecord{}, errors.New("mint log is empty")
	}
	last := lines[len(lines)-1]
	m := mintLineRe.FindStringSubmatch(last)
	if m == nil {
		return state.MintRecord{}, fmt.Errorf("malformed mint log line: %q", last)
	}
	tokenID, err := uint256.FromDecimal(m[1])
	if err != nil {
		return state.MintRecord{}, fmt.Errorf("malformed token ID %q: %w", m[1], err)
	}
	rec := state.MintRecord{
		TokenID:     tokenID,
		ExplorerURL: m[2],
	}
	if hash, ok := strings.CutPrefix(m[2], explorerTxURL); ok && len(hash) == common.HashLength*2+2 {
		rec.TxHash = common.HexToHash(hash)
	}
	return rec, nil
}
