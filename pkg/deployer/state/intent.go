package state

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
	"github.com/roothash-pay/nft-forge/pkg/service/jsonutil"
)

const IntentFilename = "intent.toml"

var (
	ErrTokenNameEmpty        = errors.New("token name must not be empty")
	ErrTokenSymbolEmpty      = errors.New("token symbol must not be empty")
	ErrUnsafeSourceLiteral   = errors.New("value contains characters that cannot appear in generated source")
	ErrRPCURLInvalid         = errors.New("network RPC URL is invalid")
	ErrChainIDZero           = errors.New("network chain ID must not be zero")
	ErrSolidityVersionEmpty  = errors.New("solidity version must not be empty")
	ErrExplorerTxURLRequired = errors.New("explorer transaction URL base must not be empty")
)

// Network identifies the target chain the generated project deploys to.
type Network struct {
	Name    string `json:"name" toml:"name"`
	RPCURL  string `json:"rpcUrl" toml:"rpcUrl"`
	ChainID uint64 `json:"chainId" toml:"chainId"`
}

// Intent is the operator's full description of the project to bootstrap.
// It is persisted as TOML in the workdir and re-read on every apply, so a
// run can be resumed or repeated without prompting again.
type Intent struct {
	TokenName       string  `json:"tokenName" toml:"tokenName"`
	TokenSymbol     string  `json:"tokenSymbol" toml:"tokenSymbol"`
	SolidityVersion string  `json:"solidityVersion" toml:"solidityVersion"`
	Network         Network `json:"network" toml:"network"`

	// ExplorerTxURL is the URL base a transaction hash is appended to when
	// writing the mint log.
	ExplorerTxURL string `json:"explorerTxUrl" toml:"explorerTxUrl"`
}

// DefaultIntent targets the Sapphire testnet, a confidential EVM whose
// transactions are shielded (call data encrypted before submission).
func DefaultIntent() *Intent {
	return &Intent{
		SolidityVersion: "0.8.24",
		Network: Network{
			Name:    "sapphire-testnet",
			RPCURL:  "https://testnet.sapphire.oasis.io",
			ChainID: 23295,
		},
		ExplorerTxURL: "https://explorer.oasis.io/testnet/sapphire/tx/",
	}
}

func (in *Intent) ChainIDBig() *big.Int {
	return new(big.Int).SetUint64(in.Network.ChainID)
}

// Check validates the intent before any file generation happens. Values
// that would corrupt generated source files are rejected here rather than
// silently substituted.
func (in *Intent) Check() error {
	if in.TokenName == "" {
		return ErrTokenNameEmpty
	}
	if in.TokenSymbol == "" {
		return ErrTokenSymbolEmpty
	}
	if err := CheckSourceLiteral(in.TokenName); err != nil {
		return fmt.Errorf("token name: %w", err)
	}
	if err := CheckSourceLiteral(in.TokenSymbol); err != nil {
		return fmt.Errorf("token symbol: %w", err)
	}
	if in.SolidityVersion == "" {
		return ErrSolidityVersionEmpty
	}
	if err := CheckSourceLiteral(in.SolidityVersion); err != nil {
		return fmt.Errorf("solidity version: %w", err)
	}
	u, err := url.Parse(in.Network.RPCURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrRPCURLInvalid, in.Network.RPCURL)
	}
	if in.Network.ChainID == 0 {
		return ErrChainIDZero
	}
	if in.Network.Name == "" {
		return errors.New("network name must not be empty")
	}
	if in.ExplorerTxURL == "" {
		return ErrExplorerTxURLRequired
	}
	return nil
}

// CheckSourceLiteral rejects values that cannot be represented inside a
// generated source file even after escaping. Quotes and backslashes are
// fine (the template layer escapes them), control characters are not.
func CheckSourceLiteral(s string) error {
	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrUnsafeSourceLiteral, s)
		}
	}
	if strings.ContainsAny(s, "\n\r") {
		return fmt.Errorf("%w: %q", ErrUnsafeSourceLiteral, s)
	}
	return nil
}

// ReadIntent loads the intent file from the workdir.
func ReadIntent(workdir string) (*Intent, error) {
	intentPath := filepath.Join(workdir, IntentFilename)
	intent, err := jsonutil.LoadTOML[Intent](intentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read intent file: %w", err)
	}
	return intent, nil
}

// WriteToFile persists the intent file into the workdir, replacing any
// previous intent in full.
func (in *Intent) WriteToFile(workdir string) error {
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return fmt.Errorf("failed to create workdir: %w", err)
	}
	w, err := ioutil.NewAtomicWriter(filepath.Join(workdir, IntentFilename), 0o644)
	if err != nil {
		return err
	}
	return jsonutil.WriteTOML(in, w)
}
