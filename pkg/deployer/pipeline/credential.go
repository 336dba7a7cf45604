package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
)

const (
	// CredentialFilename is the env file the hardhat config loads the key
	// from at run time.
	CredentialFilename = ".env"

	credentialKey = "PRIVATE_KEY"
)

var (
	ErrCredentialEmpty  = errors.New("private key must not be empty")
	ErrCredentialNotHex = errors.New("private key must be a hex string")
)

// CaptureCredential obtains the deploy key (from the environment the CLI
// collected, or interactively), validates it, and truncate-writes the env
// file as exactly one KEY=value line. The file is consumed by the deploy
// and mint stages indirectly, through the generated config's env loading.
func CaptureCredential(ctx context.Context, env *Env, intent *state.Intent, st *state.State) error {
	lgr := env.Logger.New("stage", StageCaptureCredential)

	key := env.PrivateKey
	if key == "" {
		var err error
		key, err = env.Prompter.Prompt("Enter the deploy account private key")
		if err != nil {
			return fmt.Errorf("failed to read private key: %w", err)
		}
	}
	if err := CheckCredential(key); err != nil {
		return err
	}

	// Log the derived account when the key is a full secp256k1 scalar, so
	// the operator can fund it before the deploy stage runs.
	if priv, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x")); err == nil {
		lgr.Info("deploy account", "address", crypto.PubkeyToAddress(priv.PublicKey))
	}

	data := []byte(credentialKey + "=" + key + "\n")
	if err := ioutil.WriteFileAtomic(filepath.Join(env.Workdir, CredentialFilename), data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	lgr.Info("wrote credential file", "file", CredentialFilename)
	return nil
}

// CheckCredential rejects keys that would corrupt the single-line env file
// or that cannot be a hex-encoded key at all. Length is deliberately not
// enforced: the toolchain gives a far better diagnostic for a truncated key
// than this tool could.
func CheckCredential(key string) error {
	if key == "" {
		return ErrCredentialEmpty
	}
	hexPart := strings.TrimPrefix(key, "0x")
	if hexPart == "" {
		return fmt.Errorf("%w: %q", ErrCredentialNotHex, key)
	}
	for _, r := range hexPart {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return fmt.Errorf("%w: contains %q", ErrCredentialNotHex, r)
		}
	}
	return nil
}
