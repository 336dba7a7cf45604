package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
)

func TestCaptureCredential(t *testing.T) {
	intent := testIntent()

	t.Run("writes exactly one line", func(t *testing.T) {
		workdir := t.TempDir()
		tc := &fakeToolchain{t: t}
		env := testEnv(t, workdir, tc)
		env.PrivateKey = "abc123"

		require.NoError(t, CaptureCredential(context.Background(), env, intent, state.NewState()))

		data, err := os.ReadFile(filepath.Join(workdir, CredentialFilename))
		require.NoError(t, err)
		require.Equal(t, "PRIVATE_KEY=abc123\n", string(data))
	})

	t.Run("overwrites previous credential in full", func(t *testing.T) {
		workdir := t.TempDir()
		tc := &fakeToolchain{t: t}
		env := testEnv(t, workdir, tc)

		env.PrivateKey = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		require.NoError(t, CaptureCredential(context.Background(), env, intent, state.NewState()))
		env.PrivateKey = "bb"
		require.NoError(t, CaptureCredential(context.Background(), env, intent, state.NewState()))

		data, err := os.ReadFile(filepath.Join(workdir, CredentialFilename))
		require.NoError(t, err)
		require.Equal(t, "PRIVATE_KEY=bb\n", string(data))
	})

	t.Run("prompts when no key supplied", func(t *testing.T) {
		workdir := t.TempDir()
		tc := &fakeToolchain{t: t}
		env := testEnv(t, workdir, tc)
		env.PrivateKey = ""
		env.Prompter = &fakePrompter{answers: []string{"0xdeadbeef"}}

		require.NoError(t, CaptureCredential(context.Background(), env, intent, state.NewState()))

		data, err := os.ReadFile(filepath.Join(workdir, CredentialFilename))
		require.NoError(t, err)
		require.Equal(t, "PRIVATE_KEY=0xdeadbeef\n", string(data))
	})

	t.Run("rejects non-hex input", func(t *testing.T) {
		workdir := t.TempDir()
		tc := &fakeToolchain{t: t}
		env := testEnv(t, workdir, tc)
		env.PrivateKey = "correct horse battery staple"

		err := CaptureCredential(context.Background(), env, intent, state.NewState())
		require.ErrorIs(t, err, ErrCredentialNotHex)
		require.NoFileExists(t, filepath.Join(workdir, CredentialFilename))
	})
}

func TestCheckCredential(t *testing.T) {
	require.NoError(t, CheckCredential("abc123"))
	require.NoError(t, CheckCredential("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"))
	require.ErrorIs(t, CheckCredential(""), ErrCredentialEmpty)
	require.ErrorIs(t, CheckCredential("0x"), ErrCredentialNotHex)
	require.ErrorIs(t, CheckCredential("xyz"), ErrCredentialNotHex)
	require.ErrorIs(t, CheckCredential("abc 123"), ErrCredentialNotHex)
	require.ErrorIs(t, CheckCredential("abc\n123"), ErrCredentialNotHex)
}
