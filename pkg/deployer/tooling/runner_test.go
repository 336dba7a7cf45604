package tooling

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roothash-pay/nft-forge/pkg/service/testlog"
)

func TestRunnerSuccess(t *testing.T) {
	r := NewRunner(testlog.Logger(t, slog.LevelInfo))
	require.NoError(t, r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 0"))
}

func TestRunnerPropagatesExitCode(t *testing.T) {
	r := NewRunner(testlog.Logger(t, slog.LevelInfo))
	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	require.Error(t, err)

	var cmdErr *CmdError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, 3, cmdErr.ExitCode)
}

func TestRunnerMissingBinary(t *testing.T) {
	r := NewRunner(testlog.Logger(t, slog.LevelInfo))
	err := r.Run(context.Background(), t.TempDir(), "definitely-not-a-real-binary")
	require.Error(t, err)
}

func TestRunnerRunsInDir(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(testlog.Logger(t, slog.LevelInfo))
	require.NoError(t, r.Run(context.Background(), dir, "sh", "-c", "touch marker"))
	_, err := os.Stat(filepath.Join(dir, "marker"))
	require.NoError(t, err)
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(testlog.Logger(t, slog.LevelInfo))
	err := r.Run(ctx, t.TempDir(), "sh", "-c", "sleep 10")
	require.Error(t, err)
}
