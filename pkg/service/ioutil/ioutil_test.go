package ioutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWriter(t *testing.T) {
	t.Run("writes and renames", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.txt")
		w, err := NewAtomicWriter(dest, 0o644)
		require.NoError(t, err)
		_, err = w.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
	})

	t.Run("abort leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "out.txt")
		w, err := NewAtomicWriter(dest, 0o644)
		require.NoError(t, err)
		_, err = w.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, w.Abort())

		require.NoFileExists(t, dest)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("overwrites in full", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, WriteFileAtomic(dest, []byte("a long first version"), 0o644))
		require.NoError(t, WriteFileAtomic(dest, []byte("short"), 0o644))

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		require.Equal(t, "short", string(data))
	})
}

func TestToStdOutOrFileOrNoop(t *testing.T) {
	t.Run("empty path discards", func(t *testing.T) {
		w, err := ToStdOutOrFileOrNoop("", 0o644)
		require.NoError(t, err)
		_, err = w.Write([]byte("ignored"))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	})

	t.Run("file path writes file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.txt")
		w, err := ToStdOutOrFileOrNoop(dest, 0o644)
		require.NoError(t, err)
		_, err = w.Write([]byte("data"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		require.Equal(t, "data", string(data))
	})
}
