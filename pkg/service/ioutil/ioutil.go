package ioutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ToStdOutOrFileOrNoop returns a writer that writes to stdout when the
// output path is "-", discards everything when the path is empty, and
// otherwise writes atomically to the given file.
func ToStdOutOrFileOrNoop(outputPath string, perm os.FileMode) (io.WriteCloser, error) {
	if outputPath == "-" {
		return &noopCloser{w: os.Stdout}, nil
	}
	if outputPath == "" {
		return &noopCloser{w: io.Discard}, nil
	}
	return NewAtomicWriter(outputPath, perm)
}

type noopCloser struct {
	w io.Writer
}

func (n *noopCloser) Write(p []byte) (int, error) { return n.w.Write(p) }

func (n *noopCloser) Close() error { return nil }

// AtomicWriter stages writes in a temp file next to the destination and
// renames it into place on Close, so readers never observe a partial file.
type AtomicWriter struct {
	dest string
	perm os.FileMode
	tmp  *os.File
}

func NewAtomicWriter(dest string, perm os.FileMode) (*AtomicWriter, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dir %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicWriter{dest: dest, perm: perm, tmp: tmp}, nil
}

func (a *AtomicWriter) Write(p []byte) (int, error) {
	return a.tmp.Write(p)
}

func (a *AtomicWriter) Close() error {
	if err := a.tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(a.tmp.Name(), a.perm); err != nil {
		_ = os.Remove(a.tmp.Name())
		return err
	}
	return os.Rename(a.tmp.Name(), a.dest)
}

// Abort discards the staged contents without touching the destination.
func (a *AtomicWriter) Abort() error {
	_ = a.tmp.Close()
	return os.Remove(a.tmp.Name())
}

// WriteFileAtomic is a convenience wrapper for one-shot writes.
func WriteFileAtomic(dest string, data []byte, perm os.FileMode) error {
	w, err := NewAtomicWriter(dest, perm)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Close()
}
