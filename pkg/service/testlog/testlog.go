// Package testlog adapts the go-ethereum logger to the testing framework so
// log output is captured per test and shown only on failure.
package testlog

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/log"
)

type testWriter struct {
	t  *testing.T
	mu sync.Mutex
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// Logger returns a logger that routes records at or above the given level
// through t.Log.
func Logger(t *testing.T, level slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(&testWriter{t: t}, level))
}
