package jsonutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
)

type sample struct {
	Name  string `json:"name" toml:"name"`
	Count int    `json:"count" toml:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	w, err := ioutil.NewAtomicWriter(path, 0o644)
	require.NoError(t, err)
	require.NoError(t, WriteJSON(sample{Name: "demo", Count: 3}, w))

	read, err := LoadJSON[sample](path)
	require.NoError(t, err)
	require.Equal(t, &sample{Name: "demo", Count: 3}, read)
}

func TestLoadJSONRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"demo","bogus":true}`), 0o644))

	_, err := LoadJSON[sample](path)
	require.Error(t, err)
}

func TestTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	w, err := ioutil.NewAtomicWriter(path, 0o644)
	require.NoError(t, err)
	require.NoError(t, WriteTOML(sample{Name: "demo", Count: 3}, w))

	read, err := LoadTOML[sample](path)
	require.NoError(t, err)
	require.Equal(t, &sample{Name: "demo", Count: 3}, read)
}
