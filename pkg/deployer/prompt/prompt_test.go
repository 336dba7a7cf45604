package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	t.Run("reads one line per prompt", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("Demo\nDNFT\n"), &out)

		name, err := p.Prompt("Token name")
		require.NoError(t, err)
		require.Equal(t, "Demo", name)

		symbol, err := p.Prompt("Token symbol")
		require.NoError(t, err)
		require.Equal(t, "DNFT", symbol)

		require.Contains(t, out.String(), "Token name: ")
		require.Contains(t, out.String(), "Token symbol: ")
	})

	t.Run("accepts final line without newline", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("abc123"), &out)

		v, err := p.Prompt("Private key")
		require.NoError(t, err)
		require.Equal(t, "abc123", v)
	})

	t.Run("strips carriage returns", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("Demo\r\n"), &out)

		v, err := p.Prompt("Token name")
		require.NoError(t, err)
		require.Equal(t, "Demo", v)
	})

	t.Run("empty input is returned as-is", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader("\n"), &out)

		v, err := p.Prompt("Token name")
		require.NoError(t, err)
		require.Equal(t, "", v)
	})

	t.Run("errors on exhausted input", func(t *testing.T) {
		var out bytes.Buffer
		p := New(strings.NewReader(""), &out)

		_, err := p.Prompt("Token name")
		require.Error(t, err)
	})
}
