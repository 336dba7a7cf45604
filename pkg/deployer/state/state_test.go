package state

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	workdir := t.TempDir()

	st := NewState()
	st.AppliedIntent = validIntent()
	st.RecordCompleted("write-config")
	st.ContractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	st.Mints = append(st.Mints, MintRecord{
		TokenID:     uint256.NewInt(0),
		TxHash:      common.HexToHash("0x01"),
		ExplorerURL: "https://explorer.oasis.io/testnet/sapphire/tx/0x01",
	})
	require.NoError(t, st.WriteToFile(workdir))

	read, err := ReadState(workdir)
	require.NoError(t, err)
	require.Equal(t, st, read)
}

func TestStateCompleted(t *testing.T) {
	st := NewState()
	require.False(t, st.Completed("deploy"))

	st.RecordCompleted("deploy")
	st.RecordCompleted("deploy")
	require.True(t, st.Completed("deploy"))
	require.Equal(t, []string{"deploy"}, st.StagesCompleted)
}

func TestReadStateVersion(t *testing.T) {
	workdir := t.TempDir()

	st := NewState()
	st.Version = 99
	require.NoError(t, st.WriteToFile(workdir))

	_, err := ReadState(workdir)
	require.ErrorIs(t, err, ErrStateVersionUnsupported)
}

func TestReadStateMissing(t *testing.T) {
	_, err := ReadState(t.TempDir())
	require.Error(t, err)
}
