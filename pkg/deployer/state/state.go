package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/roothash-pay/nft-forge/pkg/service/ioutil"
	"github.com/roothash-pay/nft-forge/pkg/service/jsonutil"
)

const StateFilename = "state.json"

var ErrStateVersionUnsupported = errors.New("unsupported state version")

// MintRecord captures one successful mint transaction.
type MintRecord struct {
	TokenID     *uint256.Int `json:"tokenId"`
	TxHash      common.Hash  `json:"txHash"`
	ExplorerURL string       `json:"explorerUrl"`
}

// State tracks everything the pipeline has produced so far. It is written
// back to disk after every completed stage so an aborted run leaves an
// accurate record behind.
type State struct {
	Version int `json:"version"`

	// AppliedIntent is the intent the completed stages were run against.
	AppliedIntent *Intent `json:"appliedIntent,omitempty"`

	// StagesCompleted lists pipeline stages that have finished, in order.
	StagesCompleted []string `json:"stagesCompleted,omitempty"`

	// ContractAddress is set once the deploy stage has read the address
	// file back from the generated project.
	ContractAddress common.Address `json:"contractAddress,omitempty"`

	// Mints grows by one record per successful mint stage, never shrinks.
	Mints []MintRecord `json:"mints,omitempty"`
}

func NewState() *State {
	return &State{Version: 1}
}

func (s *State) RecordCompleted(stage string) {
	if !s.Completed(stage) {
		s.StagesCompleted = append(s.StagesCompleted, stage)
	}
}

func (s *State) Completed(stage string) bool {
	return slices.Contains(s.StagesCompleted, stage)
}

// WriteToFile persists the state into the workdir atomically.
func (s *State) WriteToFile(workdir string) error {
	w, err := ioutil.NewAtomicWriter(filepath.Join(workdir, StateFilename), 0o644)
	if err != nil {
		return err
	}
	return jsonutil.WriteJSON(s, w)
}

// ReadState loads the state file from the workdir.
func ReadState(workdir string) (*State, error) {
	st, err := jsonutil.LoadJSON[State](filepath.Join(workdir, StateFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if st.Version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrStateVersionUnsupported, st.Version)
	}
	return st, nil
}
