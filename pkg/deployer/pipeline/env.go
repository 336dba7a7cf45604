package pipeline

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/roothash-pay/nft-forge/pkg/deployer/prompt"
	"github.com/roothash-pay/nft-forge/pkg/deployer/state"
	"github.com/roothash-pay/nft-forge/pkg/deployer/tooling"
)

// Env carries everything a pipeline stage needs. Stages own the files they
// write; later stages only read them.
type Env struct {
	// Workdir is the generated project directory. Intent, state, and all
	// boundary files live under it.
	Workdir string

	Logger      log.Logger
	Runner      tooling.Runner
	Prompter    prompt.Prompter
	StateWriter StateWriter

	// PrivateKey is the deploy key supplied up front via flag or env var.
	// When empty, the credential stage prompts for it.
	PrivateKey string
}

// StateWriter persists pipeline state after each completed stage.
type StateWriter interface {
	WriteState(st *state.State) error
}

// WorkdirStateWriter writes state to the canonical state file in the
// workdir.
type WorkdirStateWriter struct {
	Workdir string
}

func (w *WorkdirStateWriter) WriteState(st *state.State) error {
	return st.WriteToFile(w.Workdir)
}
