// Package enginehost is the seam SPEC_FULL.md §6.1 describes: a small
// wrapper around board/solve that both cmd/solve and cmd/wasmsolve
// depend on, so neither binary owns any solving logic of its own.
// Grounded on the teacher's cmd/wasm/main.go call surface
// (createBoard/solveOneStep/applyMove-style functions), adapted from
// its JS-marshalling concerns to a plain Go API; the JSON tagging on
// core.Action/CellRef/Step (SPEC_FULL.md §6.2) is what lets
// cmd/wasmsolve hand these values to JS with encoding/json rather than
// bespoke per-field marshalling.
package enginehost

import (
	"humansudoku/internal/board"
	"humansudoku/internal/core"
	"humansudoku/internal/solve"
)

// Handle owns one Board — the unit of state a host keeps across calls.
type Handle struct {
	Board *board.Board
}

// NewHandle parses a value string into a ready-to-solve Handle: givens
// set, candidates initialized (spec.md §4.B/§4.C lifecycle).
func NewHandle(valueString string) (*Handle, error) {
	b, err := board.FromValues(valueString)
	if err != nil {
		return nil, err
	}
	b.InitializeCandidates()
	return &Handle{Board: b}, nil
}

// NewHandleFromCandidateGrid parses an ASCII candidate grid directly,
// for hosts resuming a partially-solved board (spec.md §6 candidate
// grid format).
func NewHandleFromCandidateGrid(grid string) (*Handle, error) {
	b, err := board.FromCandidateGrid(grid)
	if err != nil {
		return nil, err
	}
	return &Handle{Board: b}, nil
}

// SolveOneStep returns the next Action the registry finds for tier, or
// nil if none fires.
func (h *Handle) SolveOneStep(tier string) *core.Action {
	return solve.SolveOneStep(h.Board, solve.Registry(tier), nil)
}

// ApplyStep mutates the handle's board with a.
func (h *Handle) ApplyStep(a *core.Action) error {
	return solve.ApplyStep(h.Board, a)
}

// SolveAll drives solve_all to completion or maxSteps, whichever comes
// first (spec.md §4.G).
func (h *Handle) SolveAll(tier string, maxSteps int) (solve.Result, error) {
	return solve.SolveAll(h.Board, solve.Registry(tier), maxSteps, nil)
}

// ToValueString and ToCandidateString expose the two serialised forms
// spec.md §6 defines.
func (h *Handle) ToValueString() string     { return h.Board.ToValueString() }
func (h *Handle) ToCandidateString() string { return h.Board.ToCandidateString() }

// IsSolved reports whether every cell of the handle's board has a
// value.
func (h *Handle) IsSolved() bool { return h.Board.IsSolved() }
