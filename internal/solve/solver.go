package solve

import (
	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// AbortFlag is polled between technique invocations (spec.md §5
// "Cancellation and timeouts"). It is not passed to the techniques, so a
// technique that is already running, Forcing Chain included, runs to
// completion. A nil AbortFlag never aborts.
type AbortFlag func() bool

func aborted(flag AbortFlag) bool {
	return flag != nil && flag()
}

// SolveOneStep tries every descriptor in order and returns the first
// Action found, or nil if none fires (spec.md §4.G solve_one_step) or
// the abort flag is set before any technique runs.
func SolveOneStep(b board.BoardInterface, registry []Descriptor, abort AbortFlag) *core.Action {
	for _, d := range registry {
		if aborted(abort) {
			return nil
		}
		if a := d.Detect(b); !a.IsEmpty() {
			return a
		}
	}
	return nil
}

// ApplyStep mutates the board with one Action's Steps, per spec.md
// §4.G apply_step. Board.Apply already stops at the first invariant
// violation and surfaces a *core.ContradictionError; ApplyStep is a
// thin pass-through kept as its own function so the solve package's
// public surface matches spec.md's named operations one-to-one.
func ApplyStep(b *board.Board, a *core.Action) error {
	return b.Apply(a)
}

// Result is the record SolveAll returns: the Actions applied in order,
// and why the loop stopped.
type Result struct {
	Actions []*core.Action
	Solved  bool
	Aborted bool
}

// SolveAll repeatedly calls SolveOneStep and ApplyStep until the board
// is solved, no technique fires, maxSteps is reached, or abort fires
// (spec.md §4.G solve_all). A ContradictionError from ApplyStep is
// returned as-is — per spec.md §4.G "Failure semantics", an invariant
// violation is fatal, not folded into an unsolved Result.
func SolveAll(b *board.Board, registry []Descriptor, maxSteps int, abort AbortFlag) (Result, error) {
	var res Result
	for steps := 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		if aborted(abort) {
			res.Aborted = true
			return res, nil
		}
		if b.IsSolved() {
			res.Solved = true
			return res, nil
		}
		action := SolveOneStep(b, registry, abort)
		if action == nil {
			return res, nil
		}
		if err := ApplyStep(b, action); err != nil {
			return res, err
		}
		res.Actions = append(res.Actions, action)
	}
	res.Solved = b.IsSolved()
	return res, nil
}
