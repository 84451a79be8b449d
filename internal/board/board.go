// Package board implements the bit-set primitives, house index, and
// Board model of spec.md §3-§4 (components A, B, C). It is grounded on
// the teacher's internal/sudoku/human/techniques/board.go Candidates
// bitmask and internal/sudoku/human/board.go Board, generalized from the
// teacher's map/int-scan duplicate detection into the CellSet/DigitMask
// algebra the spec requires.
package board

import "humansudoku/internal/core"

// BoardInterface decouples techniques from the concrete Board, exactly
// as the teacher's techniques.BoardInterface does ("This allows for
// better testability and flexibility" — techniques/board.go) — it is
// also what lets Forcing Chain explore hypothetical placements on a
// clone without touching the real board (spec.md §5, §9).
type BoardInterface interface {
	GetCell(idx int) int
	GetCandidatesAt(idx int) DigitMask
	CellsWithDigitInUnit(h House, digit int) []int
	CloneBoard() BoardInterface
	SetCell(idx, digit int) error
	RemoveCandidate(idx, digit int) (bool, error)
}

// Board is the mutable state described in spec.md §3: given cells,
// current values, and per-cell candidate masks, plus the derived
// cellsWithCandidate index maintained incrementally on every mutation.
type Board struct {
	given      [81]bool
	value      [81]int
	candidates [81]DigitMask

	// cellsWithCandidate[d] is the CellSet of empty cells whose mask
	// still contains d, for d in 1..9 (index 0 unused).
	cellsWithCandidate [10]CellSet
}

var _ BoardInterface = (*Board)(nil)

// New returns an empty board (no givens, no candidates computed).
func New() *Board {
	return &Board{}
}

// FromValues parses an 81-character value string: '.' or '0' for empty,
// '1'..'9' otherwise. Any other rune is a ParseError (spec.md §6).
func FromValues(s string) (*Board, error) {
	if len(s) != 81 {
		return nil, &core.ParseError{Input: s, Reason: "value string must be exactly 81 characters"}
	}
	b := New()
	for i, r := range s {
		switch {
		case r == '.' || r == '0':
			// empty, nothing to do
		case r >= '1' && r <= '9':
			b.given[i] = true
			b.value[i] = int(r - '0')
		default:
			return nil, &core.ParseError{Input: s, Reason: "value string must contain only '.', '0'-'9'"}
		}
	}
	return b, nil
}

// FromCandidateGrid parses an ASCII candidate grid: 81 whitespace- and
// box-separator-delimited digit runs. A one-digit run is a given clue; a
// multi-digit run is the pencil-mark set of an empty cell (spec.md §6).
func FromCandidateGrid(s string) (*Board, error) {
	runs := make([]string, 0, 81)
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			runs = append(runs, string(cur))
			cur = nil
		}
	}
	for _, r := range s {
		if r >= '1' && r <= '9' {
			cur = append(cur, r)
			continue
		}
		flush()
	}
	flush()
	if len(runs) != 81 {
		return nil, &core.ParseError{Input: s, Reason: "candidate grid must contain exactly 81 digit runs"}
	}
	b := New()
	for i, run := range runs {
		if len(run) == 1 {
			b.given[i] = true
			b.value[i] = int(run[0] - '0')
			continue
		}
		var m DigitMask
		prev := 0
		for _, r := range run {
			d := int(r - '0')
			if d <= prev {
				return nil, &core.ParseError{Input: s, Reason: "candidate run digits must be strictly ascending"}
			}
			prev = d
			m = m.Set(d)
		}
		b.candidates[i] = m
	}
	for d := 1; d <= 9; d++ {
		for i := 0; i < 81; i++ {
			if !b.given[i] && b.candidates[i].Has(d) {
				b.cellsWithCandidate[d] = b.cellsWithCandidate[d].With(i)
			}
		}
	}
	return b, nil
}

// InitializeCandidates fills the mask of every empty cell with the
// complement of the digits already placed in its three houses
// (spec.md §4.G). It is idempotent: calling it twice yields the same
// masks, since it always recomputes from `value`/`given` rather than
// refining the existing mask.
func (b *Board) InitializeCandidates() {
	for d := 1; d <= 9; d++ {
		b.cellsWithCandidate[d] = EmptyCellSet
	}
	for i := 0; i < 81; i++ {
		if b.value[i] != 0 {
			b.candidates[i] = 0
			continue
		}
		seen := DigitMask(0)
		for _, h := range HousesOfCell[i] {
			for _, c := range HouseCells[h].ToSlice() {
				if b.value[c] != 0 {
					seen = seen.Set(b.value[c])
				}
			}
		}
		mask := AllDigits.Subtract(seen)
		b.candidates[i] = mask
		for _, d := range mask.ToSlice() {
			b.cellsWithCandidate[d] = b.cellsWithCandidate[d].With(i)
		}
	}
}

// GetCell returns 0 for empty, 1-9 for filled.
func (b *Board) GetCell(idx int) int { return b.value[idx] }

// GetCandidatesAt returns the candidate mask of a cell (0 if filled).
func (b *Board) GetCandidatesAt(idx int) DigitMask { return b.candidates[idx] }

// IsGiven reports whether idx was a clue at parse time.
func (b *Board) IsGiven(idx int) bool { return b.given[idx] }

// CellsWithCandidate returns the CellSet of empty cells that still carry
// digit d as a candidate (spec.md §3 cells_with_candidate[d]).
func (b *Board) CellsWithCandidate(d int) CellSet {
	if d < 1 || d > 9 {
		return EmptyCellSet
	}
	return b.cellsWithCandidate[d]
}

// CellsWithDigitInUnit returns, as a sorted slice, the cells of house h
// that still carry digit d as a candidate.
func (b *Board) CellsWithDigitInUnit(h House, digit int) []int {
	return HouseCells[h].Intersect(b.cellsWithCandidate[digit]).ToSlice()
}

// IsSolved reports whether every cell has a value.
func (b *Board) IsSolved() bool {
	for _, v := range b.value {
		if v == 0 {
			return false
		}
	}
	return true
}

// SetCell sets cell idx to digit, enforcing invariant 5 (givens are
// immutable) and clearing digit from every peer's mask via
// houses_of_cell (spec.md §4.B). It returns a ContradictionError,
// leaving the board otherwise intact, if clearing a peer's last
// candidate would violate invariant 2.
func (b *Board) SetCell(idx, digit int) error {
	if b.given[idx] {
		return &core.InvalidPlacement{Cell: idx, Digit: digit}
	}
	if digit < 1 || digit > 9 || !b.candidates[idx].Has(digit) {
		return &core.InvalidPlacement{Cell: idx, Digit: digit}
	}
	saved := *b
	b.value[idx] = digit
	for d := 1; d <= 9; d++ {
		b.cellsWithCandidate[d] = b.cellsWithCandidate[d].Without(idx)
	}
	b.candidates[idx] = 0

	for _, peer := range PeersOf[idx].ToSlice() {
		if b.value[peer] == 0 && b.candidates[peer].Has(digit) {
			if _, err := b.RemoveCandidate(peer, digit); err != nil {
				*b = saved
				return err
			}
		}
	}
	return nil
}

// RemoveCandidate clears digit from cell idx's mask. It reports whether
// the mask changed. If clearing digit would leave an unsolved cell with
// an empty mask, it returns a ContradictionError and leaves the mask
// unchanged; Apply stops at that first failing Step (spec.md §4.B).
func (b *Board) RemoveCandidate(idx, digit int) (bool, error) {
	if b.value[idx] != 0 || !b.candidates[idx].Has(digit) {
		return false, nil
	}
	if b.candidates[idx].Clear(digit).IsEmpty() {
		return false, &core.ContradictionError{Which: core.InvariantNonEmptyMask, Cell: idx, House: -1}
	}
	b.candidates[idx] = b.candidates[idx].Clear(digit)
	b.cellsWithCandidate[digit] = b.cellsWithCandidate[digit].Without(idx)
	return true, nil
}

// Apply applies an Action's Steps in order, stopping at the first
// contradiction; each Step is atomic, not the Action as a whole
// (spec.md §4.B).
func (b *Board) Apply(a *core.Action) error {
	for _, s := range a.Steps {
		switch s.Kind {
		case core.Place:
			if err := b.SetCell(s.Cell, s.Digit); err != nil {
				return err
			}
		case core.Eliminate:
			if _, err := b.RemoveCandidate(s.Cell, s.Digit); err != nil {
				return err
			}
		}
	}
	return nil
}

// CloneBoard returns a deep, independent copy. Per spec.md §5 this is
// O(1) in structure plus O(N) in bytes of masks — the arrays here are
// fixed-size and copied by value, so no pointer aliasing survives the
// clone. Used by Forcing Chain to simulate without mutating the real
// board.
func (b *Board) CloneBoard() BoardInterface {
	clone := *b
	return &clone
}

// Clone is the concrete-typed counterpart of CloneBoard, for callers
// (the solve loop, the oracle bridge, tests) that want a *Board back
// instead of the BoardInterface.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// ToValueString serialises the current values as an 81-character value
// string, '.' for empty cells — the round-trip counterpart of
// FromValues (spec.md §8).
func (b *Board) ToValueString() string {
	out := make([]byte, 81)
	for i, v := range b.value {
		if v == 0 {
			out[i] = '.'
		} else {
			out[i] = byte('0' + v)
		}
	}
	return string(out)
}

// ToCandidateString serialises the board as an ASCII candidate grid: one
// run per cell, single digit for givens/placed values, ascending digits
// for pencil marks, space-separated with one line per row. An empty cell
// with a single candidate is also written as one digit, so
// FromCandidateGrid reads it back as a given.
func (b *Board) ToCandidateString() string {
	out := make([]byte, 0, 81*10)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			idx := CellIndex(row, col)
			if col > 0 {
				out = append(out, ' ')
			}
			if b.value[idx] != 0 {
				out = append(out, byte('0'+b.value[idx]))
				continue
			}
			for _, d := range b.candidates[idx].ToSlice() {
				out = append(out, byte('0'+d))
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
