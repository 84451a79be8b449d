// Package techniques implements the detection rules of spec.md §4.F —
// one function per technique family, each taking a board.BoardInterface
// and returning a *core.Action or nil. Grounded throughout on the
// teacher's internal/sudoku/human/techniques package (simple.go,
// pairs.go, swordfish.go, xwing_finned.go, skyscraper.go, forcing.go),
// generalized where the teacher special-cased by size or house type.
package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// DetectFullHouse finds a house with exactly one empty cell and places
// the one digit missing from it (spec.md §4.F FullHouse).
func DetectFullHouse(b board.BoardInterface) *core.Action {
	for _, h := range board.AllHouses() {
		empty := -1
		sum := 0
		count := 0
		for _, c := range board.HouseCells[h].ToSlice() {
			if v := b.GetCell(c); v == 0 {
				empty = c
				count++
			} else {
				sum += v
			}
		}
		if count == 1 {
			digit := 45 - sum
			return core.NewAction(core.FullHouse,
				fmt.Sprintf("%s is the only missing cell in %s", core.FormatCell(empty), h.Name()),
				[]core.Step{{Kind: core.Place, Cell: empty, Digit: digit}},
				core.Highlights{Primary: []core.CellRef{cellRef(empty)}})
		}
	}
	return nil
}

// DetectNakedSingle finds an empty cell with exactly one candidate and
// places it (spec.md §4.F NakedSingle).
func DetectNakedSingle(b board.BoardInterface) *core.Action {
	for c := 0; c < 81; c++ {
		if b.GetCell(c) != 0 {
			continue
		}
		if d, ok := b.GetCandidatesAt(c).Only(); ok {
			return core.NewAction(core.NakedSingle,
				fmt.Sprintf("%d is the only possible value to fill %s", d, core.FormatCell(c)),
				[]core.Step{{Kind: core.Place, Cell: c, Digit: d}},
				core.Highlights{Primary: []core.CellRef{cellRef(c)}})
		}
	}
	return nil
}

// DetectHiddenSingle finds a house/digit pair where only one cell of the
// house can carry the digit and places it there (spec.md §4.F
// HiddenSingle).
func DetectHiddenSingle(b board.BoardInterface) *core.Action {
	for _, h := range board.AllHouses() {
		for d := 1; d <= 9; d++ {
			cells := b.CellsWithDigitInUnit(h, d)
			if len(cells) == 1 {
				c := cells[0]
				return core.NewAction(core.HiddenSingle,
					fmt.Sprintf("%d is only possible in %s within %s", d, core.FormatCell(c), h.Name()),
					[]core.Step{{Kind: core.Place, Cell: c, Digit: d}},
					core.Highlights{Primary: []core.CellRef{cellRef(c)}})
			}
		}
	}
	return nil
}

// DetectLockedCandidates implements both Pointing (box restricts a line)
// and Claiming (line restricts a box) halves of spec.md §4.F
// LockedCandidates: for two houses of distinct types (box/line) whose
// intersection carries all of a digit's candidates in one of them, the
// digit is eliminated from the other house outside the intersection.
func DetectLockedCandidates(b board.BoardInterface) *core.Action {
	if a := lockedCandidatesBoxToLine(b); a != nil {
		return a
	}
	return lockedCandidatesLineToBox(b)
}

func lockedCandidatesBoxToLine(b board.BoardInterface) *core.Action {
	for box := 0; box < 9; box++ {
		boxHouse := board.House(18 + box)
		for d := 1; d <= 9; d++ {
			cells := b.CellsWithDigitInUnit(boxHouse, d)
			if len(cells) < 2 {
				continue
			}
			if line, ok := sameRow(cells); ok {
				if a := eliminateFromHouseOutside(b, board.House(line), boxHouse, d, core.LockedCandidates,
					fmt.Sprintf("in %s, %d can only be in %s & %s", boxHouse.Name(), d, board.House(line).Name(), boxHouse.Name())); a != nil {
					return a
				}
			}
			if line, ok := sameCol(cells); ok {
				if a := eliminateFromHouseOutside(b, board.House(line), boxHouse, d, core.LockedCandidates,
					fmt.Sprintf("in %s, %d can only be in %s & %s", boxHouse.Name(), d, board.House(line).Name(), boxHouse.Name())); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

func lockedCandidatesLineToBox(b board.BoardInterface) *core.Action {
	for _, t := range []board.HouseType{board.Row, board.Column} {
		for _, h := range board.HousesOfType(t) {
			for d := 1; d <= 9; d++ {
				cells := b.CellsWithDigitInUnit(h, d)
				if len(cells) < 2 {
					continue
				}
				box := board.BoxOf(cells[0])
				same := true
				for _, c := range cells[1:] {
					if board.BoxOf(c) != box {
						same = false
						break
					}
				}
				if !same {
					continue
				}
				boxHouse := board.House(18 + box)
				if a := eliminateFromHouseOutside(b, boxHouse, h, d, core.LockedCandidates,
					fmt.Sprintf("in %s, %d can only be in %s & %s", h.Name(), d, h.Name(), boxHouse.Name())); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

// eliminateFromHouseOutside eliminates digit d from every cell of target
// that is not also in exclude, returning nil if nothing changes.
func eliminateFromHouseOutside(b board.BoardInterface, target, exclude board.House, d int, tag core.TechniqueTag, pattern string) *core.Action {
	var steps []core.Step
	for _, c := range board.HouseCells[target].Subtract(board.HouseCells[exclude]).ToSlice() {
		if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(d) {
			steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: d})
		}
	}
	if len(steps) == 0 {
		return nil
	}
	return core.NewAction(tag, pattern, steps, core.Highlights{Primary: cellRefs(board.HouseCells[exclude].ToSlice())})
}

func sameRow(cells []int) (int, bool) {
	row := board.RowOf(cells[0])
	for _, c := range cells[1:] {
		if board.RowOf(c) != row {
			return 0, false
		}
	}
	return row, true
}

func sameCol(cells []int) (int, bool) {
	col := board.ColOf(cells[0])
	for _, c := range cells[1:] {
		if board.ColOf(c) != col {
			return 0, false
		}
	}
	return 9 + col, true
}

func cellRef(idx int) core.CellRef {
	return core.CellRef{Row: board.RowOf(idx), Col: board.ColOf(idx)}
}

func cellRefs(idxs []int) []core.CellRef {
	out := make([]core.CellRef, len(idxs))
	for i, idx := range idxs {
		out[i] = cellRef(idx)
	}
	return out
}
