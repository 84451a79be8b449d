package techniques

import (
	"fmt"
	"strings"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// DetectNakedSubset searches sizes 2..4 in turn for a naked pair/triple/
// quad: an n-subset of a house's empty cells whose candidates' union has
// exactly n digits, eliminating those digits from the rest of the house
// (spec.md §4.F NakedSubset). Grounded on the teacher's pairs.go
// DetectNakedPair, generalized over n rather than duplicated per size.
func DetectNakedSubset(b board.BoardInterface) *core.Action {
	for n := 2; n <= 4; n++ {
		if a := nakedSubsetOfSize(b, n); a != nil {
			return a
		}
	}
	return nil
}

func nakedSubsetOfSize(b board.BoardInterface, n int) *core.Action {
	for _, h := range board.AllHouses() {
		empties := emptyCellsOf(b, h)
		if len(empties) <= n {
			continue
		}
		var found *core.Action
		combinations(empties, n, func(combo []int) bool {
			union := board.DigitMask(0)
			for _, c := range combo {
				union = union.Union(b.GetCandidatesAt(c))
			}
			if union.Count() != n {
				return true
			}
			var steps []core.Step
			inCombo := board.NewCellSet(combo...)
			for _, c := range empties {
				if inCombo.Has(c) {
					continue
				}
				for _, d := range union.ToSlice() {
					if b.GetCandidatesAt(c).Has(d) {
						steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: d})
					}
				}
			}
			if len(steps) == 0 {
				return true
			}
			found = core.NewAction(core.NakedSubset,
				fmt.Sprintf("%s form a naked %s in %s", cellList(combo), subsetName(n), h.Name()),
				steps, core.Highlights{Primary: cellRefs(combo)})
			return false
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// DetectHiddenSubset searches sizes 2..4 for a hidden pair/triple/quad:
// an n-subset of digits confined, within a house, to n cells, eliminating
// every other candidate from those cells (spec.md §4.F HiddenSubset).
func DetectHiddenSubset(b board.BoardInterface) *core.Action {
	for n := 2; n <= 4; n++ {
		if a := hiddenSubsetOfSize(b, n); a != nil {
			return a
		}
	}
	return nil
}

func hiddenSubsetOfSize(b board.BoardInterface, n int) *core.Action {
	for _, h := range board.AllHouses() {
		var digits []int
		for d := 1; d <= 9; d++ {
			if len(b.CellsWithDigitInUnit(h, d)) > 0 {
				digits = append(digits, d)
			}
		}
		if len(digits) <= n {
			continue
		}
		var found *core.Action
		combinations(digits, n, func(combo []int) bool {
			cellSet := board.EmptyCellSet
			for _, d := range combo {
				for _, c := range b.CellsWithDigitInUnit(h, d) {
					cellSet = cellSet.With(c)
				}
			}
			if cellSet.Size() != n {
				return true
			}
			comboMask := board.NewDigitMask(combo...)
			var steps []core.Step
			for _, c := range cellSet.ToSlice() {
				extra := b.GetCandidatesAt(c).Subtract(comboMask)
				for _, d := range extra.ToSlice() {
					steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: d})
				}
			}
			if len(steps) == 0 {
				return true
			}
			found = core.NewAction(core.HiddenSubset,
				fmt.Sprintf("%s form a hidden %s in %s", digitList(combo), subsetName(n), h.Name()),
				steps, core.Highlights{Primary: cellRefs(cellSet.ToSlice())})
			return false
		})
		if found != nil {
			return found
		}
	}
	return nil
}

func emptyCellsOf(b board.BoardInterface, h board.House) []int {
	var out []int
	for _, c := range board.HouseCells[h].ToSlice() {
		if b.GetCell(c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func subsetName(n int) string {
	switch n {
	case 2:
		return "pair"
	case 3:
		return "triple"
	default:
		return "quad"
	}
}

func cellList(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = core.FormatCell(c)
	}
	return strings.Join(parts, ",")
}

func digitList(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ",")
}
