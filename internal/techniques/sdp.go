package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// DetectSkyscraper implements spec.md §4.F Skyscraper: two rows (or,
// symmetrically, two columns) each with exactly two candidates of a
// digit, sharing one column (row); the two non-shared cells' common
// peers lose the digit.
func DetectSkyscraper(b board.BoardInterface) *core.Action {
	if a := skyscraperOfType(b, board.Row); a != nil {
		return a
	}
	return skyscraperOfType(b, board.Column)
}

func skyscraperOfType(b board.BoardInterface, lineType board.HouseType) *core.Action {
	crossType := board.Column
	if lineType == board.Column {
		crossType = board.Row
	}
	for digit := 1; digit <= 9; digit++ {
		lines := fishHouses(b, lineType, digit, 2)
		for i := 0; i < len(lines); i++ {
			for j := i + 1; j < len(lines); j++ {
				cellsA := b.CellsWithDigitInUnit(lines[i], digit)
				cellsB := b.CellsWithDigitInUnit(lines[j], digit)
				if len(cellsA) != 2 || len(cellsB) != 2 {
					continue
				}
				_, freeA, freeB, ok := shareOneCross(cellsA, cellsB, crossType)
				if !ok {
					continue
				}
				pattern := board.NewCellSet(cellsA...).Union(board.NewCellSet(cellsB...))
				var steps []core.Step
				for _, c := range board.PeersOf[freeA].Intersect(board.PeersOf[freeB]).ToSlice() {
					if pattern.Has(c) {
						continue
					}
					if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(digit) {
						steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: digit})
					}
				}
				if len(steps) == 0 {
					continue
				}
				return core.NewAction(core.Skyscraper,
					fmt.Sprintf("Skyscraper: %d in %s and %s", digit, lines[i].Name(), lines[j].Name()),
					steps, core.Highlights{Primary: cellRefs([]int{freeA, freeB})})
			}
		}
	}
	return nil
}

// shareOneCross reports whether some cell of cellsA shares a cross-house
// (column, for row-based skyscraper) with some cell of cellsB. For the
// first such pair it finds, it returns the shared cross-house index and
// the two "free" cells; it does not check that the other two cells lie
// in different cross-houses.
func shareOneCross(cellsA, cellsB []int, crossType board.HouseType) (shared, freeA, freeB int, ok bool) {
	crossOf := board.ColOf
	if crossType == board.Row {
		crossOf = board.RowOf
	}
	for _, a := range cellsA {
		for _, bb := range cellsB {
			if crossOf(a) == crossOf(bb) {
				for _, other := range cellsA {
					if other != a {
						freeA = other
					}
				}
				for _, other := range cellsB {
					if other != bb {
						freeB = other
					}
				}
				return crossOf(a), freeA, freeB, true
			}
		}
	}
	return 0, 0, 0, false
}

// DetectTwoStringKite implements spec.md §4.F 2-String Kite: a row and a
// column each with exactly two candidates of a digit, one cell of each in
// a common box; the two cells outside that box meet at their row/column
// intersection, which loses the digit.
func DetectTwoStringKite(b board.BoardInterface) *core.Action {
	for digit := 1; digit <= 9; digit++ {
		rows := fishHouses(b, board.Row, digit, 2)
		cols := fishHouses(b, board.Column, digit, 2)
		for _, r := range rows {
			rowCells := b.CellsWithDigitInUnit(r, digit)
			if len(rowCells) != 2 {
				continue
			}
			for _, c := range cols {
				colCells := b.CellsWithDigitInUnit(c, digit)
				if len(colCells) != 2 {
					continue
				}
				rIn, rOut, cIn, cOut, ok := kiteMeetInBox(rowCells, colCells)
				if !ok {
					continue
				}
				target := board.CellIndex(board.RowOf(cOut), board.ColOf(rOut))
				if target == rIn || target == cIn || target == rOut || target == cOut {
					continue
				}
				if b.GetCell(target) != 0 || !b.GetCandidatesAt(target).Has(digit) {
					continue
				}
				return core.NewAction(core.TwoStringKite,
					fmt.Sprintf("2-String Kite: %d linking %s and %s", digit, r.Name(), c.Name()),
					[]core.Step{{Kind: core.Eliminate, Cell: target, Digit: digit}},
					core.Highlights{Primary: cellRefs([]int{rOut, cOut}), Secondary: cellRefs([]int{rIn, cIn})})
			}
		}
	}
	return nil
}

func kiteMeetInBox(rowCells, colCells []int) (rIn, rOut, cIn, cOut int, ok bool) {
	for _, rc := range rowCells {
		for _, cc := range colCells {
			if rc == cc {
				continue
			}
			if board.BoxOf(rc) == board.BoxOf(cc) {
				rIn = rc
				cIn = cc
				for _, other := range rowCells {
					if other != rc {
						rOut = other
					}
				}
				for _, other := range colCells {
					if other != cc {
						cOut = other
					}
				}
				return rIn, rOut, cIn, cOut, true
			}
		}
	}
	return 0, 0, 0, 0, false
}

// DetectRectangleElimination implements spec.md §4.F Empty Rectangle: a
// box whose candidates of a digit all lie in one row and one column of
// the box (not a single cell), combined with a strong link elsewhere, to
// eliminate the digit at the far corner.
func DetectRectangleElimination(b board.BoardInterface) *core.Action {
	for box := 0; box < 9; box++ {
		boxHouse := board.House(18 + box)
		for digit := 1; digit <= 9; digit++ {
			cells := b.CellsWithDigitInUnit(boxHouse, digit)
			if len(cells) < 2 || len(cells) > 4 {
				continue
			}
			erRow, erCol, ok := emptyRectangleCross(cells)
			if !ok {
				continue
			}
			if a := emptyRectangleElim(b, digit, erRow, erCol, box, false); a != nil {
				return a
			}
			if a := emptyRectangleElim(b, digit, erRow, erCol, box, true); a != nil {
				return a
			}
		}
	}
	return nil
}

// emptyRectangleCross finds a (row, col) pair such that every cell is in
// that row or that column — the "L" shape an empty rectangle needs.
func emptyRectangleCross(cells []int) (row, col int, ok bool) {
	rows := map[int]bool{}
	cols := map[int]bool{}
	for _, c := range cells {
		rows[board.RowOf(c)] = true
		cols[board.ColOf(c)] = true
	}
	for r := range rows {
		for c := range cols {
			good := true
			for _, cell := range cells {
				if board.RowOf(cell) != r && board.ColOf(cell) != c {
					good = false
					break
				}
			}
			if good {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// emptyRectangleElim looks for a strong link in a row (swapped=false) or
// column (swapped=true) on erCol/erRow outside the box and eliminates the
// digit at the resulting far corner.
func emptyRectangleElim(b board.BoardInterface, digit, erRow, erCol, box int, swapped bool) *core.Action {
	lineIdx, crossIdx := erCol, erRow
	lineType, crossType := board.Column, board.Row
	if swapped {
		lineIdx, crossIdx = erRow, erCol
		lineType, crossType = board.Row, board.Column
	}
	var line board.House
	if lineType == board.Column {
		line = board.House(9 + lineIdx)
	} else {
		line = board.House(lineIdx)
	}
	for _, anchor := range b.CellsWithDigitInUnit(line, digit) {
		if board.BoxOf(anchor) == box {
			continue
		}
		var crossHouse board.House
		if crossType == board.Row {
			crossHouse = board.House(board.RowOf(anchor))
		} else {
			crossHouse = board.House(9 + board.ColOf(anchor))
		}
		linkCells := b.CellsWithDigitInUnit(crossHouse, digit)
		if len(linkCells) != 2 {
			continue
		}
		var other int
		for _, c := range linkCells {
			if c != anchor {
				other = c
			}
		}
		var target int
		if lineType == board.Column {
			target = board.CellIndex(crossIdx, board.ColOf(other))
		} else {
			target = board.CellIndex(board.RowOf(other), crossIdx)
		}
		if board.BoxOf(target) == box || b.GetCell(target) != 0 || !b.GetCandidatesAt(target).Has(digit) {
			continue
		}
		return core.NewAction(core.RectangleElimination,
			fmt.Sprintf("Empty Rectangle: %d in b%d linked via %s", digit, box+1, crossHouse.Name()),
			[]core.Step{{Kind: core.Eliminate, Cell: target, Digit: digit}},
			core.Highlights{Primary: cellRefs([]int{anchor, other})})
	}
	return nil
}
