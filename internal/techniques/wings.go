package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

func bivalueCells(b board.BoardInterface) []int {
	var out []int
	for c := 0; c < 81; c++ {
		if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Count() == 2 {
			out = append(out, c)
		}
	}
	return out
}

// DetectXYWing implements spec.md §4.F XY-Wing: a bivalue pivot {x,y}
// with two pincers {x,z} and {y,z} that each see the pivot; z is
// eliminated from every cell seeing both pincers.
func DetectXYWing(b board.BoardInterface) *core.Action {
	bv := bivalueCells(b)
	for _, pivot := range bv {
		xy := b.GetCandidatesAt(pivot)
		digits := xy.ToSlice()
		if len(digits) != 2 {
			continue
		}
		x, y := digits[0], digits[1]
		for _, p1 := range bv {
			if p1 == pivot || !board.ArePeers(pivot, p1) {
				continue
			}
			c1 := b.GetCandidatesAt(p1)
			if !(c1.Has(x) && c1.Count() == 2) {
				continue
			}
			z, _ := c1.Subtract(board.NewDigitMask(x)).Only()
			for _, p2 := range bv {
				if p2 == pivot || p2 == p1 || !board.ArePeers(pivot, p2) {
					continue
				}
				c2 := b.GetCandidatesAt(p2)
				if !(c2.Has(y) && c2.Count() == 2) {
					continue
				}
				z2, _ := c2.Subtract(board.NewDigitMask(y)).Only()
				if z2 != z {
					continue
				}
				var steps []core.Step
				for _, c := range board.PeersOf[p1].Intersect(board.PeersOf[p2]).ToSlice() {
					if c == pivot {
						continue
					}
					if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(z) {
						steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: z})
					}
				}
				if len(steps) == 0 {
					continue
				}
				return core.NewAction(core.XYWing,
					fmt.Sprintf("XY-Wing: pivot %s {%d,%d}, pincers %s,%s share %d",
						core.FormatCell(pivot), x, y, core.FormatCell(p1), core.FormatCell(p2), z),
					steps, core.Highlights{Primary: cellRefs([]int{pivot, p1, p2})})
			}
		}
	}
	return nil
}

// DetectXYZWing implements spec.md §4.F XYZ-Wing: a trivalue pivot
// {x,y,z} with two pincers {x,z} and {y,z} that each see the pivot; z is
// eliminated from every cell seeing the pivot and both pincers.
func DetectXYZWing(b board.BoardInterface) *core.Action {
	for pivot := 0; pivot < 81; pivot++ {
		if b.GetCell(pivot) != 0 || b.GetCandidatesAt(pivot).Count() != 3 {
			continue
		}
		digits := b.GetCandidatesAt(pivot).ToSlice()
		for zi, z := range digits {
			others := append(append([]int{}, digits[:zi]...), digits[zi+1:]...)
			if len(others) != 2 {
				continue
			}
			x, y := others[0], others[1]
			var pincersX, pincersY []int
			for _, p := range board.PeersOf[pivot].ToSlice() {
				if b.GetCell(p) != 0 || b.GetCandidatesAt(p).Count() != 2 {
					continue
				}
				c := b.GetCandidatesAt(p)
				if c.Equals(board.NewDigitMask(x, z)) {
					pincersX = append(pincersX, p)
				}
				if c.Equals(board.NewDigitMask(y, z)) {
					pincersY = append(pincersY, p)
				}
			}
			for _, p1 := range pincersX {
				for _, p2 := range pincersY {
					if p1 == p2 {
						continue
					}
					var steps []core.Step
					seen := board.PeersOf[pivot].Intersect(board.PeersOf[p1]).Intersect(board.PeersOf[p2])
					for _, c := range seen.ToSlice() {
						if c == pivot || c == p1 || c == p2 {
							continue
						}
						if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(z) {
							steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: z})
						}
					}
					if len(steps) == 0 {
						continue
					}
					return core.NewAction(core.XYZWing,
						fmt.Sprintf("XYZ-Wing: pivot %s {%d,%d,%d}, pincers %s,%s share %d",
							core.FormatCell(pivot), x, y, z, core.FormatCell(p1), core.FormatCell(p2), z),
						steps, core.Highlights{Primary: cellRefs([]int{pivot, p1, p2})})
				}
			}
		}
	}
	return nil
}

// DetectWWing implements spec.md §4.F W-Wing: two bivalue cells sharing
// the pair {x,y}, not themselves peers, connected by a strong link on y
// in some house; x is eliminated from cells seeing both bivalue cells.
func DetectWWing(b board.BoardInterface) *core.Action {
	bv := bivalueCells(b)
	for i := 0; i < len(bv); i++ {
		for j := i + 1; j < len(bv); j++ {
			a1, a2 := bv[i], bv[j]
			if board.ArePeers(a1, a2) {
				continue
			}
			m1, m2 := b.GetCandidatesAt(a1), b.GetCandidatesAt(a2)
			if !m1.Equals(m2) {
				continue
			}
			digits := m1.ToSlice()
			if len(digits) != 2 {
				continue
			}
			for _, y := range digits {
				x := digits[0]
				if x == y {
					x = digits[1]
				}
				if a := tryWWingLink(b, a1, a2, x, y); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

func tryWWingLink(b board.BoardInterface, a1, a2, x, y int) *core.Action {
	for _, h := range board.AllHouses() {
		cells := b.CellsWithDigitInUnit(h, y)
		if len(cells) != 2 {
			continue
		}
		c0, c1 := cells[0], cells[1]
		linksA1A2 := (board.ArePeers(c0, a1) && board.ArePeers(c1, a2)) || (board.ArePeers(c0, a2) && board.ArePeers(c1, a1))
		if !linksA1A2 {
			continue
		}
		var steps []core.Step
		for _, c := range board.PeersOf[a1].Intersect(board.PeersOf[a2]).ToSlice() {
			if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(x) {
				steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: x})
			}
		}
		if len(steps) == 0 {
			continue
		}
		return core.NewAction(core.WWing,
			fmt.Sprintf("W-Wing: %s,%s share {%d,%d}, linked on %d via %s",
				core.FormatCell(a1), core.FormatCell(a2), x, y, y, h.Name()),
			steps, core.Highlights{Primary: cellRefs([]int{a1, a2}), Secondary: cellRefs([]int{c0, c1})})
	}
	return nil
}
