package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
	"humansudoku/pkg/constants"
)

// propagationResult is what one hypothetical branch produces: the cells
// it forces to a value (including the starting assumption itself), or a
// contradiction. Grounded on the teacher's techniques/forcing.go
// propagationResult/propagateSingles, adapted to the board.BoardInterface
// clone-and-simulate contract of spec.md §5/§9.
type propagationResult struct {
	placements    map[int]int
	contradiction bool
}

// propagateSingles assumes cell=digit on a clone of b, then repeatedly
// applies Naked/Hidden Single implications (spec.md §4.F Forcing Chain
// propagation) until nothing more fires or maxDepth propagation rounds
// have run. A contradiction is any error CloneBoard's SetCell surfaces — per
// spec.md §9 this engine recognises only the "assumption negates itself"
// contradiction style, which an empty candidate mask on a peer already
// captures.
func propagateSingles(b board.BoardInterface, cell, digit, maxDepth int) propagationResult {
	clone := b.CloneBoard()
	placements := map[int]int{cell: digit}
	if err := clone.SetCell(cell, digit); err != nil {
		return propagationResult{placements: placements, contradiction: true}
	}
	for depth := 0; depth < maxDepth; depth++ {
		placedThisRound := false
		for c := 0; c < 81; c++ {
			if clone.GetCell(c) != 0 {
				continue
			}
			if d, ok := clone.GetCandidatesAt(c).Only(); ok {
				if err := clone.SetCell(c, d); err != nil {
					return propagationResult{placements: placements, contradiction: true}
				}
				placements[c] = d
				placedThisRound = true
			}
		}
		for _, h := range board.AllHouses() {
			for d := 1; d <= 9; d++ {
				cells := clone.CellsWithDigitInUnit(h, d)
				if len(cells) != 1 {
					continue
				}
				c := cells[0]
				if clone.GetCell(c) != 0 {
					continue
				}
				if err := clone.SetCell(c, d); err != nil {
					return propagationResult{placements: placements, contradiction: true}
				}
				placements[c] = d
				placedThisRound = true
			}
		}
		if !placedThisRound {
			break
		}
	}
	return propagationResult{placements: placements}
}

// commonPlacements intersects the placement maps of every branch,
// excluding the assumed starting cells, returning cells every branch
// agrees forces to the same digit (spec.md §4.F Resolution: "the
// remaining branch's common placements are licensed").
func commonPlacements(branches []propagationResult, exclude map[int]bool) map[int]int {
	if len(branches) == 0 {
		return nil
	}
	common := map[int]int{}
	for c, d := range branches[0].placements {
		if exclude[c] {
			continue
		}
		common[c] = d
	}
	for _, br := range branches[1:] {
		for c, d := range common {
			if got, ok := br.placements[c]; !ok || got != d {
				delete(common, c)
			}
		}
	}
	return common
}

// DetectForcingChain implements spec.md §4.F Forcing Chain: it tries the
// cell-basis (a multi-candidate cell's candidates as the disjunction)
// before the unit-basis (a house/digit's candidate cells as the
// disjunction), returning the first resolvable chain.
func DetectForcingChain(b board.BoardInterface) *core.Action {
	if a := cellBasisForcingChain(b); a != nil {
		return a
	}
	return unitBasisForcingChain(b)
}

func cellBasisForcingChain(b board.BoardInterface) *core.Action {
	for cell := 0; cell < 81; cell++ {
		if b.GetCell(cell) != 0 {
			continue
		}
		digits := b.GetCandidatesAt(cell).ToSlice()
		if len(digits) < 2 {
			continue
		}
		a := resolveForcingBasis(b, digits, func(d int) (int, propagationResult) {
			return cell, propagateSingles(b, cell, d, constants.ForcingChainMaxDepth)
		}, fmt.Sprintf("assuming each candidate of %s in turn", core.FormatCell(cell)))
		if a != nil {
			return a
		}
	}
	return nil
}

func unitBasisForcingChain(b board.BoardInterface) *core.Action {
	for _, h := range board.AllHouses() {
		for d := 1; d <= 9; d++ {
			positions := b.CellsWithDigitInUnit(h, d)
			if len(positions) < 2 {
				continue
			}
			a := resolveForcingBasis(b, positions, func(pos int) (int, propagationResult) {
				return pos, propagateSingles(b, pos, d, constants.ForcingChainMaxDepth)
			}, fmt.Sprintf("assuming each cell of %s in turn for %d", h.Name(), d))
			if a != nil {
				return a
			}
		}
	}
	return nil
}

// resolveForcingBasis runs one branch per basis option, then applies
// spec.md §4.F's resolution rules: (1) if a single branch contradicts,
// its starting assumption is eliminated as a candidate; (2) otherwise,
// branches that agree on placements beyond their own assumption license
// those placements. Rule 1 is checked first and, applied to a bivalue
// cell-basis, yields the same deduction as placing the lone survivor —
// but as an elimination, the step form spec.md §8 scenario 4 documents.
func resolveForcingBasis(b board.BoardInterface, options []int, run func(int) (int, propagationResult), pattern string) *core.Action {
	var survivors []propagationResult
	assumed := map[int]bool{}
	var eliminations []core.Step
	var eliminatedCells []int
	for _, opt := range options {
		cell, res := run(opt)
		assumed[cell] = true
		if res.contradiction {
			digit := res.placements[cell]
			if b.GetCell(cell) == 0 && b.GetCandidatesAt(cell).Has(digit) {
				eliminations = append(eliminations, core.Step{Kind: core.Eliminate, Cell: cell, Digit: digit})
				eliminatedCells = append(eliminatedCells, cell)
			}
			continue
		}
		survivors = append(survivors, res)
	}
	if len(survivors) == 0 {
		return nil // board already contradictory; not this technique's job to report
	}
	if len(eliminations) > 0 {
		return core.NewAction(core.ForcingChain,
			fmt.Sprintf("Forcing Chain: %s, contradicting options are eliminated", pattern),
			eliminations, core.Highlights{Primary: cellRefs(eliminatedCells)})
	}
	common := commonPlacements(survivors, assumed)
	if len(common) == 0 {
		return nil
	}
	var steps []core.Step
	var cells []int
	for c, d := range common {
		if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(d) {
			steps = append(steps, core.Step{Kind: core.Place, Cell: c, Digit: d})
			cells = append(cells, c)
		}
	}
	if len(steps) == 0 {
		return nil
	}
	return core.NewAction(core.ForcingChain,
		fmt.Sprintf("Forcing Chain: %s, all surviving branches force the same placement", pattern),
		steps, core.Highlights{Primary: cellRefs(cells)})
}
