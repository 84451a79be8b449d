package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// fishHouses returns every house of t whose cells-with-digit count for d
// is between 1 and max (inclusive), the candidate pool for base or cover
// houses of a fish search.
func fishHouses(b board.BoardInterface, t board.HouseType, digit, max int) []board.House {
	var out []board.House
	for _, h := range board.HousesOfType(t) {
		n := len(b.CellsWithDigitInUnit(h, digit))
		if n >= 1 && n <= max {
			out = append(out, h)
		}
	}
	return out
}

func houseCandidateCells(b board.BoardInterface, houses []board.House, digit int) board.CellSet {
	cells := board.EmptyCellSet
	for _, h := range houses {
		cells = cells.Union(board.HouseCells[h])
	}
	return cells.Intersect(candidatesWithDigit(b, digit))
}

func candidatesWithDigit(b board.BoardInterface, digit int) board.CellSet {
	var s board.CellSet
	for c := 0; c < 81; c++ {
		if b.GetCell(c) == 0 && b.GetCandidatesAt(c).Has(digit) {
			s = s.With(c)
		}
	}
	return s
}

// coversTouchedBy returns, among the houses of coverTypes, those that
// contain at least one cell of cells.
func coversTouchedBy(cells board.CellSet, coverTypes []board.HouseType, exclude []board.House) []board.House {
	excl := make(map[board.House]bool, len(exclude))
	for _, h := range exclude {
		excl[h] = true
	}
	var out []board.House
	for _, t := range coverTypes {
		for _, h := range board.HousesOfType(t) {
			if excl[h] {
				continue
			}
			if !board.HouseCells[h].Intersect(cells).IsEmpty() {
				out = append(out, h)
			}
		}
	}
	return out
}

func houseIndices(hs []board.House) []int {
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = int(h)
	}
	return out
}

func housesFromIndices(idxs []int) []board.House {
	out := make([]board.House, len(idxs))
	for i, idx := range idxs {
		out[i] = board.House(idx)
	}
	return out
}

// fishNames maps fish size to its classic name for explanation strings.
var fishNames = map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish"}

// DetectBasicFish searches sizes 2..4, rows-vs-columns and columns-vs-rows,
// for a basic fish: n base houses of one line type whose digit candidates
// are covered exactly by n houses of the other line type (spec.md §4.F
// Fish, basic case). Grounded on the teacher's swordfish.go/
// xwing_finned.go structure, generalized over n and direction.
func DetectBasicFish(b board.BoardInterface) *core.Action {
	for n := 2; n <= 4; n++ {
		for _, dir := range [][2]board.HouseType{{board.Row, board.Column}, {board.Column, board.Row}} {
			for digit := 1; digit <= 9; digit++ {
				if a := basicFishOfSize(b, n, dir[0], dir[1], digit); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

func basicFishOfSize(b board.BoardInterface, n int, baseType, coverType board.HouseType, digit int) *core.Action {
	pool := fishHouses(b, baseType, digit, n)
	if len(pool) < n {
		return nil
	}
	var found *core.Action
	combinations(houseIndices(pool), n, func(combo []int) bool {
		bases := housesFromIndices(combo)
		baseCells := houseCandidateCells(b, bases, digit)
		if baseCells.IsEmpty() {
			return true
		}
		covers := coversTouchedBy(baseCells, []board.HouseType{coverType}, nil)
		if len(covers) != n {
			return true
		}
		coverCells := houseCandidateCells(b, covers, digit)
		elim := coverCells.Subtract(baseCells)
		var steps []core.Step
		for _, c := range elim.ToSlice() {
			steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: digit})
		}
		if len(steps) == 0 {
			return true
		}
		found = core.NewAction(core.BasicFish,
			fmt.Sprintf("%s: %d confined to %s, covered by %s", fishNames[n], digit, houseNames(bases), houseNames(covers)),
			steps, core.Highlights{Primary: cellRefs(baseCells.ToSlice())})
		return false
	})
	return found
}

// DetectFinnedFish relaxes DetectBasicFish's exact-cover requirement:
// base cells left uncovered by the chosen n cover houses are fins, and an
// elimination is licensed only for a covered, non-base cell that is a
// peer of every fin (spec.md §4.F Fish, finned/sashimi case — the two are
// not distinguished, per spec.md §9's open question).
func DetectFinnedFish(b board.BoardInterface) *core.Action {
	for n := 2; n <= 4; n++ {
		for _, dir := range [][2]board.HouseType{{board.Row, board.Column}, {board.Column, board.Row}} {
			for digit := 1; digit <= 9; digit++ {
				if a := finnedFishOfSize(b, n, dir[0], dir[1], digit, 2); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

const finFishMaxExtraBase = 2

func finnedFishOfSize(b board.BoardInterface, n int, baseType, coverType board.HouseType, digit, maxFins int) *core.Action {
	pool := fishHouses(b, baseType, digit, n+1)
	if len(pool) < n {
		return nil
	}
	var found *core.Action
	combinations(houseIndices(pool), n, func(combo []int) bool {
		bases := housesFromIndices(combo)
		baseCells := houseCandidateCells(b, bases, digit)
		if baseCells.Size() > n+finFishMaxExtraBase {
			return true
		}
		allCovers := coversTouchedBy(baseCells, []board.HouseType{coverType}, nil)
		if len(allCovers) <= n || len(allCovers) > n+maxFins {
			return true
		}
		combinations(houseIndices(allCovers), n, func(coverCombo []int) bool {
			covers := housesFromIndices(coverCombo)
			coverCells := houseCandidateCells(b, covers, digit)
			fins := baseCells.Subtract(coverCells)
			if fins.IsEmpty() || fins.Size() > maxFins {
				return true
			}
			finSlice := fins.ToSlice()
			elim := coverCells.Subtract(baseCells)
			var steps []core.Step
			for _, c := range elim.ToSlice() {
				if !b.GetCandidatesAt(c).Has(digit) {
					continue
				}
				seesAllFins := true
				for _, f := range finSlice {
					if !board.ArePeers(c, f) {
						seesAllFins = false
						break
					}
				}
				if seesAllFins {
					steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: digit})
				}
			}
			if len(steps) == 0 {
				return true
			}
			found = core.NewAction(core.FinnedFish,
				fmt.Sprintf("Finned %s: %d in %s, fin at %s", fishNames[n], digit, houseNames(bases), cellList(finSlice)),
				steps, core.Highlights{Primary: cellRefs(baseCells.Subtract(fins).ToSlice()), Secondary: cellRefs(finSlice)})
			return false
		})
		return found == nil
	})
	return found
}

// DetectFrankenFish widens the base or cover set to include boxes
// alongside one line type, requiring at least one box among the bases
// (spec.md §4.F Fish, franken case). It reuses the exact-cover rule of
// DetectBasicFish since a franken fish without fins is still a clean
// elimination. Finned franken fish are not searched: DetectFinnedFish
// handles fins for row/column fish only, and DetectMutantFish also
// requires an exact cover.
func DetectFrankenFish(b board.BoardInterface) *core.Action {
	for n := 2; n <= 4; n++ {
		for _, baseTypes := range [][]board.HouseType{{board.Row, board.Box}, {board.Column, board.Box}} {
			coverType := board.Column
			if baseTypes[0] == board.Column {
				coverType = board.Row
			}
			for digit := 1; digit <= 9; digit++ {
				if a := mixedFishOfSize(b, n, baseTypes, []board.HouseType{coverType}, digit, core.FrankenFish, "Franken", true); a != nil {
					return a
				}
			}
		}
	}
	return nil
}

// DetectMutantFish allows both base and cover sets to mix all three
// house types freely, the most general fish shape in spec.md §4.F.
func DetectMutantFish(b board.BoardInterface) *core.Action {
	all := []board.HouseType{board.Row, board.Column, board.Box}
	for n := 2; n <= 3; n++ { // capped at size 3; size-4 mutant fish are not searched
		for digit := 1; digit <= 9; digit++ {
			if a := mixedFishOfSize(b, n, all, all, digit, core.MutantFish, "Mutant", false); a != nil {
				return a
			}
		}
	}
	return nil
}

// housesAreCellDisjoint reports whether every pair of hs shares no cell.
// Distinct house indices alone don't guarantee this once types are mixed:
// a row and a box overlap in exactly 3 cells, so pooling row/column/box
// indices together (as the Franken/Mutant base and cover searches do)
// can draw combinations that look disjoint by index but aren't by cell.
func housesAreCellDisjoint(hs []board.House) bool {
	for i := 0; i < len(hs); i++ {
		for j := i + 1; j < len(hs); j++ {
			if !board.HouseCells[hs[i]].Intersect(board.HouseCells[hs[j]]).IsEmpty() {
				return false
			}
		}
	}
	return true
}

// mixedFishOfSize is the Franken/Mutant engine: base houses are drawn
// from baseTypes, covers from coverTypes, with an exact-cover (no fin)
// requirement. Base houses must be pairwise cell-disjoint and so must
// the chosen covers (spec.md §4.F Fish, Franken/mutant case) — index
// distinctness from combinations is not enough once the pool mixes house
// types, so both sets are gated explicitly. requireBox forces at least
// one box among the chosen bases, distinguishing Franken from a
// same-line-type basic fish.
func mixedFishOfSize(b board.BoardInterface, n int, baseTypes, coverTypes []board.HouseType, digit int, tag core.TechniqueTag, label string, requireBox bool) *core.Action {
	var pool []board.House
	for _, t := range baseTypes {
		pool = append(pool, fishHouses(b, t, digit, n)...)
	}
	if len(pool) < n {
		return nil
	}
	var found *core.Action
	combinations(houseIndices(pool), n, func(combo []int) bool {
		bases := housesFromIndices(combo)
		if !housesAreCellDisjoint(bases) {
			return true
		}
		if requireBox {
			hasBox := false
			for _, h := range bases {
				if h.Type() == board.Box {
					hasBox = true
					break
				}
			}
			if !hasBox {
				return true
			}
		}
		baseCells := houseCandidateCells(b, bases, digit)
		if baseCells.IsEmpty() {
			return true
		}
		covers := coversTouchedBy(baseCells, coverTypes, bases)
		if len(covers) != n || !housesAreCellDisjoint(covers) {
			return true
		}
		coverCells := houseCandidateCells(b, covers, digit)
		elim := coverCells.Subtract(baseCells)
		var steps []core.Step
		for _, c := range elim.ToSlice() {
			steps = append(steps, core.Step{Kind: core.Eliminate, Cell: c, Digit: digit})
		}
		if len(steps) == 0 {
			return true
		}
		found = core.NewAction(tag,
			fmt.Sprintf("%s fish: %d confined to %s, covered by %s", label, digit, houseNames(bases), houseNames(covers)),
			steps, core.Highlights{Primary: cellRefs(baseCells.ToSlice())})
		return false
	})
	return found
}

func houseNames(hs []board.House) string {
	s := ""
	for i, h := range hs {
		if i > 0 {
			s += ","
		}
		s += h.Name()
	}
	return s
}
