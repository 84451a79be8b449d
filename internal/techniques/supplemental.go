package techniques

import (
	"fmt"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// UniqueRectangleTag is outside spec.md's closed technique tag set
// (§6) — it is a SPEC_FULL.md §12 supplement, registered at
// constants.TierSupplemental and disabled by default so it never
// appears in a host's tag set unless explicitly enabled.
const UniqueRectangleTag core.TechniqueTag = "UniqueRectangle"

// DetectUniqueRectangleType1 is the simplest Unique Rectangle pattern:
// four cells at the corners of two rows/two columns/two boxes, three of
// them bivalue on the same pair {x,y}; the fourth cannot also be
// restricted to {x,y} (that would make the grid's solution non-unique),
// so x and y are eliminated from it, leaving its other candidates.
// Grounded on the teacher's internal/sudoku/human/techniques/ur.go
// DetectUniqueRectangle; adapted to the DigitMask/CellSet model and
// demoted to a disabled-by-default supplement since spec.md does not
// require it.
func DetectUniqueRectangleType1(b board.BoardInterface) *core.Action {
	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					a := board.CellIndex(r1, c1)
					bb := board.CellIndex(r1, c2)
					cc := board.CellIndex(r2, c1)
					d := board.CellIndex(r2, c2)
					if board.BoxOf(a) == board.BoxOf(cc) && board.BoxOf(bb) == board.BoxOf(d) && board.BoxOf(a) != board.BoxOf(bb) {
						if action := checkURQuad(b, a, bb, cc, d); action != nil {
							return action
						}
					}
				}
			}
		}
	}
	return nil
}

func checkURQuad(b board.BoardInterface, cells ...int) *core.Action {
	for _, c := range cells {
		if b.GetCell(c) != 0 {
			return nil
		}
	}
	floor := -1
	for i, c := range cells {
		if b.GetCandidatesAt(c).Count() != 2 {
			if floor != -1 {
				return nil // more than one non-bivalue cell
			}
			floor = i
			continue
		}
	}
	if floor == -1 {
		return nil
	}
	pair := board.DigitMask(0)
	for i, c := range cells {
		if i == floor {
			continue
		}
		m := b.GetCandidatesAt(c)
		if pair == 0 {
			pair = m
		} else if !pair.Equals(m) {
			return nil
		}
	}
	roof := cells[floor]
	roofMask := b.GetCandidatesAt(roof)
	if !pair.IsSubsetOf(roofMask) || roofMask.Equals(pair) {
		return nil
	}
	return core.NewAction(UniqueRectangleTag,
		fmt.Sprintf("Unique Rectangle: %s would duplicate %s", core.FormatCell(roof), pair),
		[]core.Step{
			{Kind: core.Eliminate, Cell: roof, Digit: pair.ToSlice()[0]},
			{Kind: core.Eliminate, Cell: roof, Digit: pair.ToSlice()[1]},
		},
		core.Highlights{Primary: cellRefs(cells)})
}

// Stubs: spec.md §9 names these four as explicitly unimplemented and
// asks that a stub exist without guessing behaviour. Each is registered
// in solve's registry at TierSupplemental with Enabled: false, so a host
// never sees them fire; they exist so the registry's catalogue is
// complete and future implementers have a named slot.

// DetectKrakenFish is not implemented — spec.md §9 lists Kraken Fish as
// an explicit stub.
func DetectKrakenFish(b board.BoardInterface) *core.Action { return nil }

// DetectAlmostLockedCandidates is not implemented — spec.md §9 lists
// Almost Locked Candidates as an explicit stub.
func DetectAlmostLockedCandidates(b board.BoardInterface) *core.Action { return nil }

// DetectTurbotFish is not implemented — spec.md §9 lists Turbot Fish as
// an explicit stub.
func DetectTurbotFish(b board.BoardInterface) *core.Action { return nil }

// DetectForcingNet is not implemented — spec.md §9 lists Forcing Net as
// an explicit stub; DetectForcingChain covers the required chain
// technique.
func DetectForcingNet(b board.BoardInterface) *core.Action { return nil }
