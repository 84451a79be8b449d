// Package solve implements the technique registry and solve loop of
// spec.md §4.E/§4.G: the ordered catalogue of techniques a board is
// tried against, and the step/loop drivers a host calls. Grounded on
// the teacher's internal/sudoku/human/technique_registry.go
// TechniqueDescriptor/NewTechniqueRegistry pattern.
package solve

import (
	"humansudoku/internal/board"
	"humansudoku/internal/core"
	"humansudoku/internal/techniques"
	"humansudoku/pkg/constants"
)

// Detector is the shape every technique function in internal/techniques
// has: look at a board, return the first Action found or nil.
type Detector func(board.BoardInterface) *core.Action

// Descriptor names, tiers, and enables one registry entry. Tier and
// Enabled let a host narrow the catalogue (spec.md §4.E "a host may
// restrict the active set by tier") without touching the ordering.
type Descriptor struct {
	Tag     core.TechniqueTag
	Slug    string
	Tier    string
	Detect  Detector
	Enabled bool
}

// DefaultRegistry is the catalogue in spec.md §4.E's default order:
// easiest, most-common techniques first, so solve_one_step always
// reports the technique a human would reach for first. Supplemental
// entries (not in spec.md's closed tag set) sit at the end, disabled.
var DefaultRegistry = []Descriptor{
	{core.FullHouse, "full-house", constants.TierSimple, techniques.DetectFullHouse, true},
	{core.HiddenSingle, "hidden-single", constants.TierSimple, techniques.DetectHiddenSingle, true},
	{core.NakedSingle, "naked-single", constants.TierSimple, techniques.DetectNakedSingle, true},
	{core.LockedCandidates, "locked-candidates", constants.TierMedium, techniques.DetectLockedCandidates, true},
	{core.NakedSubset, "naked-subset", constants.TierMedium, techniques.DetectNakedSubset, true},
	{core.HiddenSubset, "hidden-subset", constants.TierMedium, techniques.DetectHiddenSubset, true},
	{core.BasicFish, "basic-fish", constants.TierHard, techniques.DetectBasicFish, true},
	{core.Skyscraper, "skyscraper", constants.TierHard, techniques.DetectSkyscraper, true},
	{core.TwoStringKite, "two-string-kite", constants.TierHard, techniques.DetectTwoStringKite, true},
	{core.RectangleElimination, "rectangle-elimination", constants.TierHard, techniques.DetectRectangleElimination, true},
	{core.XYWing, "xy-wing", constants.TierHard, techniques.DetectXYWing, true},
	{core.XYZWing, "xyz-wing", constants.TierHard, techniques.DetectXYZWing, true},
	{core.WWing, "w-wing", constants.TierHard, techniques.DetectWWing, true},
	{core.FinnedFish, "finned-fish", constants.TierExtreme, techniques.DetectFinnedFish, true},
	{core.FrankenFish, "franken-fish", constants.TierExtreme, techniques.DetectFrankenFish, true},
	{core.MutantFish, "mutant-fish", constants.TierExtreme, techniques.DetectMutantFish, true},
	{core.ForcingChain, "forcing-chain", constants.TierExtreme, techniques.DetectForcingChain, true},

	// Supplemental tier (SPEC_FULL.md §12): real but optional, plus
	// documented stubs spec.md §9 leaves unimplemented. All disabled by
	// default so a host that iterates DefaultRegistry without filtering
	// by Enabled still only ever sees the closed tag set.
	{techniques.UniqueRectangleTag, "unique-rectangle-1", constants.TierSupplemental, techniques.DetectUniqueRectangleType1, false},
	{"KrakenFish", "kraken-fish", constants.TierSupplemental, techniques.DetectKrakenFish, false},
	{"AlmostLockedCandidates", "almost-locked-candidates", constants.TierSupplemental, techniques.DetectAlmostLockedCandidates, false},
	{"TurbotFish", "turbot-fish", constants.TierSupplemental, techniques.DetectTurbotFish, false},
	{"ForcingNet", "forcing-net", constants.TierSupplemental, techniques.DetectForcingNet, false},
}

// Registry filters DefaultRegistry down to a tier, preserving order.
// An empty or unrecognised tier name yields every Enabled entry up to
// and including TierExtreme, matching a host that never opted into
// supplemental techniques.
func Registry(tier string) []Descriptor {
	order := map[string]int{
		constants.TierSimple:       0,
		constants.TierMedium:       1,
		constants.TierHard:         2,
		constants.TierExtreme:      3,
		constants.TierSupplemental: 4,
	}
	max, ok := order[tier]
	if !ok {
		max = order[constants.TierExtreme]
	}
	var out []Descriptor
	for _, d := range DefaultRegistry {
		if !d.Enabled {
			continue
		}
		if order[d.Tier] <= max {
			out = append(out, d)
		}
	}
	return out
}
