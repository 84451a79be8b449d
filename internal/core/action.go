// Package core holds the board-independent vocabulary shared by the
// board, techniques, and solve packages: cell references, the
// Step/Action deduction record, the closed technique-tag set, and the
// error kinds a host sees.
package core

// TechniqueTag is a member of the closed set of technique names a host
// may see in an Action (spec.md §6).
type TechniqueTag string

const (
	FullHouse            TechniqueTag = "FullHouse"
	NakedSingle          TechniqueTag = "NakedSingle"
	HiddenSingle         TechniqueTag = "HiddenSingle"
	LockedCandidates     TechniqueTag = "LockedCandidates"
	NakedSubset          TechniqueTag = "NakedSubset"
	HiddenSubset         TechniqueTag = "HiddenSubset"
	BasicFish            TechniqueTag = "BasicFish"
	FinnedFish           TechniqueTag = "FinnedFish"
	FrankenFish          TechniqueTag = "FrankenFish"
	MutantFish           TechniqueTag = "MutantFish"
	Skyscraper           TechniqueTag = "Skyscraper"
	TwoStringKite        TechniqueTag = "TwoStringKite"
	RectangleElimination TechniqueTag = "RectangleElimination"
	XYWing               TechniqueTag = "XYWing"
	XYZWing              TechniqueTag = "XYZWing"
	WWing                TechniqueTag = "WWing"
	ForcingChain         TechniqueTag = "ForcingChain"
)

// CellRef is a 0-based (row, col) pair, the presentation form of a cell
// index. Conversion to/from the packed index lives in board.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StepKind distinguishes the two atomic mutations an Action may bundle.
type StepKind int

const (
	Place StepKind = iota
	Eliminate
)

// Step is one atomic mutation: place a digit, or eliminate one candidate.
type Step struct {
	Kind  StepKind `json:"kind"`
	Cell  int      `json:"cell"`
	Digit int      `json:"digit"`
}

// Highlights groups the cells a renderer should call out: Primary is the
// pattern itself (pivot, base/cover houses, chain nodes); Secondary is
// supporting evidence (fins, the meeting cell of a kite, etc).
type Highlights struct {
	Primary   []CellRef `json:"primary,omitempty"`
	Secondary []CellRef `json:"secondary,omitempty"`
}

// Action is a non-empty ordered list of Steps produced by one technique
// invocation, with a human-readable explanation (spec.md §3, §6).
type Action struct {
	Technique   TechniqueTag `json:"technique"`
	Steps       []Step       `json:"steps"`
	Explanation string       `json:"explanation"`
	Highlights  Highlights   `json:"highlights,omitempty"`
}

// IsEmpty reports whether the action carries no steps — used by
// techniques to signal "no match" without allocating a nil *Action
// everywhere by hand.
func (a *Action) IsEmpty() bool { return a == nil || len(a.Steps) == 0 }
