package solve

import (
	"testing"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
	"humansudoku/internal/oracle"
	"humansudoku/pkg/constants"
)

func TestRegistry_FiltersByTier(t *testing.T) {
	simple := Registry(constants.TierSimple)
	wantSimple := []core.TechniqueTag{core.FullHouse, core.HiddenSingle, core.NakedSingle}
	if len(simple) != len(wantSimple) {
		t.Fatalf("TierSimple: expected %d descriptors, got %d (%+v)", len(wantSimple), len(simple), simple)
	}
	for i, tag := range wantSimple {
		if simple[i].Tag != tag {
			t.Errorf("TierSimple[%d]: expected %s, got %s", i, tag, simple[i].Tag)
		}
	}

	medium := Registry(constants.TierMedium)
	if len(medium) != 6 {
		t.Errorf("TierMedium: expected 6 descriptors, got %d (%+v)", len(medium), medium)
	}

	// An unrecognised tier name falls back to TierExtreme's cutoff: every
	// enabled non-supplemental descriptor, preserving DefaultRegistry order.
	unknown := Registry("not-a-real-tier")
	extreme := Registry(constants.TierExtreme)
	if len(unknown) != len(extreme) {
		t.Errorf("unknown tier: expected fallback to TierExtreme's %d descriptors, got %d", len(extreme), len(unknown))
	}

	// Supplemental descriptors are disabled by default, so no tier —
	// not even TierSupplemental itself — surfaces them.
	supplemental := Registry(constants.TierSupplemental)
	if len(supplemental) != len(extreme) {
		t.Errorf("TierSupplemental: expected the same %d enabled descriptors as TierExtreme (supplemental entries are disabled), got %d", len(extreme), len(supplemental))
	}
}

// classicPuzzle is a widely-used example grid solvable by FullHouse,
// HiddenSingle, and NakedSingle alone (no subset or fish technique is
// ever needed), per spec.md §8 scenario 1.
const classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

const classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func newClassicBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.FromValues(classicPuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.InitializeCandidates()
	return b
}

// TestSolveOneStep_ClassicPuzzleFirstMoveIsHiddenSingle pins the engine's
// actual first move against the classic puzzle to DefaultRegistry's
// documented HiddenSingle-before-NakedSingle order (spec.md §4.E). This
// diverges from spec.md §8 scenario 1, which narrates a NakedSingle at
// r5c5=5 as the first action: both techniques find a move on this grid
// before any other descriptor does, and §4.E's ordering decides which
// one the registry reports. See DESIGN.md's Open Questions for why this
// known §4.E/§8 tension is resolved by keeping §4.E's ordering rather
// than reordering the registry to match the narrated scenario.
func TestSolveOneStep_ClassicPuzzleFirstMoveIsHiddenSingle(t *testing.T) {
	b := newClassicBoard(t)
	a := SolveOneStep(b, Registry(constants.TierExtreme), nil)
	if a == nil {
		t.Fatal("expected an action, got nil")
	}
	if a.Technique != core.HiddenSingle {
		t.Errorf("expected HiddenSingle, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Place || a.Steps[0].Cell != 24 || a.Steps[0].Digit != 5 {
		t.Errorf("expected Place(cell=24, digit=5), got %+v", a.Steps)
	}
}

func TestSolveOneStep_NoActionOnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := SolveOneStep(b, Registry(constants.TierExtreme), nil); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestSolveOneStep_NilWhenAbortedBeforeAnyTechnique(t *testing.T) {
	b := newClassicBoard(t)
	alwaysAbort := func() bool { return true }
	if a := SolveOneStep(b, Registry(constants.TierExtreme), alwaysAbort); a != nil {
		t.Errorf("expected no action once aborted, got %+v", a)
	}
}

func TestSolveAll_ClassicPuzzleSolvesCompletely(t *testing.T) {
	b := newClassicBoard(t)
	res, err := SolveAll(b, Registry(constants.TierExtreme), constants.MaxSolveSteps, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved {
		t.Fatalf("expected the puzzle to solve completely, got %d actions and Solved=false", len(res.Actions))
	}
	if res.Aborted {
		t.Error("expected Aborted=false")
	}
	if got := b.ToValueString(); got != classicSolution {
		t.Errorf("expected solution %s, got %s", classicSolution, got)
	}
	final := make([]int, 81)
	for i := 0; i < 81; i++ {
		final[i] = b.GetCell(i)
	}
	if !oracle.IsValid(final) {
		t.Error("expected the solved grid to have no conflicts")
	}
}

func TestSolveAll_MatchesOracleUniqueSolution(t *testing.T) {
	given := make([]int, 81)
	for i, r := range classicPuzzle {
		if r >= '1' && r <= '9' {
			given[i] = int(r - '0')
		}
	}
	if !oracle.HasUniqueSolution(given) {
		t.Fatal("expected the classic puzzle to have a unique solution")
	}
	want := oracle.Solve(given)

	b := newClassicBoard(t)
	if _, err := SolveAll(b, Registry(constants.TierExtreme), constants.MaxSolveSteps, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]int, 81)
	for i := 0; i < 81; i++ {
		got[i] = b.GetCell(i)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("cell %d: engine got %d, oracle got %d", i, got[i], want[i])
		}
	}
}

func TestSolveAll_IsDeterministic(t *testing.T) {
	b1 := newClassicBoard(t)
	b2 := newClassicBoard(t)
	res1, err1 := SolveAll(b1, Registry(constants.TierExtreme), constants.MaxSolveSteps, nil)
	res2, err2 := SolveAll(b2, Registry(constants.TierExtreme), constants.MaxSolveSteps, nil)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if len(res1.Actions) != len(res2.Actions) {
		t.Fatalf("expected the same number of actions across runs, got %d and %d", len(res1.Actions), len(res2.Actions))
	}
	for i := range res1.Actions {
		if res1.Actions[i].Technique != res2.Actions[i].Technique {
			t.Errorf("action %d: technique diverged: %s vs %s", i, res1.Actions[i].Technique, res2.Actions[i].Technique)
		}
	}
	if b1.ToValueString() != b2.ToValueString() {
		t.Error("expected identical final grids across runs")
	}
}

func TestSolveAll_RespectsMaxSteps(t *testing.T) {
	b := newClassicBoard(t)
	res, err := SolveAll(b, Registry(constants.TierExtreme), 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Actions) != 1 {
		t.Fatalf("expected exactly 1 action under maxSteps=1, got %d", len(res.Actions))
	}
	if res.Solved {
		t.Error("expected the puzzle to remain unsolved after a single step")
	}
}

func TestSolveAll_AbortsImmediately(t *testing.T) {
	b := newClassicBoard(t)
	alwaysAbort := func() bool { return true }
	res, err := SolveAll(b, Registry(constants.TierExtreme), constants.MaxSolveSteps, alwaysAbort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Aborted {
		t.Error("expected Aborted=true")
	}
	if len(res.Actions) != 0 {
		t.Errorf("expected no actions once aborted before the first step, got %d", len(res.Actions))
	}
}

func TestSolveAll_AlreadySolvedBoardTakesNoAction(t *testing.T) {
	b, err := board.FromValues(classicSolution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := SolveAll(b, Registry(constants.TierExtreme), constants.MaxSolveSteps, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved {
		t.Error("expected an already-solved board to report Solved=true")
	}
	if len(res.Actions) != 0 {
		t.Errorf("expected no actions on an already-solved board, got %d", len(res.Actions))
	}
}
