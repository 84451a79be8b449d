package techniques

import (
	"testing"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// fullHouseValues has row 1 (r1) filled in every cell but r1c5, whose
// missing digit (5) is forced by the other eight.
const fullHouseValues = "1234.6789" +
	"123456789123456789123456789123456789123456789123456789123456789123456789"

func TestDetectFullHouse(t *testing.T) {
	b, err := board.FromValues(fullHouseValues)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectFullHouse(b)
	if a == nil {
		t.Fatal("expected a FullHouse action, got nil")
	}
	if a.Technique != core.FullHouse {
		t.Errorf("expected FullHouse technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Place || a.Steps[0].Cell != 4 || a.Steps[0].Digit != 5 {
		t.Errorf("expected Place(cell=4, digit=5), got %+v", a.Steps)
	}
}

func TestDetectFullHouse_NoneWhenEveryHouseHasMultipleGaps(t *testing.T) {
	b := board.New() // no givens anywhere: every house has 9 empty cells
	if a := DetectFullHouse(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

// nakedSingleGrid gives r1c1 two candidates (1,2); every other cell is a
// given filler. The test prunes r1c1 down to a single candidate via the
// public RemoveCandidate API before detecting.
const nakedSingleGrid = `12 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectNakedSingle(t *testing.T) {
	b, err := board.FromCandidateGrid(nakedSingleGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.RemoveCandidate(0, 2); err != nil {
		t.Fatalf("unexpected error pruning r1c1: %v", err)
	}
	a := DetectNakedSingle(b)
	if a == nil {
		t.Fatal("expected a NakedSingle action, got nil")
	}
	if a.Technique != core.NakedSingle {
		t.Errorf("expected NakedSingle technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Place || a.Steps[0].Cell != 0 || a.Steps[0].Digit != 1 {
		t.Errorf("expected Place(cell=0, digit=1), got %+v", a.Steps)
	}
}

func TestDetectNakedSingle_NoneWithoutABivalueCollapse(t *testing.T) {
	b, _ := board.FromCandidateGrid(nakedSingleGrid) // r1c1 still has {1,2}
	if a := DetectNakedSingle(b); a != nil {
		t.Errorf("expected no action while r1c1 still carries two candidates, got %+v", a)
	}
}

// hiddenSingleGrid leaves only r1c2 empty in row 1 (house r1), with
// candidates {3,5}. Every other row-1 cell is given, so digit 3 (the
// first digit the detector tries that actually appears) can only go in
// r1c2 within that house.
const hiddenSingleGrid = `1 35 2 3 4 6 7 8 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectHiddenSingle(t *testing.T) {
	b, err := board.FromCandidateGrid(hiddenSingleGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectHiddenSingle(b)
	if a == nil {
		t.Fatal("expected a HiddenSingle action, got nil")
	}
	if a.Technique != core.HiddenSingle {
		t.Errorf("expected HiddenSingle technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Place || a.Steps[0].Cell != 1 || a.Steps[0].Digit != 3 {
		t.Errorf("expected Place(cell=1, digit=3), got %+v", a.Steps)
	}
}

// lockedCandidatesGrid confines digit 5's candidates within box 1 (r1-3,
// c1-3) to r1c1 and r1c2, both in row 1 — a Pointing pattern that
// eliminates 5 from the rest of row 1 (r1c4, which still carries it).
const lockedCandidatesGrid = `56 57 9 58 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectLockedCandidates_Pointing(t *testing.T) {
	b, err := board.FromCandidateGrid(lockedCandidatesGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectLockedCandidates(b)
	if a == nil {
		t.Fatal("expected a LockedCandidates action, got nil")
	}
	if a.Technique != core.LockedCandidates {
		t.Errorf("expected LockedCandidates technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Eliminate || a.Steps[0].Cell != 3 || a.Steps[0].Digit != 5 {
		t.Errorf("expected Eliminate(cell=3, digit=5), got %+v", a.Steps)
	}
}

func TestDetectLockedCandidates_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectLockedCandidates(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}
