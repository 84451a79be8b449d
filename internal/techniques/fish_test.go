package techniques

import (
	"testing"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// xWingGrid is spec.md §8 scenario 3's gadget: digit 5 has exactly two
// candidate positions in rows 1 and 2 (r1c1/r1c2 and r2c1/r2c2), both in
// columns 1 and 2. r3c1 also carries 5 outside those two rows, so the
// X-Wing eliminates it. Every cell carries a harmless second candidate
// so no run collapses to a given.
const xWingGrid = `56 57 9 9 9 9 9 9 9
58 59 9 9 9 9 9 9 9
56 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectBasicFish_XWing(t *testing.T) {
	b, err := board.FromCandidateGrid(xWingGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectBasicFish(b)
	if a == nil {
		t.Fatal("expected a BasicFish action, got nil")
	}
	if a.Technique != core.BasicFish {
		t.Errorf("expected BasicFish technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Eliminate || a.Steps[0].Cell != 18 || a.Steps[0].Digit != 5 {
		t.Errorf("expected Eliminate(cell=18, digit=5), got %+v", a.Steps)
	}
}

func TestDetectBasicFish_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectBasicFish(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestDetectFinnedFish_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectFinnedFish(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestDetectFrankenFish_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectFrankenFish(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestDetectMutantFish_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectMutantFish(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}
