package techniques

import (
	"testing"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// skyscraperGrid is a row-type Skyscraper for digit 7: row 1 holds it at
// r1c1/r1c2, row 2 holds it at r2c1/r2c3, and r1c1/r2c1 share column 1
// (the link). The free ends r1c2 and r2c3 share box 1 with r3c1, which
// loses the digit.
const skyscraperGrid = `78 78 9 9 9 9 9 9 9
78 9 78 9 9 9 9 9 9
78 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectSkyscraper(t *testing.T) {
	b, err := board.FromCandidateGrid(skyscraperGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectSkyscraper(b)
	if a == nil {
		t.Fatal("expected a Skyscraper action, got nil")
	}
	if a.Technique != core.Skyscraper {
		t.Errorf("expected Skyscraper technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Eliminate || a.Steps[0].Cell != 18 || a.Steps[0].Digit != 7 {
		t.Errorf("expected Eliminate(cell=18, digit=7), got %+v", a.Steps)
	}
}

func TestDetectSkyscraper_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectSkyscraper(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

// twoStringKiteGrid gives digit 6 exactly two candidate positions in
// row 1 (r1c2, r1c6) and exactly two in column 3 (r2c3, r6c3); r1c2 and
// r2c3 share box 1. The kite's target, r6c6, sees r1c6 via its column
// and r6c3 via its row.
const twoStringKiteGrid = `9 67 9 9 9 67 9 9 9
9 9 67 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 67 9 9 67 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectTwoStringKite(t *testing.T) {
	b, err := board.FromCandidateGrid(twoStringKiteGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectTwoStringKite(b)
	if a == nil {
		t.Fatal("expected a TwoStringKite action, got nil")
	}
	if a.Technique != core.TwoStringKite {
		t.Errorf("expected TwoStringKite technique, got %s", a.Technique)
	}
	if len(a.Steps) != 1 || a.Steps[0].Kind != core.Eliminate || a.Steps[0].Cell != 50 || a.Steps[0].Digit != 6 {
		t.Errorf("expected Eliminate(cell=50, digit=6), got %+v", a.Steps)
	}
}

func TestDetectTwoStringKite_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectTwoStringKite(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestDetectRectangleElimination_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectRectangleElimination(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}
