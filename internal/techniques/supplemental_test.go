package techniques

import (
	"testing"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

// uniqueRectangleGrid puts a Unique Rectangle Type 1 quad at r1c1,
// r1c4, r2c1, r2c4 (r1c1/r2c1 share box 0, r1c4/r2c4 share box 1): the
// three floor corners all carry {1,2}, and the roof r1c1 carries an
// extra 3. Deduplicating {1,2} off r1c1 leaves only its 3.
const uniqueRectangleGrid = `123 9 9 12 9 9 9 9 9
12 9 9 12 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
9 9 9 9 9 9 9 9 9
`

func TestDetectUniqueRectangleType1(t *testing.T) {
	b, err := board.FromCandidateGrid(uniqueRectangleGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := DetectUniqueRectangleType1(b)
	if a == nil {
		t.Fatal("expected a UniqueRectangle action, got nil")
	}
	if a.Technique != UniqueRectangleTag {
		t.Errorf("expected UniqueRectangle technique, got %s", a.Technique)
	}
	if len(a.Steps) != 2 {
		t.Fatalf("expected 2 eliminations, got %+v", a.Steps)
	}
	for _, want := range []core.Step{
		{Kind: core.Eliminate, Cell: 0, Digit: 1},
		{Kind: core.Eliminate, Cell: 0, Digit: 2},
	} {
		found := false
		for _, s := range a.Steps {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected step %+v among %+v", want, a.Steps)
		}
	}
}

func TestDetectUniqueRectangleType1_NoneOnAnEmptyBoard(t *testing.T) {
	b := board.New()
	if a := DetectUniqueRectangleType1(b); a != nil {
		t.Errorf("expected no action, got %+v", a)
	}
}

func TestSupplementalStubsAlwaysReturnNil(t *testing.T) {
	b, err := board.FromCandidateGrid(uniqueRectangleGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stubs := map[string]func(board.BoardInterface) *core.Action{
		"DetectKrakenFish":             DetectKrakenFish,
		"DetectAlmostLockedCandidates": DetectAlmostLockedCandidates,
		"DetectTurbotFish":             DetectTurbotFish,
		"DetectForcingNet":             DetectForcingNet,
	}
	for name, fn := range stubs {
		if a := fn(board.New()); a != nil {
			t.Errorf("%s: expected nil on an empty board, got %+v", name, a)
		}
		if a := fn(b); a != nil {
			t.Errorf("%s: expected nil on a populated board, got %+v", name, a)
		}
	}
}
