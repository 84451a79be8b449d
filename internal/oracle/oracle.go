// Package oracle is the brute-force backtracking solver spec.md's
// Non-goals section carves out as the one permitted use of
// backtracking: "may be used only as an explicit last-resort oracle,
// not as the solve strategy". It never appears in the technique
// registry; it exists for uniqueness checks, conflict detection, and
// to verify technique soundness in tests (spec.md §8 "property
// verified by oracle backtracker, not by the engine itself").
//
// Grounded on the teacher's internal/sudoku/dp/solver.go, trimmed to
// the oracle surface: puzzle generation (CarveGivens, GenerateFullGrid)
// is spec.md's other explicit Non-goal and is dropped rather than
// adapted.
package oracle

// Solve returns a full solution for grid (81 cells, 0 for empty), or
// nil if none exists. It does not check uniqueness.
func Solve(grid []int) []int {
	g := make([]int, 81)
	copy(g, grid)
	if solve(g) {
		return g
	}
	return nil
}

// HasUniqueSolution reports whether grid has exactly one solution.
func HasUniqueSolution(grid []int) bool {
	return CountSolutions(grid, 2) == 1
}

// CountSolutions counts solutions up to maxCount, stopping early once
// the cap is reached (a puzzle with many solutions need not be
// enumerated fully just to confirm it is not unique).
func CountSolutions(grid []int, maxCount int) int {
	g := make([]int, 81)
	copy(g, grid)
	count := 0
	countSolutions(g, &count, maxCount)
	return count
}

// Conflict is a pair of cells holding the same value in a house that
// forbids it.
type Conflict struct {
	Cell1 int
	Cell2 int
	Value int
	Type  string // "row", "column", or "box"
}

// IsValid reports whether grid has no conflicting placements.
func IsValid(grid []int) bool {
	return len(FindConflicts(grid)) == 0
}

// FindConflicts returns every conflicting cell pair in grid, across
// rows, columns, and boxes, each pair reported once.
func FindConflicts(grid []int) []Conflict {
	var conflicts []Conflict
	seen := map[[3]int]bool{}
	report := func(c1, c2, val int, kind string) {
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		key := [3]int{c1, c2, val}
		if seen[key] {
			return
		}
		seen[key] = true
		conflicts = append(conflicts, Conflict{Cell1: c1, Cell2: c2, Value: val, Type: kind})
	}
	for row := 0; row < 9; row++ {
		positions := map[int][]int{}
		for col := 0; col < 9; col++ {
			if v := grid[row*9+col]; v != 0 {
				positions[v] = append(positions[v], col)
			}
		}
		reportPairs(positions, func(a, b, val int) { report(row*9+a, row*9+b, val, "row") })
	}
	for col := 0; col < 9; col++ {
		positions := map[int][]int{}
		for row := 0; row < 9; row++ {
			if v := grid[row*9+col]; v != 0 {
				positions[v] = append(positions[v], row)
			}
		}
		reportPairs(positions, func(a, b, val int) { report(a*9+col, b*9+col, val, "column") })
	}
	for box := 0; box < 9; box++ {
		positions := map[int][]int{}
		boxRow, boxCol := (box/3)*3, (box%3)*3
		for r := boxRow; r < boxRow+3; r++ {
			for c := boxCol; c < boxCol+3; c++ {
				if v := grid[r*9+c]; v != 0 {
					positions[v] = append(positions[v], r*9+c)
				}
			}
		}
		reportPairs(positions, func(a, b, val int) { report(a, b, val, "box") })
	}
	return conflicts
}

func reportPairs(positions map[int][]int, report func(a, b, val int)) {
	for val, idxs := range positions {
		if len(idxs) < 2 {
			continue
		}
		for i := 0; i < len(idxs); i++ {
			for j := i + 1; j < len(idxs); j++ {
				report(idxs[i], idxs[j], val)
			}
		}
	}
}

func countSolutions(g []int, count *int, maxCount int) {
	if *count >= maxCount {
		return
	}
	idx := firstEmpty(g)
	if idx == -1 {
		*count++
		return
	}
	row, col := idx/9, idx%9
	for digit := 1; digit <= 9; digit++ {
		if fits(g, row, col, digit) {
			g[idx] = digit
			countSolutions(g, count, maxCount)
			g[idx] = 0
			if *count >= maxCount {
				return
			}
		}
	}
}

func solve(g []int) bool {
	idx := firstEmpty(g)
	if idx == -1 {
		return true
	}
	row, col := idx/9, idx%9
	for digit := 1; digit <= 9; digit++ {
		if fits(g, row, col, digit) {
			g[idx] = digit
			if solve(g) {
				return true
			}
			g[idx] = 0
		}
	}
	return false
}

func firstEmpty(g []int) int {
	for i, v := range g {
		if v == 0 {
			return i
		}
	}
	return -1
}

func fits(g []int, row, col, digit int) bool {
	for c := 0; c < 9; c++ {
		if g[row*9+c] == digit {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if g[r*9+col] == digit {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if g[r*9+c] == digit {
				return false
			}
		}
	}
	return true
}
