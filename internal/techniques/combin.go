package techniques

// combinations yields every k-element subset of items, as index tuples
// materialised lazily via a callback rather than a pre-built Cartesian
// product (spec.md §9), generalizing the teacher's
// internal/sudoku/human/grid.go Combinations/combinationsHelper into a
// single recursive walk reused by every subset- and fish-searching
// technique in this package.
func combinations(items []int, k int, yield func([]int) bool) {
	if k <= 0 || k > len(items) {
		return
	}
	combo := make([]int, k)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == k {
			return yield(append([]int(nil), combo...))
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			if !rec(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	rec(0, 0)
}
