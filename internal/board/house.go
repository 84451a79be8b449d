package board

import "fmt"

// HouseType distinguishes the three kinds of 9-cell houses.
type HouseType int

const (
	Row HouseType = iota
	Column
	Box
)

func (t HouseType) String() string {
	switch t {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "box"
	}
}

// House is one of the 27 houses, numbered 0..8 rows, 9..17 columns,
// 18..26 boxes (spec.md §4.C).
type House int

const NumHouses = 27

// Type reports whether h is a row, column, or box.
func (h House) Type() HouseType {
	switch {
	case h < 9:
		return Row
	case h < 18:
		return Column
	default:
		return Box
	}
}

// Index returns the 0..8 row/column/box number within its type.
func (h House) Index() int {
	switch h.Type() {
	case Row:
		return int(h)
	case Column:
		return int(h) - 9
	default:
		return int(h) - 18
	}
}

// Name renders the human house name used in explanations: r3, c7, b5.
func (h House) Name() string {
	switch h.Type() {
	case Row:
		return fmt.Sprintf("r%d", h.Index()+1)
	case Column:
		return fmt.Sprintf("c%d", h.Index()+1)
	default:
		return fmt.Sprintf("b%d", h.Index()+1)
	}
}

func rowHouse(row int) House    { return House(row) }
func colHouse(col int) House    { return House(9 + col) }
func boxHouse(box int) House    { return House(18 + box) }
func boxOf(row, col int) int    { return (row/3)*3 + col/3 }

// Precomputed, process-lifetime value tables (spec.md §9 "House index as
// value tables"): the 27 house cell-sets and each cell's three houses,
// derived once in init and shared read-only thereafter — generalizing
// the teacher's Peers/RowIndices/ColIndices/BoxIndices arrays
// (internal/sudoku/human/peers.go) into CellSet-backed houses.
var (
	HouseCells   [NumHouses]CellSet
	HousesOfCell [81][3]House
	PeersOf      [81]CellSet
)

func init() {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			idx := row*9 + col
			HouseCells[rowHouse(row)] = HouseCells[rowHouse(row)].With(idx)
			HouseCells[colHouse(col)] = HouseCells[colHouse(col)].With(idx)
			HouseCells[boxHouse(boxOf(row, col))] = HouseCells[boxHouse(boxOf(row, col))].With(idx)
		}
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			idx := row*9 + col
			HousesOfCell[idx] = [3]House{rowHouse(row), colHouse(col), boxHouse(boxOf(row, col))}
		}
	}
	for idx := 0; idx < 81; idx++ {
		var peers CellSet
		for _, h := range HousesOfCell[idx] {
			peers = peers.Union(HouseCells[h])
		}
		PeersOf[idx] = peers.Without(idx)
	}
}

// RowOf, ColOf, BoxOf return the 0-based row/column/box number of a cell.
func RowOf(idx int) int { return idx / 9 }
func ColOf(idx int) int { return idx % 9 }
func BoxOf(idx int) int { return boxOf(RowOf(idx), ColOf(idx)) }

// CellIndex returns the linear index for a (row, col) pair.
func CellIndex(row, col int) int { return row*9 + col }

// ArePeers reports whether two distinct cells share a house.
func ArePeers(a, b int) bool {
	return a != b && PeersOf[a].Has(b)
}

// AllHouses returns every house 0..26, for techniques that scan the
// whole index (fish/subset search).
func AllHouses() []House {
	hs := make([]House, NumHouses)
	for i := range hs {
		hs[i] = House(i)
	}
	return hs
}

// HousesOfType returns the 9 houses of the given type, in index order.
func HousesOfType(t HouseType) []House {
	hs := make([]House, 0, 9)
	for _, h := range AllHouses() {
		if h.Type() == t {
			hs = append(hs, h)
		}
	}
	return hs
}
