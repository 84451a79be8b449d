// Package render prints a Board as a candidate grid with box borders,
// colouring given clues, placed values, and an Action's highlighted
// cells differently when the output stream is a terminal. Grounded on
// kpitt-sudoku's internal/board/printer.go box-drawing grid and its use
// of github.com/fatih/color/github.com/mattn/go-isatty for TTY
// detection, generalized from single-value cells to the candidate-set
// display spec.md §6 requires.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"humansudoku/internal/board"
	"humansudoku/internal/core"
)

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

// useColor mirrors kpitt-sudoku's go-isatty check: colour only when
// stdout is a real terminal, so piping output to a file or another
// process gets plain text.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Grid writes b to w as a three-row-per-cell candidate grid. highlight,
// if non-nil, marks an Action's primary cells in yellow and secondary
// cells in cyan when colour is active.
func Grid(w io.Writer, b *board.Board, highlight *core.Action) {
	colorOn := useColor(w)
	primary, secondary := highlightSets(highlight)

	fmt.Fprintln(w, line(colorOn, borderTop))
	for r := 0; r < 9; r++ {
		if r != 0 {
			if r%3 == 0 {
				fmt.Fprintln(w, line(colorOn, dividerMajor))
			} else {
				fmt.Fprintln(w, line(colorOn, dividerMinor))
			}
		}
		for cr := 0; cr < 3; cr++ {
			printCandidateRow(w, b, r, cr, colorOn, primary, secondary)
		}
	}
	fmt.Fprintln(w, line(colorOn, borderBot))
}

func line(colorOn bool, s string) string {
	if !colorOn {
		return s
	}
	return color.HiWhiteString(s)
}

func highlightSets(a *core.Action) (primary, secondary map[int]bool) {
	primary, secondary = map[int]bool{}, map[int]bool{}
	if a == nil {
		return
	}
	for _, ref := range a.Highlights.Primary {
		primary[board.CellIndex(ref.Row, ref.Col)] = true
	}
	for _, ref := range a.Highlights.Secondary {
		secondary[board.CellIndex(ref.Row, ref.Col)] = true
	}
	return
}

func printCandidateRow(w io.Writer, b *board.Board, row, candidateRow int, colorOn bool, primary, secondary map[int]bool) {
	var sb strings.Builder
	for col := 0; col < 9; col++ {
		idx := board.CellIndex(row, col)
		if col != 0 && col%3 == 0 {
			sb.WriteString(line(colorOn, edgeMajor))
		} else {
			sb.WriteString(line(colorOn, edgeMinor))
		}
		if v := b.GetCell(idx); v != 0 {
			if candidateRow == 1 {
				sb.WriteString(valueCell(v, b.IsGiven(idx), idx, colorOn, primary, secondary))
			} else {
				sb.WriteString("   ")
			}
			continue
		}
		sb.WriteString(candidateCell(b.GetCandidatesAt(idx), candidateRow, idx, colorOn, primary, secondary))
	}
	sb.WriteString(line(colorOn, edgeMinor))
	fmt.Fprintln(w, sb.String())
}

func valueCell(v int, given bool, idx int, colorOn bool, primary, secondary map[int]bool) string {
	s := fmt.Sprintf(" %d ", v)
	if !colorOn {
		return s
	}
	switch {
	case primary[idx]:
		return color.HiYellowString(s)
	case secondary[idx]:
		return color.HiCyanString(s)
	case given:
		return color.HiWhiteString(s)
	default:
		return color.WhiteString(s)
	}
}

func candidateCell(mask board.DigitMask, candidateRow, idx int, colorOn bool, primary, secondary map[int]bool) string {
	base := candidateRow*3 + 1
	var sb strings.Builder
	for col := 0; col < 3; col++ {
		d := base + col
		if !mask.Has(d) {
			sb.WriteString(" ")
			continue
		}
		s := fmt.Sprintf("%d", d)
		if colorOn {
			switch {
			case primary[idx]:
				s = color.YellowString(s)
			case secondary[idx]:
				s = color.CyanString(s)
			default:
				s = color.HiBlackString(s)
			}
		}
		sb.WriteString(s)
	}
	return sb.String()
}
