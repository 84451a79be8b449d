package core

import (
	"fmt"
	"strings"
)

// FormatCell renders a 0-based cell index as 1-based "rXcY" (spec.md §6).
func FormatCell(idx int) string {
	return fmt.Sprintf("r%dc%d", idx/9+1, idx%9+1)
}

// FormatPlacement renders a Place step as "rXcY=D".
func FormatPlacement(cell, digit int) string {
	return fmt.Sprintf("%s=%d", FormatCell(cell), digit)
}

// FormatElimination renders an Eliminate step as "rXcY<>D".
func FormatElimination(cell, digit int) string {
	return fmt.Sprintf("%s<>%d", FormatCell(cell), digit)
}

// FormatStep dispatches on the step kind.
func FormatStep(s Step) string {
	if s.Kind == Place {
		return FormatPlacement(s.Cell, s.Digit)
	}
	return FormatElimination(s.Cell, s.Digit)
}

// Explain builds the single explanation string every technique attaches
// to its Action, of the form "[Tag] <pattern> => <step>, <step>, ...".
// Keeping this in one place (rather than ad-hoc concatenation inside each
// technique, per spec.md §9) keeps the output stable across techniques.
func Explain(tag TechniqueTag, pattern string, steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = FormatStep(s)
	}
	return fmt.Sprintf("[%s] %s => %s", tag, pattern, strings.Join(parts, ", "))
}

// NewAction is the single constructor every technique uses to build a
// non-empty Action; it stamps the explanation via Explain so callers
// never hand-format strings themselves.
func NewAction(tag TechniqueTag, pattern string, steps []Step, highlights Highlights) *Action {
	if len(steps) == 0 {
		return nil
	}
	return &Action{
		Technique:   tag,
		Steps:       steps,
		Explanation: Explain(tag, pattern, steps),
		Highlights:  highlights,
	}
}
