// Command solve is the CLI host of SPEC_FULL.md §6.1: it reads a
// puzzle, drives solve_all, and prints each Action's explanation
// string plus the final grid. Grounded on the teacher's cmd/server
// logging style (stdlib log, no injected logger) and kpitt-sudoku's
// cmd/sudoku/main.go stdin-driven flow, adapted from an HTTP server
// and an interactive reader to a flag-driven batch solve.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"humansudoku/internal/core"
	"humansudoku/internal/enginehost"
	"humansudoku/internal/render"
	"humansudoku/internal/solve"
	"humansudoku/pkg/config"
)

func main() {
	cfg := config.Load()

	puzzle := flag.String("puzzle", "", "81-character value string (default: read from stdin)")
	maxSteps := flag.Int("max-steps", cfg.MaxSteps, "maximum solve_all steps before stopping")
	tier := flag.String("tier", cfg.Tier, "maximum technique tier: simple|medium|hard|extreme|supplemental")
	format := flag.String("format", cfg.Format, "output format: text|json")
	flag.Parse()

	input := *puzzle
	if input == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			log.Fatalf("reading puzzle from stdin: %v", err)
		}
		input = strings.TrimSpace(string(data))
	}

	handle, err := enginehost.NewHandle(input)
	if err != nil {
		log.Fatalf("parsing puzzle: %v", err)
	}

	result, err := handle.SolveAll(*tier, *maxSteps)
	if err != nil {
		log.Fatalf("solving: %v", err)
	}

	if *format == "json" {
		printJSON(result.Actions, handle)
		return
	}
	printText(result, handle)
}

func printText(result solve.Result, handle *enginehost.Handle) {
	for _, a := range result.Actions {
		fmt.Println(a.Explanation)
	}
	fmt.Println()
	if handle.IsSolved() {
		fmt.Println("Solved:")
	} else {
		fmt.Println("Unsolved (no further technique fires):")
	}
	var last *core.Action
	if len(result.Actions) > 0 {
		last = result.Actions[len(result.Actions)-1]
	}
	render.Grid(os.Stdout, handle.Board, last)
}

func printJSON(actions []*core.Action, handle *enginehost.Handle) {
	out := struct {
		Actions []*core.Action `json:"actions"`
		Solved  bool           `json:"solved"`
		Final   string         `json:"final_value_string"`
	}{Actions: actions, Solved: handle.IsSolved(), Final: handle.ToValueString()}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encoding result: %v", err)
	}
}
