//go:build js && wasm

// Command wasmsolve compiles the engine to GOOS=js GOARCH=wasm and
// exposes a minimal SudokuEngine global, per SPEC_FULL.md §6.1: newBoard,
// solveOneStep, applyStep, toCandidateString, over the same enginehost
// package cmd/solve uses. Grounded on the teacher's cmd/wasm/main.go
// js.FuncOf/toJSValue marshalling idiom, trimmed from that file's
// sprawling request-response surface (puzzle generation, candidate
// auto-repair, per-session validation) down to these four operations;
// it owns no solving logic of its own.
package main

import (
	"encoding/json"
	"syscall/js"

	"humansudoku/internal/core"
	"humansudoku/internal/enginehost"
)

var current *enginehost.Handle

func toJSValue(v interface{}) js.Value {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(nil)
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

func errorValue(err error) js.Value {
	return toJSValue(map[string]string{"error": err.Error()})
}

// newBoard(valueString) -> { ok: true } | { error: string }
func newBoard(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return toJSValue(map[string]string{"error": "valueString required"})
	}
	h, err := enginehost.NewHandle(args[0].String())
	if err != nil {
		return errorValue(err)
	}
	current = h
	return toJSValue(map[string]bool{"ok": true})
}

// solveOneStep(tier) -> Action | null
func solveOneStep(this js.Value, args []js.Value) interface{} {
	if current == nil {
		return toJSValue(map[string]string{"error": "no board loaded"})
	}
	tier := ""
	if len(args) >= 1 {
		tier = args[0].String()
	}
	a := current.SolveOneStep(tier)
	if a == nil {
		return js.Null()
	}
	return toJSValue(a)
}

// applyStep(actionJSON) -> { ok: true } | { error: string }
func applyStep(this js.Value, args []js.Value) interface{} {
	if current == nil {
		return toJSValue(map[string]string{"error": "no board loaded"})
	}
	if len(args) < 1 {
		return toJSValue(map[string]string{"error": "action required"})
	}
	var a core.Action
	if err := json.Unmarshal([]byte(args[0].String()), &a); err != nil {
		return errorValue(err)
	}
	if err := current.ApplyStep(&a); err != nil {
		return errorValue(err)
	}
	return toJSValue(map[string]bool{"ok": true})
}

// toCandidateString() -> string
func toCandidateString(this js.Value, args []js.Value) interface{} {
	if current == nil {
		return js.ValueOf("")
	}
	return js.ValueOf(current.ToCandidateString())
}

func main() {
	js.Global().Set("SudokuEngine", js.ValueOf(map[string]interface{}{
		"newBoard":          js.FuncOf(newBoard),
		"solveOneStep":      js.FuncOf(solveOneStep),
		"applyStep":         js.FuncOf(applyStep),
		"toCandidateString": js.FuncOf(toCandidateString),
	}))
	js.Global().Call("dispatchEvent", js.Global().Get("CustomEvent").New("wasmReady"))
	select {}
}
