package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rivo/uniseg"

	"github.com/yara-x/goyaracst/syntax"
)

// position is a 1-based line/column pair, counted in grapheme clusters
// rather than bytes or runes so that multi-byte identifiers and string
// contents don't throw off the reported column (SPEC_FULL.md §3).
type position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// locate converts a byte offset into text to a 1-based line/column pair,
// walking grapheme clusters with uniseg.NewGraphemes the way the teacher's
// diagnostic formatting walks runenames-backed script boundaries in
// syntax/unicode.go.
func locate(text string, offset uint32) position {
	line, col := 1, 1
	gr := uniseg.NewGraphemes(text)
	var consumed uint32
	for consumed < offset && gr.Next() {
		cluster := gr.Str()
		if cluster == "\n" {
			line++
			col = 1
		} else {
			col++
		}
		consumed += uint32(len(cluster))
	}
	return position{Line: line, Column: col}
}

func printDiagnosticsText(w io.Writer, path, text string, errs []syntax.SyntaxError) {
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		pos := locate(text, e.Range.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s\n", path, pos.Line, pos.Column, e.Message)
	}
}

type jsonDiagnostic struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Start    uint32   `json:"start"`
	End      uint32   `json:"end"`
	Position position `json:"position"`
}

func printDiagnosticsJSON(w io.Writer, path, text string, errs []syntax.SyntaxError) error {
	out := make([]jsonDiagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, jsonDiagnostic{
			Path:     path,
			Message:  e.Message,
			Start:    e.Range.Start,
			End:      e.Range.End,
			Position: locate(text, e.Range.Start),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
