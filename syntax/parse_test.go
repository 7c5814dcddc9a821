package syntax

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReparseStability(t *testing.T) {
	// spec.md §8, "Re-parse stability": feeding the reconstructed text back
	// through the pipeline must yield an identical dump and diagnostic set.
	inputs := []string{
		"rule a { condition: true }",
		`rule r { strings: $a = "foo" ascii wide condition: $a }`,
		"rule r { condition: $a nor true }",
		"rule r { condition: true strings: $a = \"x\" }",
	}
	for _, text := range inputs {
		first := ParseSourceText(text)
		second := ParseSourceText(first.SyntaxNode().Text())
		if diff := cmp.Diff(first.DebugDump(), second.DebugDump()); diff != "" {
			t.Errorf("re-parse of %q not stable (-first +second):\n%s", text, diff)
		}
	}
}

func TestParseLosslessRoundTrip(t *testing.T) {
	texts := []string{
		"rule a { condition: true }",
		"  // leading comment\nrule a { condition: true }  ",
		"}}}rule{{{",
	}
	for _, text := range texts {
		p := ParseSourceText(text)
		if got := p.SyntaxNode().Text(); got != text {
			t.Errorf("Text() = %q, want %q", got, text)
		}
	}
}

func TestScenarioS1TrivialRule(t *testing.T) {
	text := "rule a { condition: true }"
	p := ParseSourceText(text)
	if !p.Ok() {
		t.Fatalf("expected no diagnostics, got %v", p.Errors())
	}
	rule := p.Tree().Rules()[0]
	if rule.Name().Text() != "a" {
		t.Errorf("rule name = %q, want a", rule.Name().Text())
	}
	stmt := rule.Body().Condition().Statements()[0]
	be, ok := stmt.Expr().(BooleanExpr)
	if !ok {
		t.Fatalf("expected BooleanExpr, got %T", stmt.Expr())
	}
	term, ok := be.Lhs().(BooleanTerm)
	if !ok || term.LiteralToken() == nil || term.LiteralToken().Text() != "true" {
		t.Errorf("expected a bare boolean-literal term, got %+v", be.Lhs())
	}
}

func TestScenarioS2StringsWithModifiers(t *testing.T) {
	text := `rule r { strings: $a = "foo" ascii wide condition: $a }`
	p := ParseSourceText(text)
	if !p.Ok() {
		t.Fatalf("expected no diagnostics, got %v", p.Errors())
	}
	vs := p.Tree().Rules()[0].Body().Strings().Statements()[0]
	if vs.NameToken().Text() != "$a" {
		t.Errorf("name = %q, want $a", vs.NameToken().Text())
	}
	pat := vs.Pattern()
	if pat.StringToken() == nil || pat.StringToken().Text() != `"foo"` {
		t.Errorf("pattern string = %v, want \"foo\"", pat.StringToken())
	}
	mods := pat.Modifiers()
	if len(mods) != 2 {
		t.Fatalf("expected 2 modifiers, got %d", len(mods))
	}
	if mods[0].Keyword().Kind() != ASCII_KW || mods[1].Keyword().Kind() != WIDE_KW {
		t.Errorf("unexpected modifier kinds: %v, %v", mods[0].Keyword().Kind(), mods[1].Keyword().Kind())
	}
}

func TestScenarioS3HexPatternJumpAndAlternative(t *testing.T) {
	text := "rule h { strings: $h = { 4D 5A [2-4] ( AA BB | CC ) } condition: $h }"
	p := ParseSourceText(text)
	if !p.Ok() {
		t.Fatalf("expected no diagnostics, got %v", p.Errors())
	}
	pat := p.Tree().Rules()[0].Body().Strings().Statements()[0].Pattern()
	hex := pat.Hex()
	if hex == nil {
		t.Fatal("expected a hex pattern")
	}
	body := hex.Body()
	if body == nil {
		t.Fatal("expected a hex token body")
	}
	if len(body.Tails()) == 0 {
		t.Fatal("expected at least one hex token tail")
	}
	if !strings.Contains(p.DebugDump(), "HEX_JUMP") {
		t.Error("expected a HEX_JUMP node in the tree dump")
	}
	if !strings.Contains(p.DebugDump(), "HEX_ALTERNATIVE") {
		t.Error("expected a HEX_ALTERNATIVE node in the tree dump")
	}
}

func TestScenarioS4RegexWithModifiers(t *testing.T) {
	text := "rule re { strings: $r = /foo[a-z]+/is condition: $r }"
	p := ParseSourceText(text)
	if !p.Ok() {
		t.Fatalf("expected no diagnostics, got %v", p.Errors())
	}
	pat := p.Tree().Rules()[0].Body().Strings().Statements()[0].Pattern()
	re := pat.Regex()
	if re == nil {
		t.Fatal("expected a regex pattern")
	}
	if re.BodyToken() == nil || re.BodyToken().Text() != "foo[a-z]+" {
		t.Errorf("regex body = %v, want foo[a-z]+", re.BodyToken())
	}
	if len(re.Modifiers()) != 2 {
		t.Errorf("expected 2 regex modifiers, got %d", len(re.Modifiers()))
	}
}

func TestScenarioS5MissingDollarOnPatternName(t *testing.T) {
	text := `rule r { strings: a = "x" condition: true }`
	p := ParseSourceText(text)
	if p.Ok() {
		t.Fatal("expected a diagnostic for the missing '$' pattern name")
	}
	dump := p.DebugDump()
	if !strings.Contains(dump, "ERROR") {
		t.Error("expected an ERROR node in the tree dump")
	}
	if !strings.Contains(dump, "STRINGS") {
		t.Error("expected the STRINGS section to still be present")
	}
	// Diagnostic must anchor within the source range, not past it.
	for _, e := range p.Errors() {
		if e.Range.Start > uint32(len(text)) {
			t.Errorf("diagnostic offset %d exceeds input length %d", e.Range.Start, len(text))
		}
	}
}

func TestScenarioS6UnknownInfixOperator(t *testing.T) {
	text := "rule r { condition: $a nor true }"
	p := ParseSourceText(text)
	if p.Ok() {
		t.Fatal("expected at least one diagnostic for the unknown 'nor' operator")
	}
	cond := p.Tree().Rules()[0].Body().Condition()
	stmts := cond.Statements()
	if len(stmts) < 2 {
		t.Fatalf("expected '$a' and 'true' to parse as separate expression statements, got %d", len(stmts))
	}
	first, ok := stmts[0].Expr().(BooleanTerm)
	if !ok || first.VariableToken() == nil || first.VariableToken().Text() != "$a" {
		t.Errorf("first statement = %+v, want a bare $a boolean term", stmts[0].Expr())
	}

	root := p.SyntaxNode()
	norOffset := uint32(strings.Index(text, "nor"))
	atNor := root.TokenAtOffset(norOffset)
	tok := atNor.RightBiased()
	if tok == nil || tok.Text() != "nor" {
		t.Fatalf("TokenAtOffset(%d).RightBiased() = %v, want the 'nor' token", norOffset, tok)
	}

	foundErrorNode := false
	for _, c := range cond.Syntax().Children() {
		if c.Kind() == ERROR {
			foundErrorNode = true
		}
	}
	if !foundErrorNode {
		t.Error("expected 'nor' to surface as an ERROR child of the condition section")
	}
}

func TestScenarioS7DuplicateOutOfOrderSections(t *testing.T) {
	text := `rule r { condition: true strings: $a = "x" }`
	p := ParseSourceText(text)
	if p.Ok() {
		t.Fatal("expected a diagnostic for the out-of-order strings section")
	}
	body := p.Tree().Rules()[0].Body()
	if body.Condition() == nil {
		t.Error("expected a CONDITION section to still be present")
	}
	if body.Strings() == nil {
		t.Error("expected a STRINGS section to still be present despite being out of order")
	}
	if p.SyntaxNode().Text() != text {
		t.Errorf("tree not lossless: got %q, want %q", p.SyntaxNode().Text(), text)
	}
}

func TestParseDebugDumpCoversWholeRange(t *testing.T) {
	text := "rule a { condition: true }"
	p := ParseSourceText(text)
	dump := p.DebugDump()
	if !strings.HasPrefix(dump, "SOURCE_FILE@0..") {
		t.Errorf("dump should start with the root node's range, got %q", firstLine(dump))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
