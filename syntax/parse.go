package syntax

import "fmt"

// Parse is the result of running the full pipeline (lex, parse, sink) over
// one source text: a lossless green tree plus every diagnostic collected
// along the way, in the order lexer, parser, then sink (spec.md §4.I).
type Parse struct {
	text   string
	green  *GreenNode
	errors []SyntaxError
}

// ParseSourceText runs the complete pipeline over text and returns a Parse.
// This is the module's single entry point; callers never construct a
// Lexer/TokenSource/Parser/Sink by hand.
func ParseSourceText(text string) Parse {
	raw, lexErrors := Tokenize(text)
	ts := NewTokenSource(raw)
	events := ParseSourceFile(ts)
	green, sinkErrors := RunSink(events, raw, text)

	var all []SyntaxError
	all = append(all, lexErrors...)
	all = append(all, sinkErrors...)
	return Parse{text: text, green: green, errors: all}
}

// Ok reports whether the parse produced zero diagnostics. A tree can still
// be present and usable even when this is false (spec.md §8, "a parse
// always yields a tree").
func (p Parse) Ok() bool { return len(p.errors) == 0 }

// Errors returns every diagnostic collected during the parse: all lexer
// diagnostics first, then the parser/sink ones, each group in emission order.
func (p Parse) Errors() []SyntaxError { return p.errors }

// Green returns the root green node.
func (p Parse) Green() *GreenNode { return p.green }

// SyntaxNode returns a red cursor over the root, the starting point for any
// tree traversal or typed-AST cast.
func (p Parse) SyntaxNode() *RedNode {
	return NewRoot(p.green)
}

// Tree casts the parse's root to a typed SourceFile, the entry point for
// the AST overlay (ast.go, ast_nodes.go).
func (p Parse) Tree() SourceFile {
	return SourceFile{node: p.SyntaxNode()}
}

// DebugDump renders the tree in spec.md §6's textual dump format:
// "<KIND>@start..end" for nodes, "<KIND>@start..end \"text\"" for tokens,
// one SyntaxError(...) line per diagnostic, children indented two spaces
// per level. Grounded on the original prototype's debug Display impl for
// SyntaxNode, restated against this package's RedNode/RedToken.
func (p Parse) DebugDump() string {
	var out string
	var walk func(depth int, el RedElement)
	walk = func(depth int, el RedElement) {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		r := el.TextRange()
		if el.Node != nil {
			out += fmt.Sprintf("%s%s@%d..%d\n", indent, el.Node.Kind().Name(), r.Start, r.End)
			for _, c := range el.Node.ChildrenWithTokens() {
				walk(depth+1, c)
			}
			return
		}
		out += fmt.Sprintf("%s%s@%d..%d %q\n", indent, el.Token.Kind().Name(), r.Start, r.End, el.Token.Text())
	}
	root := p.SyntaxNode()
	walk(0, RedElement{Node: root})
	for _, e := range p.errors {
		out += e.String() + "\n"
	}
	return out
}
