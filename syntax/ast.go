package syntax

// AstNode is implemented by every typed overlay wrapper around a *RedNode.
// Grounded on the teacher's syntax/ast.go (AstNode interface, Kind/
// ToUntyped/isAstNode trio), restated against this package's red-tree
// cursors instead of gotypst's single-level SyntaxNode.
type AstNode interface {
	Kind() SyntaxKind
	Syntax() *RedNode
	isAstNode()
}

// AstToken is the token-side counterpart of AstNode.
type AstToken interface {
	Kind() SyntaxKind
	Syntax() *RedToken
	Text() string
	isAstToken()
}

// support holds the small set of child-finding helpers every generated
// wrapper's accessor methods are built from, mirroring the original
// prototype's ast::support module (child/children/token).
type support struct{}

// child returns the first direct child node of kind, or nil.
func (support) child(n *RedNode, kind SyntaxKind) *RedNode {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// childAt returns the nth (0-based) direct child node of kind, or nil.
func (support) childAt(n *RedNode, kind SyntaxKind, index int) *RedNode {
	if n == nil {
		return nil
	}
	i := 0
	for _, c := range n.Children() {
		if c.Kind() != kind {
			continue
		}
		if i == index {
			return c
		}
		i++
	}
	return nil
}

// children returns every direct child node of kind, in order.
func (support) children(n *RedNode, kind SyntaxKind) []*RedNode {
	if n == nil {
		return nil
	}
	var out []*RedNode
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// token returns the first direct child token of kind, or nil.
func (support) token(n *RedNode, kind SyntaxKind) *RedToken {
	if n == nil {
		return nil
	}
	for _, e := range n.ChildrenWithTokens() {
		if e.Token != nil && e.Token.Kind() == kind {
			return e.Token
		}
	}
	return nil
}

// tokens returns every direct child token of kind, in order.
func (support) tokens(n *RedNode, kind SyntaxKind) []*RedToken {
	if n == nil {
		return nil
	}
	var out []*RedToken
	for _, e := range n.ChildrenWithTokens() {
		if e.Token != nil && e.Token.Kind() == kind {
			out = append(out, e.Token)
		}
	}
	return out
}

var sup support
