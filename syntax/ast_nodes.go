package syntax

// SourceFile is the AST root, wrapping SOURCE_FILE.
type SourceFile struct{ node *RedNode }

func (n SourceFile) Kind() SyntaxKind { return SOURCE_FILE }
func (n SourceFile) Syntax() *RedNode { return n.node }
func (SourceFile) isAstNode()         {}

// Imports returns every top-level import statement, in source order.
func (n SourceFile) Imports() []ImportStmt {
	var out []ImportStmt
	for _, c := range sup.children(n.node, IMPORT_STMT) {
		out = append(out, ImportStmt{c})
	}
	return out
}

// Includes returns every top-level include statement, in source order.
func (n SourceFile) Includes() []IncludeStmt {
	var out []IncludeStmt
	for _, c := range sup.children(n.node, INCLUDE_STMT) {
		out = append(out, IncludeStmt{c})
	}
	return out
}

// Rules returns every top-level rule, in source order.
func (n SourceFile) Rules() []Rule {
	var out []Rule
	for _, c := range sup.children(n.node, RULE) {
		out = append(out, Rule{c})
	}
	return out
}

// ImportStmt wraps IMPORT_STMT: `import "<path>"`.
type ImportStmt struct{ node *RedNode }

func (n ImportStmt) Kind() SyntaxKind { return IMPORT_STMT }
func (n ImportStmt) Syntax() *RedNode { return n.node }
func (ImportStmt) isAstNode()         {}

// Path returns the imported module path token; its text keeps the quotes.
func (n ImportStmt) Path() *RedToken { return sup.token(n.node, STRING_LIT) }

// IncludeStmt wraps INCLUDE_STMT: `include "<path>"`.
type IncludeStmt struct{ node *RedNode }

func (n IncludeStmt) Kind() SyntaxKind { return INCLUDE_STMT }
func (n IncludeStmt) Syntax() *RedNode { return n.node }
func (IncludeStmt) isAstNode()         {}

// Path returns the included file path token.
func (n IncludeStmt) Path() *RedToken { return sup.token(n.node, STRING_LIT) }

// Rule wraps RULE: modifiers, a name, optional tags and a body.
type Rule struct{ node *RedNode }

func (n Rule) Kind() SyntaxKind { return RULE }
func (n Rule) Syntax() *RedNode { return n.node }
func (Rule) isAstNode()         {}

// Modifiers returns the rule's `private`/`global` modifier list, in order.
func (n Rule) Modifiers() []Modifier {
	var out []Modifier
	for _, c := range sup.children(n.node, MODIFIER) {
		out = append(out, Modifier{c})
	}
	return out
}

// Name returns the rule's identifier token, or nil if it was malformed.
func (n Rule) Name() *RedToken { return sup.token(n.node, IDENTIFIER) }

// Tags returns the rule's `: tag1 tag2 ...` list, if present.
func (n Rule) Tags() []Tag {
	var out []Tag
	for _, c := range sup.children(n.node, TAG) {
		out = append(out, Tag{c})
	}
	return out
}

// Body returns the rule's block expression, or nil if it was malformed.
func (n Rule) Body() *BlockExpr {
	if c := sup.child(n.node, BLOCK_EXPR); c != nil {
		return &BlockExpr{c}
	}
	return nil
}

// IsPrivate reports whether the rule carries a `private` modifier.
func (n Rule) IsPrivate() bool { return n.hasModifierKeyword(PRIVATE_KW) }

// IsGlobal reports whether the rule carries a `global` modifier.
func (n Rule) IsGlobal() bool { return n.hasModifierKeyword(GLOBAL_KW) }

func (n Rule) hasModifierKeyword(kw SyntaxKind) bool {
	for _, m := range n.Modifiers() {
		if m.Keyword() != nil && m.Keyword().Kind() == kw {
			return true
		}
	}
	return false
}

// Modifier wraps MODIFIER, a single `private` or `global` keyword.
type Modifier struct{ node *RedNode }

func (n Modifier) Kind() SyntaxKind { return MODIFIER }
func (n Modifier) Syntax() *RedNode { return n.node }
func (Modifier) isAstNode()         {}

// Keyword returns the modifier's keyword token.
func (n Modifier) Keyword() *RedToken {
	if t := sup.token(n.node, PRIVATE_KW); t != nil {
		return t
	}
	return sup.token(n.node, GLOBAL_KW)
}

// Tag wraps TAG, a single identifier following a rule's `:`.
type Tag struct{ node *RedNode }

func (n Tag) Kind() SyntaxKind { return TAG }
func (n Tag) Syntax() *RedNode { return n.node }
func (Tag) isAstNode()         {}

// NameToken returns the tag's identifier token.
func (n Tag) NameToken() *RedToken { return sup.token(n.node, IDENTIFIER) }

// BlockExpr wraps BLOCK_EXPR: `{ meta? strings? condition }`.
type BlockExpr struct{ node *RedNode }

func (n BlockExpr) Kind() SyntaxKind { return BLOCK_EXPR }
func (n BlockExpr) Syntax() *RedNode { return n.node }
func (BlockExpr) isAstNode()         {}

// Meta returns the rule body's meta section, if present.
func (n BlockExpr) Meta() *Meta {
	if c := sup.child(n.node, META); c != nil {
		return &Meta{c}
	}
	return nil
}

// Strings returns the rule body's strings section, if present.
func (n BlockExpr) Strings() *Strings {
	if c := sup.child(n.node, STRINGS); c != nil {
		return &Strings{c}
	}
	return nil
}

// Condition returns the rule body's condition section.
func (n BlockExpr) Condition() *Condition {
	if c := sup.child(n.node, CONDITION); c != nil {
		return &Condition{c}
	}
	return nil
}

// Meta wraps META: `meta: stmt*`.
type Meta struct{ node *RedNode }

func (n Meta) Kind() SyntaxKind { return META }
func (n Meta) Syntax() *RedNode { return n.node }
func (Meta) isAstNode()         {}

// Statements returns the meta section's key/value statements, in order.
func (n Meta) Statements() []MetaStmt {
	var out []MetaStmt
	for _, c := range sup.children(n.node, META_STMT) {
		out = append(out, MetaStmt{c})
	}
	return out
}

// MetaStmt wraps META_STMT: `identifier = literal`.
type MetaStmt struct{ node *RedNode }

func (n MetaStmt) Kind() SyntaxKind { return META_STMT }
func (n MetaStmt) Syntax() *RedNode { return n.node }
func (MetaStmt) isAstNode()         {}

// NameToken returns the statement's key identifier token.
func (n MetaStmt) NameToken() *RedToken { return sup.token(n.node, IDENTIFIER) }

// ValueToken returns the statement's literal value token (string, bool,
// int or float), whichever is present.
func (n MetaStmt) ValueToken() *RedToken {
	for _, k := range []SyntaxKind{STRING_LIT, BOOL_LIT, INT_LIT, FLOAT_LIT} {
		if t := sup.token(n.node, k); t != nil {
			return t
		}
	}
	return nil
}

// Strings wraps STRINGS: `strings: stmt*`.
type Strings struct{ node *RedNode }

func (n Strings) Kind() SyntaxKind { return STRINGS }
func (n Strings) Syntax() *RedNode { return n.node }
func (Strings) isAstNode()         {}

// Statements returns the strings section's `$id = pattern` statements.
func (n Strings) Statements() []VariableStmt {
	var out []VariableStmt
	for _, c := range sup.children(n.node, VARIABLE_STMT) {
		out = append(out, VariableStmt{c})
	}
	return out
}

// VariableStmt wraps VARIABLE_STMT: `$id = pattern`.
type VariableStmt struct{ node *RedNode }

func (n VariableStmt) Kind() SyntaxKind { return VARIABLE_STMT }
func (n VariableStmt) Syntax() *RedNode { return n.node }
func (VariableStmt) isAstNode()         {}

// NameToken returns the statement's `$id` variable token.
func (n VariableStmt) NameToken() *RedToken { return sup.token(n.node, VARIABLE) }

// Pattern returns the statement's pattern, or nil if it was malformed.
func (n VariableStmt) Pattern() *Pattern {
	if c := sup.child(n.node, PATTERN); c != nil {
		return &Pattern{c}
	}
	return nil
}

// Pattern wraps PATTERN: a string, hex or regex body plus modifiers.
type Pattern struct{ node *RedNode }

func (n Pattern) Kind() SyntaxKind { return PATTERN }
func (n Pattern) Syntax() *RedNode { return n.node }
func (Pattern) isAstNode()         {}

// StringToken returns the pattern's string literal token, if this is a
// plain text pattern.
func (n Pattern) StringToken() *RedToken { return sup.token(n.node, STRING_LIT) }

// Hex returns the pattern's hex body, if this is a hex pattern.
func (n Pattern) Hex() *HexPattern {
	if c := sup.child(n.node, HEX_PATTERN); c != nil {
		return &HexPattern{c}
	}
	return nil
}

// Regex returns the pattern's regex body, if this is a regex pattern.
func (n Pattern) Regex() *RegexPattern {
	if c := sup.child(n.node, REGEX_PATTERN); c != nil {
		return &RegexPattern{c}
	}
	return nil
}

// Modifiers returns the pattern's trailing modifier list (`nocase`,
// `ascii`, `wide`, `fullword`, `xor`, `base64`, `base64wide`).
func (n Pattern) Modifiers() []PatternMod {
	var out []PatternMod
	for _, c := range sup.children(n.node, PATTERN_MOD) {
		out = append(out, PatternMod{c})
	}
	return out
}

// PatternMod wraps PATTERN_MOD, one modifier keyword plus any argument.
type PatternMod struct{ node *RedNode }

func (n PatternMod) Kind() SyntaxKind { return PATTERN_MOD }
func (n PatternMod) Syntax() *RedNode { return n.node }
func (PatternMod) isAstNode()         {}

// Keyword returns the modifier's leading keyword token.
func (n PatternMod) Keyword() *RedToken {
	for _, e := range n.node.ChildrenWithTokens() {
		if e.Token != nil && !e.Token.Kind().IsTrivia() {
			return e.Token
		}
	}
	return nil
}

// XorRange returns the modifier's `(lo[-hi])` argument, for `xor`.
func (n PatternMod) XorRange() *XorRange {
	if c := sup.child(n.node, XOR_RANGE); c != nil {
		return &XorRange{c}
	}
	return nil
}

// Alphabet returns the modifier's custom alphabet argument, for `base64`/
// `base64wide`.
func (n PatternMod) Alphabet() *BaseAlphabet {
	if c := sup.child(n.node, BASE_ALPHABET); c != nil {
		return &BaseAlphabet{c}
	}
	return nil
}

// XorRange wraps XOR_RANGE: `(lo)` or `(lo-hi)`.
type XorRange struct{ node *RedNode }

func (n XorRange) Kind() SyntaxKind { return XOR_RANGE }
func (n XorRange) Syntax() *RedNode { return n.node }
func (XorRange) isAstNode()         {}

// Bounds returns the range's one or two integer literal tokens.
func (n XorRange) Bounds() []*RedToken { return sup.tokens(n.node, INT_LIT) }

// BaseAlphabet wraps BASE_ALPHABET: `(alphabet-string)`.
type BaseAlphabet struct{ node *RedNode }

func (n BaseAlphabet) Kind() SyntaxKind { return BASE_ALPHABET }
func (n BaseAlphabet) Syntax() *RedNode { return n.node }
func (BaseAlphabet) isAstNode()         {}

// StringToken returns the alphabet's string literal token.
func (n BaseAlphabet) StringToken() *RedToken { return sup.token(n.node, STRING_LIT) }

// HexPattern wraps HEX_PATTERN: `{ HEX_TOKEN }`.
type HexPattern struct{ node *RedNode }

func (n HexPattern) Kind() SyntaxKind { return HEX_PATTERN }
func (n HexPattern) Syntax() *RedNode { return n.node }
func (HexPattern) isAstNode()         {}

// Body returns the pattern's top-level hex token sequence.
func (n HexPattern) Body() *HexToken {
	if c := sup.child(n.node, HEX_TOKEN); c != nil {
		return &HexToken{c}
	}
	return nil
}

// HexToken wraps HEX_TOKEN: a first element plus zero or more
// HEX_TOKEN_TAIL-wrapped subsequent elements.
type HexToken struct{ node *RedNode }

func (n HexToken) Kind() SyntaxKind { return HEX_TOKEN }
func (n HexToken) Syntax() *RedNode { return n.node }
func (HexToken) isAstNode()         {}

// Tails returns the token's subsequent elements, one HexTokenTail per
// HEX_TOKEN_TAIL child, in order.
func (n HexToken) Tails() []HexTokenTail {
	var out []HexTokenTail
	for _, c := range sup.children(n.node, HEX_TOKEN_TAIL) {
		out = append(out, HexTokenTail{c})
	}
	return out
}

// HexTokenTail wraps HEX_TOKEN_TAIL, one non-first element of a hex token.
type HexTokenTail struct{ node *RedNode }

func (n HexTokenTail) Kind() SyntaxKind { return HEX_TOKEN_TAIL }
func (n HexTokenTail) Syntax() *RedNode { return n.node }
func (HexTokenTail) isAstNode()         {}

// HexByte wraps HEX_BYTE: a literal byte or masked nibble pair (`4D`,
// `?D`, `4?`, `??`).
type HexByte struct{ node *RedNode }

func (n HexByte) Kind() SyntaxKind { return HEX_BYTE }
func (n HexByte) Syntax() *RedNode { return n.node }
func (HexByte) isAstNode()         {}

// Token returns the byte's HEX_LIT token.
func (n HexByte) Token() *RedToken { return sup.token(n.node, HEX_LIT) }

// HexAlternative wraps HEX_ALTERNATIVE: `( HEX_TOKEN (| HEX_TOKEN)* )`.
type HexAlternative struct{ node *RedNode }

func (n HexAlternative) Kind() SyntaxKind { return HEX_ALTERNATIVE }
func (n HexAlternative) Syntax() *RedNode { return n.node }
func (HexAlternative) isAstNode()         {}

// Branches returns each alternative branch's hex token sequence.
func (n HexAlternative) Branches() []HexToken {
	var out []HexToken
	for _, c := range sup.children(n.node, HEX_TOKEN) {
		out = append(out, HexToken{c})
	}
	return out
}

// HexJump wraps HEX_JUMP: `[n]`, `[n-m]`, `[n-]` or `[-]`.
type HexJump struct{ node *RedNode }

func (n HexJump) Kind() SyntaxKind { return HEX_JUMP }
func (n HexJump) Syntax() *RedNode { return n.node }
func (HexJump) isAstNode()         {}

// Bounds returns the jump's zero, one or two integer literal tokens.
func (n HexJump) Bounds() []*RedToken { return sup.tokens(n.node, INT_LIT) }

// RegexPattern wraps REGEX_PATTERN: `/body/mods`.
type RegexPattern struct{ node *RedNode }

func (n RegexPattern) Kind() SyntaxKind { return REGEX_PATTERN }
func (n RegexPattern) Syntax() *RedNode { return n.node }
func (RegexPattern) isAstNode()         {}

// BodyToken returns the regex's REGEX_LIT body token.
func (n RegexPattern) BodyToken() *RedToken { return sup.token(n.node, REGEX_LIT) }

// Modifiers returns the regex's trailing `i`/`s` modifiers.
func (n RegexPattern) Modifiers() []*RedToken {
	var out []*RedToken
	for _, e := range n.node.ChildrenWithTokens() {
		if e.Node != nil && e.Node.Kind() == REGEX_MOD {
			out = append(out, sup.token(e.Node, CASE_INSENSITIVE))
			if t := sup.token(e.Node, DOT_MATCHES_ALL); t != nil {
				out[len(out)-1] = t
			}
		}
	}
	return out
}

// Condition wraps CONDITION: `condition: stmt+`.
type Condition struct{ node *RedNode }

func (n Condition) Kind() SyntaxKind { return CONDITION }
func (n Condition) Syntax() *RedNode { return n.node }
func (Condition) isAstNode()         {}

// Statements returns the condition's expression statements, in order.
func (n Condition) Statements() []ExpressionStmt {
	var out []ExpressionStmt
	for _, c := range sup.children(n.node, EXPRESSION_STMT) {
		out = append(out, ExpressionStmt{c})
	}
	return out
}

// ExpressionStmt wraps EXPRESSION_STMT, one top-level boolean expression.
type ExpressionStmt struct{ node *RedNode }

func (n ExpressionStmt) Kind() SyntaxKind { return EXPRESSION_STMT }
func (n ExpressionStmt) Syntax() *RedNode { return n.node }
func (ExpressionStmt) isAstNode()         {}

// Expr returns the statement's boolean expression.
func (n ExpressionStmt) Expr() Expr {
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			return e
		}
	}
	return nil
}

// IdentifierNode wraps IDENTIFIER_NODE, one segment of a (possibly dotted)
// name.
type IdentifierNode struct{ node *RedNode }

func (n IdentifierNode) Kind() SyntaxKind { return IDENTIFIER_NODE }
func (n IdentifierNode) Syntax() *RedNode { return n.node }
func (IdentifierNode) isAstNode()         {}

// NameToken returns the segment's identifier token.
func (n IdentifierNode) NameToken() *RedToken { return sup.token(n.node, IDENTIFIER) }

// FieldAccess wraps FIELD_ACCESS: a dotted identifier chain (`a.b.c`).
type FieldAccess struct{ node *RedNode }

func (n FieldAccess) Kind() SyntaxKind { return FIELD_ACCESS }
func (n FieldAccess) Syntax() *RedNode { return n.node }
func (FieldAccess) isAstNode()         {}

// Segments returns each dotted segment, in order.
func (n FieldAccess) Segments() []IdentifierNode {
	var out []IdentifierNode
	for _, c := range sup.children(n.node, IDENTIFIER_NODE) {
		out = append(out, IdentifierNode{c})
	}
	return out
}

// PrimaryExpr wraps PRIMARY_EXPR, the catch-all leaf-expression wrapper
// (literals, unary-prefixed operands, a non-dotted identifier, the
// compound `#id`/`!id`/`@id` variable forms).
type PrimaryExpr struct{ node *RedNode }

func (n PrimaryExpr) Kind() SyntaxKind { return PRIMARY_EXPR }
func (n PrimaryExpr) Syntax() *RedNode { return n.node }
func (PrimaryExpr) isAstNode()         {}

// LiteralToken returns the expression's literal token, if it wraps one.
func (n PrimaryExpr) LiteralToken() *RedToken {
	for _, k := range []SyntaxKind{
		INT_LIT, FLOAT_LIT, STRING_LIT, BOOL_LIT, REGEX_LIT,
		FILESIZE_KW, ENTRYPOINT_KW, VARIABLE_COUNT, VARIABLE_OFFSET, VARIABLE_LENGTH,
	} {
		if t := sup.token(n.node, k); t != nil {
			return t
		}
	}
	return nil
}

// Identifier returns the expression's single (non-dotted) identifier
// segment, if it wraps one.
func (n PrimaryExpr) Identifier() *IdentifierNode {
	if c := sup.child(n.node, IDENTIFIER_NODE); c != nil {
		return &IdentifierNode{c}
	}
	return nil
}

// UnaryOpToken returns the leading `-`/`~` token, for a unary-prefixed
// primary expression.
func (n PrimaryExpr) UnaryOpToken() *RedToken {
	if t := sup.token(n.node, HYPHEN); t != nil {
		return t
	}
	return sup.token(n.node, TILDE)
}

// Operand returns the expression's single inner sub-expression, for the
// unary-prefixed form (`-term`, `~term`) and the `@var[i]`/`!var[i]`
// bracketed-index forms, which both attach their inner expression as a
// direct, unwrapped child.
func (n PrimaryExpr) Operand() Expr {
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			return e
		}
	}
	return nil
}

// InRange returns the `#var in (lo..hi)` count form's range clause, if
// present.
func (n PrimaryExpr) InRange() *InRange {
	if c := sup.child(n.node, IN_RANGE); c != nil {
		return &InRange{c}
	}
	return nil
}

// NestedExpr wraps NESTED_EXPR: `(EXPR_BODY)`.
type NestedExpr struct{ node *RedNode }

func (n NestedExpr) Kind() SyntaxKind { return NESTED_EXPR }
func (n NestedExpr) Syntax() *RedNode { return n.node }
func (NestedExpr) isAstNode()         {}

// Body returns the parenthesized expression's inner expression. Most
// producers wrap it in an EXPR_BODY node; the iterable-as-nested-expr form
// (parseIterable's default branch) attaches it directly, so both shapes are
// handled here.
func (n NestedExpr) Body() Expr {
	if c := sup.child(n.node, EXPR_BODY); c != nil {
		return ExprBody{c}.Inner()
	}
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			return e
		}
	}
	return nil
}

// IndexingExpr wraps INDEXING_EXPR: `term[expr]`.
type IndexingExpr struct{ node *RedNode }

func (n IndexingExpr) Kind() SyntaxKind { return INDEXING_EXPR }
func (n IndexingExpr) Syntax() *RedNode { return n.node }
func (IndexingExpr) isAstNode()         {}

// Index returns the indexing expression's bracketed index.
func (n IndexingExpr) Index() *ExprIndex {
	if c := sup.child(n.node, EXPR_INDEX); c != nil {
		return &ExprIndex{c}
	}
	return nil
}

// ExprIndex wraps EXPR_INDEX: the bracketed body of an indexing expr.
type ExprIndex struct{ node *RedNode }

func (n ExprIndex) Kind() SyntaxKind { return EXPR_INDEX }
func (n ExprIndex) Syntax() *RedNode { return n.node }
func (ExprIndex) isAstNode()         {}

// FunctionCallExpr wraps FUNCTION_CALL_EXPR: `term(args)`.
type FunctionCallExpr struct{ node *RedNode }

func (n FunctionCallExpr) Kind() SyntaxKind { return FUNCTION_CALL_EXPR }
func (n FunctionCallExpr) Syntax() *RedNode { return n.node }
func (FunctionCallExpr) isAstNode()         {}

// Args returns the call's argument tuple.
func (n FunctionCallExpr) Args() *ExprTuple {
	if c := sup.child(n.node, EXPR_TUPLE); c != nil {
		return &ExprTuple{c}
	}
	return nil
}

// ExprTuple wraps EXPR_TUPLE: a parenthesized, comma-separated expr list.
type ExprTuple struct{ node *RedNode }

func (n ExprTuple) Kind() SyntaxKind { return EXPR_TUPLE }
func (n ExprTuple) Syntax() *RedNode { return n.node }
func (ExprTuple) isAstNode()         {}

// Elements returns each argument expression, in order.
func (n ExprTuple) Elements() []Expr {
	var out []Expr
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Quantifier wraps QUANTIFIER: `all`/`any`/`none`/an expr, optional `%`.
type Quantifier struct{ node *RedNode }

func (n Quantifier) Kind() SyntaxKind { return QUANTIFIER }
func (n Quantifier) Syntax() *RedNode { return n.node }
func (Quantifier) isAstNode()         {}

// KeywordToken returns the `all`/`any`/`none` keyword, if the quantifier is
// one of those rather than a counted/percentage expression.
func (n Quantifier) KeywordToken() *RedToken {
	for _, k := range []SyntaxKind{ALL_KW, ANY_KW, NONE_KW} {
		if t := sup.token(n.node, k); t != nil {
			return t
		}
	}
	return nil
}

// IsPercentage reports whether the quantifier is a `<expr>%` form.
func (n Quantifier) IsPercentage() bool { return sup.token(n.node, PERCENT) != nil }

// OfExpr wraps OF_EXPR: `quantifier of (them|tuple) [at|in anchor]`.
type OfExpr struct{ node *RedNode }

func (n OfExpr) Kind() SyntaxKind { return OF_EXPR }
func (n OfExpr) Syntax() *RedNode { return n.node }
func (OfExpr) isAstNode()         {}

// Quantifier returns the expression's leading quantifier.
func (n OfExpr) Quantifier() *Quantifier {
	if c := sup.child(n.node, QUANTIFIER); c != nil {
		return &Quantifier{c}
	}
	return nil
}

// Them reports whether the expression is `quantifier of them`.
func (n OfExpr) Them() bool { return sup.token(n.node, THEM_KW) != nil }

// PatternTuple returns the expression's `($a, $b, ...)` operand set, if
// present (mutually exclusive with Them and BooleanTuple).
func (n OfExpr) PatternTuple() *PatternIdentTuple {
	if c := sup.child(n.node, PATTERN_IDENT_TUPLE); c != nil {
		return &PatternIdentTuple{c}
	}
	return nil
}

// BooleanTuple returns the expression's `(expr, expr, ...)` operand set, if
// present.
func (n OfExpr) BooleanTuple() *BooleanExprTuple {
	if c := sup.child(n.node, BOOLEAN_EXPR_TUPLE); c != nil {
		return &BooleanExprTuple{c}
	}
	return nil
}

// AtToken returns the expression's trailing `at` keyword, if anchored that
// way.
func (n OfExpr) AtToken() *RedToken { return sup.token(n.node, AT_KW) }

// AtExpr returns the offset expression following AtToken.
func (n OfExpr) AtExpr() Expr {
	if n.AtToken() == nil {
		return nil
	}
	return lastExprChild(n.node)
}

// InRange returns the expression's trailing `in <range>` clause, if
// anchored that way.
func (n OfExpr) InRange() *InRange {
	if c := sup.child(n.node, IN_RANGE); c != nil {
		return &InRange{c}
	}
	return nil
}

// PatternIdentTuple wraps PATTERN_IDENT_TUPLE: `($a, $b*, ...)`.
type PatternIdentTuple struct{ node *RedNode }

func (n PatternIdentTuple) Kind() SyntaxKind { return PATTERN_IDENT_TUPLE }
func (n PatternIdentTuple) Syntax() *RedNode { return n.node }
func (PatternIdentTuple) isAstNode()         {}

// Items returns the tuple's `$var` or `$var*` tokens, in order.
func (n PatternIdentTuple) Items() []*RedToken {
	var out []*RedToken
	for _, e := range n.node.ChildrenWithTokens() {
		if e.Token != nil && e.Token.Kind() == VARIABLE {
			out = append(out, e.Token)
		}
	}
	return out
}

// Wildcards returns the VARIABLE_WILDCARD node of each `$var*` item, in order.
func (n PatternIdentTuple) Wildcards() []VariableWildcard {
	var out []VariableWildcard
	for _, c := range sup.children(n.node, VARIABLE_WILDCARD) {
		out = append(out, VariableWildcard{c})
	}
	return out
}

// VariableWildcard wraps VARIABLE_WILDCARD: the `*` of a `$var*` item. The
// `$var` token itself is the node's preceding sibling, not a child.
type VariableWildcard struct{ node *RedNode }

func (n VariableWildcard) Kind() SyntaxKind { return VARIABLE_WILDCARD }
func (n VariableWildcard) Syntax() *RedNode { return n.node }
func (VariableWildcard) isAstNode()         {}

// NameToken returns the wildcard's `$var` token.
func (n VariableWildcard) NameToken() *RedToken {
	parent := n.node.parent
	if parent == nil || n.node.indexInParent < 1 {
		return nil
	}
	prev := parent.ChildrenWithTokens()[n.node.indexInParent-1]
	if prev.Token != nil && prev.Token.Kind() == VARIABLE {
		return prev.Token
	}
	return nil
}

// BooleanExprTuple wraps BOOLEAN_EXPR_TUPLE: `(expr, expr, ...)`.
type BooleanExprTuple struct{ node *RedNode }

func (n BooleanExprTuple) Kind() SyntaxKind { return BOOLEAN_EXPR_TUPLE }
func (n BooleanExprTuple) Syntax() *RedNode { return n.node }
func (BooleanExprTuple) isAstNode()         {}

// Elements returns the tuple's boolean expressions, in order.
func (n BooleanExprTuple) Elements() []Expr {
	var out []Expr
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// ForExpr wraps FOR_EXPR: `for quantifier (of tuple | idents in iterable) :
// (body)`.
type ForExpr struct{ node *RedNode }

func (n ForExpr) Kind() SyntaxKind { return FOR_EXPR }
func (n ForExpr) Syntax() *RedNode { return n.node }
func (ForExpr) isAstNode()         {}

// Quantifier returns the loop's quantifier.
func (n ForExpr) Quantifier() *Quantifier {
	if c := sup.child(n.node, QUANTIFIER); c != nil {
		return &Quantifier{c}
	}
	return nil
}

// PatternTuple returns the loop's `of ($a, $b, ...)` operand set, if the
// loop iterates over declared patterns rather than bound identifiers.
func (n ForExpr) PatternTuple() *PatternIdentTuple {
	if c := sup.child(n.node, PATTERN_IDENT_TUPLE); c != nil {
		return &PatternIdentTuple{c}
	}
	return nil
}

// BoundIdents returns the loop's `for i, x in ...` bound identifier list,
// if the loop iterates over an explicit iterable rather than patterns. This
// is always the first EXPR_TUPLE child; when the iterable itself is a tuple
// (parseIterable's comma branch) it appears as a second, distinct
// EXPR_TUPLE child, so indexing by position rather than kind disambiguates
// the two.
func (n ForExpr) BoundIdents() []*RedToken {
	idents := sup.childAt(n.node, EXPR_TUPLE, 0)
	return sup.tokens(idents, IDENTIFIER)
}

// Iterable returns the loop's range, nested-expression or tuple iterable.
func (n ForExpr) Iterable() *RedNode {
	if c := sup.child(n.node, RANGE); c != nil {
		return c
	}
	if c := sup.child(n.node, NESTED_EXPR); c != nil {
		return c
	}
	// Index 1: index 0 (if any) is always the bound-identifier list.
	return sup.childAt(n.node, EXPR_TUPLE, 1)
}

// Body returns the loop's parenthesized boolean body.
func (n ForExpr) Body() Expr {
	if c := sup.child(n.node, EXPR_BODY); c != nil {
		return ExprBody{c}.Inner()
	}
	return nil
}

// Range wraps RANGE: `(lo..hi)`.
type Range struct{ node *RedNode }

func (n Range) Kind() SyntaxKind { return RANGE }
func (n Range) Syntax() *RedNode { return n.node }
func (Range) isAstNode()         {}

// Bounds returns the range's two sub-expressions, low then high.
func (n Range) Bounds() []Expr {
	var out []Expr
	for _, c := range n.node.Children() {
		if e := ExprFromNode(c); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// InRange wraps IN_RANGE: `in (lo..hi)`.
type InRange struct{ node *RedNode }

func (n InRange) Kind() SyntaxKind { return IN_RANGE }
func (n InRange) Syntax() *RedNode { return n.node }
func (InRange) isAstNode()         {}

// Range returns the clause's range operand.
func (n InRange) Range() *Range {
	if c := sup.child(n.node, RANGE); c != nil {
		return &Range{c}
	}
	return nil
}

// VariableAnchor wraps VARIABLE_ANCHOR: `$var at expr` or `$var in range`.
type VariableAnchor struct{ node *RedNode }

func (n VariableAnchor) Kind() SyntaxKind { return VARIABLE_ANCHOR }
func (n VariableAnchor) Syntax() *RedNode { return n.node }
func (VariableAnchor) isAstNode()         {}

// NameToken returns the anchor's `$var` token.
func (n VariableAnchor) NameToken() *RedToken { return sup.token(n.node, VARIABLE) }

// AtToken returns the `at` keyword token, if this is an `at` anchor.
func (n VariableAnchor) AtToken() *RedToken { return sup.token(n.node, AT_KW) }

// AtExpr returns the offset expression following AtToken.
func (n VariableAnchor) AtExpr() Expr {
	if n.AtToken() == nil {
		return nil
	}
	return lastExprChild(n.node)
}

// InRange returns the `in <range>` clause, if this is an `in` anchor.
func (n VariableAnchor) InRange() *InRange {
	if c := sup.child(n.node, IN_RANGE); c != nil {
		return &InRange{c}
	}
	return nil
}
