package syntax

import "unicode/utf8"

// RawToken is a (kind, byte length) pair as produced by Tokenize, grounded
// on spec.md §3 "Raw token". length is always > 0 except for the synthetic
// trailing EOF.
type RawToken struct {
	Kind SyntaxKind
	Len  uint32
}

// Tokenize performs maximal-munch lexing of text into a sequence of raw
// tokens whose lengths sum to len(text), terminated by a zero-length EOF
// token, plus a list of lexing diagnostics (one per rejected byte).
//
// Grounded on the teacher's syntax/lexer.go dispatch-and-sub-scanner shape;
// the token categories and recognition priority follow spec.md §4.B.
func Tokenize(text string) ([]RawToken, []SyntaxError) {
	l := &lexer{s: NewScanner(text), text: text}
	for !l.s.Done() {
		l.next()
	}
	l.tokens = append(l.tokens, RawToken{Kind: EOF, Len: 0})
	return l.tokens, l.errors
}

type lexer struct {
	s      *Scanner
	text   string
	tokens []RawToken
	errors []SyntaxError
}

func (l *lexer) emit(kind SyntaxKind, start int) {
	l.tokens = append(l.tokens, RawToken{Kind: kind, Len: uint32(l.s.Pos() - start)})
}

func (l *lexer) errAt(start, end int, msg string) {
	l.errors = append(l.errors, SyntaxError{Message: msg, Range: TextRange{Start: uint32(start), End: uint32(end)}})
}

func (l *lexer) next() {
	start := l.s.Pos()
	c := l.s.Peek()

	switch {
	case IsSpace(c):
		l.lexWhitespace(start)
		return
	case c == '/' && l.s.PeekAt(1) == '/':
		l.lexLineComment(start)
		return
	case c == '/' && l.s.PeekAt(1) == '*':
		l.lexBlockComment(start)
		return
	case c == '/':
		if l.tryLexRegex(start) {
			return
		}
		l.s.Eat()
		l.emit(SLASH, start)
		return
	case c == '"':
		l.lexString(start)
		return
	case c == '$' || c == '#' || c == '@' || (c == '!' && l.s.PeekAt(1) != '='):
		l.lexVariable(start)
		return
	case IsDigit(c):
		l.lexNumber(start)
		return
	case IsIdentStart(c):
		l.lexIdentOrKeyword(start)
		return
	case c == '{':
		if l.tryLexHexPattern(start) {
			return
		}
		l.s.Eat()
		l.emit(L_BRACE, start)
		return
	}

	if k, ok := l.lexMultiCharOp(); ok {
		l.emit(k, start)
		return
	}
	if k, ok := FromChar(c); ok {
		l.s.Eat()
		l.emit(k, start)
		return
	}

	// Unrecognized byte: decode as a rune for the diagnostic hint, but
	// advance by exactly one byte so the ERROR token length matches
	// spec.md §4.B ("length 1").
	r, _ := utf8.DecodeRuneInString(l.text[start:])
	l.s.Eat()
	l.emit(ERROR, start)
	l.errAt(start, l.s.Pos(), MsgInvalidCharacter+": "+DescribeRune(r))
}

func (l *lexer) lexMultiCharOp() (SyntaxKind, bool) {
	two := func(a, b byte, k SyntaxKind) (SyntaxKind, bool) {
		if l.s.Peek() == a && l.s.PeekAt(1) == b {
			l.s.Eat()
			l.s.Eat()
			return k, true
		}
		return 0, false
	}
	if k, ok := two('<', '<', SHL); ok {
		return k, true
	}
	if k, ok := two('>', '>', SHR); ok {
		return k, true
	}
	if k, ok := two('=', '=', EQEQ); ok {
		return k, true
	}
	if k, ok := two('!', '=', NEQ); ok {
		return k, true
	}
	if k, ok := two('<', '=', LE); ok {
		return k, true
	}
	if k, ok := two('>', '=', GE); ok {
		return k, true
	}
	if k, ok := two('.', '.', DOTDOT); ok {
		return k, true
	}
	return 0, false
}

func (l *lexer) lexWhitespace(start int) {
	l.s.EatWhile(IsSpace)
	l.emit(WHITESPACE, start)
}

func (l *lexer) lexLineComment(start int) {
	l.s.Eat()
	l.s.Eat()
	l.s.EatWhile(func(c byte) bool { return !IsNewline(c) })
	l.emit(COMMENT, start)
}

func (l *lexer) lexBlockComment(start int) {
	l.s.Eat()
	l.s.Eat()
	for !l.s.Done() {
		if l.s.Peek() == '*' && l.s.PeekAt(1) == '/' {
			l.s.Eat()
			l.s.Eat()
			break
		}
		l.s.Eat()
	}
	l.emit(COMMENT, start)
}

func (l *lexer) lexString(start int) {
	l.s.Eat() // opening quote
	for !l.s.Done() {
		c := l.s.Peek()
		if c == '"' {
			l.s.Eat()
			break
		}
		if IsNewline(c) {
			break
		}
		if c == '\\' {
			l.s.Eat()
			if !l.s.Done() {
				l.s.Eat()
			}
			continue
		}
		l.s.Eat()
	}
	l.emit(STRING_LIT, start)
}

func (l *lexer) lexVariable(start int) {
	sigil := l.s.Eat()
	l.s.EatWhile(IsIdentContinue)
	var kind SyntaxKind
	switch sigil {
	case '$':
		kind = VARIABLE
	case '#':
		kind = VARIABLE_COUNT
	case '@':
		kind = VARIABLE_OFFSET
	case '!':
		kind = VARIABLE_LENGTH
	}
	l.emit(kind, start)
}

func (l *lexer) lexNumber(start int) {
	if l.s.Peek() == '0' && (l.s.PeekAt(1) == 'x' || l.s.PeekAt(1) == 'X') {
		l.s.Eat()
		l.s.Eat()
		l.s.EatWhile(IsHexDigit)
		l.emit(INT_LIT, start)
		return
	}
	if l.s.Peek() == '0' && l.s.PeekAt(1) == 'o' {
		l.s.Eat()
		l.s.Eat()
		l.s.EatWhile(IsOctalDigit)
		l.emit(INT_LIT, start)
		return
	}
	l.s.EatWhile(IsDigit)
	if l.s.Peek() == '.' && IsDigit(l.s.PeekAt(1)) {
		l.s.Eat()
		l.s.EatWhile(IsDigit)
		l.emit(FLOAT_LIT, start)
		return
	}
	if l.s.EatIfStr("KB") || l.s.EatIfStr("MB") {
		l.emit(INT_LIT, start)
		return
	}
	l.emit(INT_LIT, start)
}

func (l *lexer) lexIdentOrKeyword(start int) {
	l.s.EatWhile(IsIdentContinue)
	text := l.s.From(start)
	if k, ok := FromKeyword(text); ok {
		l.emit(k, start)
		return
	}
	l.emit(IDENTIFIER, start)
}

// tryLexRegex attempts to recognize a `/BODY/MODS` regex literal starting
// at the current `/`, decomposing it directly into SLASH, REGEX_LIT, SLASH,
// then one CASE_INSENSITIVE (`i`) or DOT_MATCHES_ALL (`s`) token per
// modifier letter; the parser wraps each of those in a REGEX_MOD node, as
// spec.md §4.B's sub-tokenization describes. It is a greedy,
// purely-lexical heuristic: it commits only if an unescaped closing `/` is
// found before a newline or end of input. `a / b` on one line followed by
// another unrelated `/` later in the file never reaches this function
// since scanning stops at the first newline, but two divisions on the same
// line are ambiguous with a regex literal and are not disambiguated here —
// real grammars resolve this from parser context, which this lexer does
// not have. See DESIGN.md.
func (l *lexer) tryLexRegex(start int) bool {
	save := l.s.Pos()
	l.s.Eat() // leading /
	bodyStart := l.s.Pos()
	closed := false
	for !l.s.Done() {
		c := l.s.Peek()
		if IsNewline(c) {
			break
		}
		if c == '\\' {
			l.s.Eat()
			if !l.s.Done() {
				l.s.Eat()
			}
			continue
		}
		if c == '/' {
			closed = true
			break
		}
		l.s.Eat()
	}
	if !closed {
		l.s.Jump(save)
		return false
	}
	bodyEnd := l.s.Pos()
	l.tokens = append(l.tokens, RawToken{Kind: SLASH, Len: uint32(bodyStart - save)})
	l.tokens = append(l.tokens, RawToken{Kind: REGEX_LIT, Len: uint32(bodyEnd - bodyStart)})
	closeStart := l.s.Pos()
	l.s.Eat() // closing /
	l.tokens = append(l.tokens, RawToken{Kind: SLASH, Len: uint32(l.s.Pos() - closeStart)})
	for {
		switch l.s.Peek() {
		case 'i':
			modStart := l.s.Pos()
			l.s.Eat()
			l.tokens = append(l.tokens, RawToken{Kind: CASE_INSENSITIVE, Len: uint32(l.s.Pos() - modStart)})
			continue
		case 's':
			modStart := l.s.Pos()
			l.s.Eat()
			l.tokens = append(l.tokens, RawToken{Kind: DOT_MATCHES_ALL, Len: uint32(l.s.Pos() - modStart)})
			continue
		}
		break
	}
	return true
}

// hexPayloadCharset is the restricted byte set permitted inside a `{ ... }`
// hex-string payload (spec.md §4.B). Letters beyond A-F are deliberately
// excluded so a rule's `{ ... }` block body (which always contains
// identifier text outside this range, e.g. "condition") fails verification
// and falls back to an ordinary L_BRACE.
func isHexPayloadByte(c byte) bool {
	switch {
	case IsHexDigit(c):
		return true
	case IsSpace(c):
		return true
	}
	switch c {
	case '?', '~', '(', ')', '[', ']', '-', '|', '/', '*':
		return true
	}
	return false
}

// tryLexHexPattern attempts to recognize a `{ ... }` hex-string payload
// starting at the current `{`. It scans ahead to the matching `}` (hex
// payloads never nest braces), verifying every byte in between belongs to
// isHexPayloadByte or is part of a `//` line comment; on success it
// delegates the full decomposition to lexHexBody. On failure (an
// out-of-charset byte, or no matching `}` before EOF) it rewinds and lets
// the caller emit a plain L_BRACE, so ordinary rule/block bodies are
// unaffected.
func (l *lexer) tryLexHexPattern(start int) bool {
	save := l.s.Pos()
	l.s.Eat() // {
	ok := true
	for !l.s.Done() {
		c := l.s.Peek()
		if c == '}' {
			break
		}
		if c == '(' || c == ')' {
			l.s.Eat()
			continue
		}
		if c == '/' && l.s.PeekAt(1) == '/' {
			l.s.EatWhile(func(c byte) bool { return !IsNewline(c) })
			continue
		}
		if !isHexPayloadByte(c) {
			ok = false
			break
		}
		l.s.Eat()
	}
	if !ok || l.s.Done() || l.s.Peek() != '}' {
		l.s.Jump(save)
		return false
	}
	l.s.Jump(save)
	l.lexHexBody(start)
	return true
}

// lexHexBody decomposes a verified `{ ... }` hex payload into its finer
// tokens per spec.md §4.B: L_BRACE, an interleaving of HEX_LIT/WHITESPACE/
// HYPHEN/PIPE/L_PAREN/R_PAREN/COMMENT and bracketed jump ranges
// (L_BRACKET INT_LIT? HYPHEN? INT_LIT? R_BRACKET), then R_BRACE.
func (l *lexer) lexHexBody(start int) {
	l.s.Eat() // {
	l.emit(L_BRACE, start)

	for !l.s.Done() && l.s.Peek() != '}' {
		c := l.s.Peek()
		switch {
		case IsSpace(c):
			ws := l.s.Pos()
			l.s.EatWhile(IsSpace)
			l.emit(WHITESPACE, ws)
		case c == '/' && l.s.PeekAt(1) == '/':
			cs := l.s.Pos()
			l.s.EatWhile(func(c byte) bool { return !IsNewline(c) })
			l.emit(COMMENT, cs)
		case c == '(':
			p := l.s.Pos()
			l.s.Eat()
			l.emit(L_PAREN, p)
		case c == ')':
			p := l.s.Pos()
			l.s.Eat()
			l.emit(R_PAREN, p)
		case c == '|':
			p := l.s.Pos()
			l.s.Eat()
			l.emit(PIPE, p)
		case c == '-':
			p := l.s.Pos()
			l.s.Eat()
			l.emit(HYPHEN, p)
		case c == '[':
			l.lexHexJumpRange()
		case c == '~':
			hs := l.s.Pos()
			l.s.Eat()
			l.eatHexByteDigits()
			l.emit(HEX_LIT, hs)
		case IsHexDigit(c) || c == '?':
			hs := l.s.Pos()
			l.eatHexByteDigits()
			l.emit(HEX_LIT, hs)
		default:
			// A byte the payload check admits but no case above handles
			// (a lone `/`, `*`, or a stray `]`) becomes a one-byte ERROR
			// token; no diagnostic is reported for it.
			p := l.s.Pos()
			l.s.Eat()
			l.emit(ERROR, p)
		}
	}
	if l.s.Peek() == '}' {
		p := l.s.Pos()
		l.s.Eat()
		l.emit(R_BRACE, p)
	}
}

// eatHexByteDigits consumes one hex byte pattern: two hex-digit-or-`?`
// nibbles.
func (l *lexer) eatHexByteDigits() {
	for i := 0; i < 2; i++ {
		c := l.s.Peek()
		if IsHexDigit(c) || c == '?' {
			l.s.Eat()
		}
	}
}

func (l *lexer) lexHexJumpRange() {
	p := l.s.Pos()
	l.s.Eat() // [
	l.emit(L_BRACKET, p)
	if IsDigit(l.s.Peek()) {
		ns := l.s.Pos()
		l.s.EatWhile(IsDigit)
		l.emit(INT_LIT, ns)
	}
	if l.s.Peek() == '-' {
		hs := l.s.Pos()
		l.s.Eat()
		l.emit(HYPHEN, hs)
	}
	if IsDigit(l.s.Peek()) {
		ns := l.s.Pos()
		l.s.EatWhile(IsDigit)
		l.emit(INT_LIT, ns)
	}
	if l.s.Peek() == ']' {
		p := l.s.Pos()
		l.s.Eat()
		l.emit(R_BRACKET, p)
	}
}
