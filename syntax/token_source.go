package syntax

// TokenSource is a trivia-skipping cursor over the raw token list produced
// by Tokenize. It precomputes each non-trivia token's absolute text offset
// so the parser can build diagnostics without re-walking the raw list.
// Grounded on spec.md §4.C and the original prototype's
// text_token_source.rs (TextTokenSource/lookahead_nth).
type TokenSource struct {
	raw []RawToken
	// nonTrivia holds indices into raw for every non-trivia token, in order.
	nonTrivia []int
	// offsets[i] is the absolute byte offset of raw[nonTrivia[i]].
	offsets []uint32
	cursor  int
}

// NewTokenSource builds a token source from a raw token list.
func NewTokenSource(raw []RawToken) *TokenSource {
	ts := &TokenSource{raw: raw}
	var off uint32
	for i, t := range raw {
		if !t.Kind.IsTrivia() {
			ts.nonTrivia = append(ts.nonTrivia, i)
			ts.offsets = append(ts.offsets, off)
		}
		off += t.Len
	}
	return ts
}

// Current returns the kind of the token under the cursor (EOF forever past
// the end of the stream).
func (ts *TokenSource) Current() SyntaxKind {
	return ts.Lookahead(0)
}

// Lookahead returns the kind of the token n positions ahead of the cursor
// without consuming anything.
func (ts *TokenSource) Lookahead(n int) SyntaxKind {
	i := ts.cursor + n
	if i >= len(ts.nonTrivia) {
		return EOF
	}
	return ts.raw[ts.nonTrivia[i]].Kind
}

// CurrentOffset returns the absolute byte offset of the token under the
// cursor. At end of stream this is the total input length.
func (ts *TokenSource) CurrentOffset() uint32 {
	if ts.cursor >= len(ts.nonTrivia) {
		var total uint32
		for _, t := range ts.raw {
			total += t.Len
		}
		return total
	}
	return ts.offsets[ts.cursor]
}

// CurrentLen returns the byte length of the token under the cursor.
func (ts *TokenSource) CurrentLen() uint32 {
	if ts.cursor >= len(ts.nonTrivia) {
		return 0
	}
	return ts.raw[ts.nonTrivia[ts.cursor]].Len
}

// Bump advances the cursor past the current non-trivia token. Idempotent at
// EOF.
func (ts *TokenSource) Bump() {
	if ts.cursor < len(ts.nonTrivia) {
		ts.cursor++
	}
}

// RawIndex returns the index into the original raw token slice of the
// token currently under the cursor, or len(raw) past the end of the stream.
func (ts *TokenSource) RawIndex() int {
	if ts.cursor >= len(ts.nonTrivia) {
		return len(ts.raw)
	}
	return ts.nonTrivia[ts.cursor]
}
