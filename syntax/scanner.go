package syntax

// Scanner is a byte-oriented cursor over the source text, grounded on the
// teacher's syntax/scanner.go. YARA source is restricted to ASCII outside
// of string/comment bodies, so indexing by byte (not rune) keeps the hot
// path branch-free; multi-byte UTF-8 sequences are passed through opaquely
// inside string and comment text.
type Scanner struct {
	text string
	pos  int
}

// NewScanner creates a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Done reports whether the scanner has reached the end of input.
func (s *Scanner) Done() bool { return s.pos >= len(s.text) }

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// Jump moves the cursor to an absolute byte offset.
func (s *Scanner) Jump(pos int) { s.pos = pos }

// Peek returns the byte at the cursor without consuming it, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.Done() {
		return 0
	}
	return s.text[s.pos]
}

// PeekAt returns the byte at pos+offset without consuming anything, or 0 if
// out of range.
func (s *Scanner) PeekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.text) {
		return 0
	}
	return s.text[i]
}

// Eat consumes and returns the byte at the cursor, or 0 at EOF.
func (s *Scanner) Eat() byte {
	if s.Done() {
		return 0
	}
	c := s.text[s.pos]
	s.pos++
	return c
}

// EatIf consumes the current byte if it equals c, reporting success.
func (s *Scanner) EatIf(c byte) bool {
	if s.Peek() == c {
		s.pos++
		return true
	}
	return false
}

// EatIfStr consumes the literal prefix str if it matches at the cursor.
func (s *Scanner) EatIfStr(str string) bool {
	if s.pos+len(str) > len(s.text) {
		return false
	}
	if s.text[s.pos:s.pos+len(str)] != str {
		return false
	}
	s.pos += len(str)
	return true
}

// EatWhile consumes bytes while pred holds, returning how many were eaten.
func (s *Scanner) EatWhile(pred func(byte) bool) int {
	start := s.pos
	for !s.Done() && pred(s.Peek()) {
		s.pos++
	}
	return s.pos - start
}

// From returns the slice of text between start and the current position.
func (s *Scanner) From(start int) string { return s.text[start:s.pos] }
