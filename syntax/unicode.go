package syntax

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// IsSpace reports whether c is ASCII horizontal whitespace or a newline
// byte, grounded on the teacher's unicode.go IsSpace/IsNewline helpers.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsNewline reports whether c starts a line break.
func IsNewline(c byte) bool { return c == '\n' || c == '\r' }

// IsIdentStart reports whether c can start an identifier.
func IsIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentContinue reports whether c can continue an identifier.
func IsIdentContinue(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9')
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsHexDigit reports whether c is an ASCII hex digit.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsOctalDigit reports whether c is an ASCII octal digit.
func IsOctalDigit(c byte) bool { return c >= '0' && c <= '7' }

// DescribeRune renders a rejected byte as a diagnostic-friendly hint of the
// form "U+0041 LATIN CAPITAL LETTER A", using the same runenames lookup the
// teacher's GetScript helper relies on. Falls back to a bare codepoint when
// the rune has no registered name.
func DescribeRune(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X %s", r, name)
}
