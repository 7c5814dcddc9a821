package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) into the original source
// text. An empty range (Start == End) is a valid point diagnostic anchor.
type TextRange struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes covered by r.
func (r TextRange) Len() uint32 { return r.End - r.Start }

// Contains reports whether offset falls within r.
func (r TextRange) Contains(offset uint32) bool { return offset >= r.Start && offset < r.End }

func (r TextRange) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// SyntaxError is a single diagnostic produced anywhere in the lex/parse/sink
// pipeline. Errors are always local and non-fatal: the parser deposits one
// and keeps going.
type SyntaxError struct {
	Message string
	Range   TextRange
}

func (e SyntaxError) String() string {
	return fmt.Sprintf("SyntaxError(%q, %s)", e.Message, e.Range)
}

// Well-known diagnostic message strings. These are produced verbatim, except
// that the lexer appends ": " and a DescribeRune hint to MsgInvalidCharacter,
// and are load-bearing for callers that match on message text.
const (
	MsgInvalidCharacter           = "Invalid character"
	MsgExpectedAName              = "expected a name"
	MsgExpectedAnIdentifier       = "expected an identifier"
	MsgExpectedAVariable          = "expected a variable"
	MsgExpectedValidStringPattern = "expected a valid string pattern"
	MsgExpectedValidMetadataValue = "expected a valid metadata value"
	MsgExpectedPatternOrMod       = "expected a new pattern statement or pattern modifier"
	MsgExpectedHexByteOrAlt       = "expected a hex byte or alternative"
	MsgExpectedSectionKeyword     = "expected meta, strings or condition keyword"
	MsgExpectedTopLevelItem       = "expected an import statement, include statement or a rule"
	MsgExpectedBlockOrTags        = "expected a block expression or rule tags"
	MsgOnlyOneMeta                = "only one meta block is allowed"
	MsgOnlyOneStrings             = "only one strings block is allowed"
	MsgOnlyOneCondition           = "only one condition block is allowed"
	MsgMetaBeforeOthers           = "meta block must come before strings and condition blocks"
	MsgStringsBeforeCondition     = "strings block must come before condition block"
	MsgUnmatchedBrace             = "unmatched }"
	MsgInvalidExpression          = "invalid yara expression"
	MsgInvalidRuleBody            = "invalid rule body"
)

// MsgExpected formats the "expected <kind>" diagnostic for a missing token
// of the given kind.
func MsgExpected(k SyntaxKind) string {
	return fmt.Sprintf("expected %s", k.Name())
}
