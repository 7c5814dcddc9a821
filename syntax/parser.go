package syntax

// maxSteps bounds the number of primitive parser operations in a single
// parse. It exists purely as a safety latch against a grammar production
// that loops without consuming input or emitting an event (spec.md §4.D);
// it is never expected to trigger against this grammar and is not
// user-visible behavior.
const maxSteps = 10_000_000

// stepLimitExceeded is panicked by the step guard and recovered in
// ParseSourceFile, which force-closes any still-open markers so the parser
// always terminates with a well-formed tree (spec.md §8 invariant 7).
type stepLimitExceeded struct{}

// Parser holds the append-only event log and drives the grammar via the
// primitive operations below. Grounded on the original prototype's
// parser/parser.rs (Parser/Marker/CompletedMarker/DropBomb) but written in
// the teacher's prose and naming conventions.
type Parser struct {
	ts     *TokenSource
	events []Event
	steps  int
}

// NewParser creates a parser over a token source. Callers drive it via
// ParseSourceFile (see grammar_items.go).
func NewParser(ts *TokenSource) *Parser {
	return &Parser{ts: ts}
}

// Events returns the finished event log, valid only after the grammar's
// entry point has returned.
func (p *Parser) Events() []Event { return p.events }

func (p *Parser) guard() {
	p.steps++
	if p.steps > maxSteps {
		panic(stepLimitExceeded{})
	}
}

// dropBomb is armed by Start and defused by Complete/Abandon. A grammar
// production that drops a Marker without deciding its fate is a
// programming error; this mirrors the "marker must be completed or
// abandoned" invariant from spec.md §9 ("Marker-with-drop-check"), checked
// here by an explicit Armed() assertion any production can call in tests
// rather than a runtime finalizer (finalizer timing is not deterministic
// enough to serve as a correctness gate).
type dropBomb struct{ armed bool }

// Marker is a reserved slot in the event stream, returned by Start.
type Marker struct {
	index int
	bomb  *dropBomb
}

// Armed reports whether this marker has not yet been completed or
// abandoned.
func (m Marker) Armed() bool { return m.bomb.armed }

// CompletedMarker is a Marker that has been given a kind via Complete.
type CompletedMarker struct {
	index int
	kind  SyntaxKind
}

// Kind returns the kind the marker was completed with.
func (m CompletedMarker) Kind() SyntaxKind { return m.kind }

// Start opens a new marker at the current position in the event stream.
func (p *Parser) Start() Marker {
	p.events = append(p.events, tombstoneEvent())
	return Marker{index: len(p.events) - 1, bomb: &dropBomb{armed: true}}
}

// Complete closes m, giving it kind, and returns a handle that can be used
// to retroactively wrap it in an outer node via Precede.
func (m Marker) Complete(p *Parser, kind SyntaxKind) CompletedMarker {
	if !m.bomb.armed {
		panic("syntax: marker completed twice")
	}
	m.bomb.armed = false
	p.events[m.index].kind = evStart
	p.events[m.index].startKind = kind
	p.events = append(p.events, Event{kind: evFinish})
	return CompletedMarker{index: m.index, kind: kind}
}

// Abandon discards m. If m's tombstone is still the last event it is
// truncated outright; otherwise it is left in place as a tombstone, to be
// skipped during tree materialization.
func (m Marker) Abandon(p *Parser) {
	if !m.bomb.armed {
		panic("syntax: marker abandoned twice")
	}
	m.bomb.armed = false
	if m.index == len(p.events)-1 {
		p.events = p.events[:m.index]
	}
}

// Precede allocates a new marker positioned immediately before cm and
// records the index delta on cm's Start event, so that during event
// processing the new outer node is opened first (spec.md §3 "Event",
// "Forward parent"). This lets a node already completed as X be
// reinterpreted as Outer{X, ...} without rewinding the event stream —
// the mechanism the Pratt engine uses to grow a left operand into a binary
// expression.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newMarker := p.Start()
	p.events[cm.index].forwardParent = newMarker.index - cm.index
	return newMarker
}

// --- Primitive operations (spec.md §4.D) ---

// At reports whether the current token has the given kind.
func (p *Parser) At(kind SyntaxKind) bool { return p.ts.Current() == kind }

// AtTS reports whether the current token's kind is a member of set.
func (p *Parser) AtTS(set SyntaxSet) bool { return set.Contains(p.ts.Current()) }

// Nth returns the kind of the token n positions ahead, without consuming.
func (p *Parser) Nth(n int) SyntaxKind { return p.ts.Lookahead(n) }

// AtEOF reports whether the parser has reached the end of the token stream.
func (p *Parser) AtEOF() bool { return p.ts.Current() == EOF }

// CurrentOffset exposes the text offset of the current token, for callers
// that build diagnostics directly.
func (p *Parser) CurrentOffset() uint32 { return p.ts.CurrentOffset() }

// Eat emits a Token event and advances if the current token has kind;
// reports whether it did.
func (p *Parser) Eat(kind SyntaxKind) bool {
	p.guard()
	if !p.At(kind) {
		return false
	}
	p.events = append(p.events, Event{kind: evToken, tokenKind: kind, rawCount: 1})
	p.ts.Bump()
	return true
}

// Bump asserts that Eat(kind) succeeds; a grammar production calls Bump
// only after confirming At(kind), so failure here is a programming error.
func (p *Parser) Bump(kind SyntaxKind) {
	if !p.Eat(kind) {
		panic("syntax: Bump called without a matching current token")
	}
}

// BumpAny consumes whatever token is current (even ERROR) as itself; a
// no-op at EOF.
func (p *Parser) BumpAny() {
	p.guard()
	k := p.ts.Current()
	if k == EOF {
		return
	}
	p.events = append(p.events, Event{kind: evToken, tokenKind: k, rawCount: 1})
	p.ts.Bump()
}

// Expect eats kind if present, otherwise emits an "expected <kind>"
// diagnostic and continues without consuming.
func (p *Parser) Expect(kind SyntaxKind) bool {
	if p.Eat(kind) {
		return true
	}
	p.Error(MsgExpected(kind))
	return false
}

// Error emits an inline diagnostic at the current text position.
func (p *Parser) Error(msg string) {
	p.events = append(p.events, Event{kind: evError, message: msg})
}

// ErrAndBump emits msg and consumes exactly one token, wrapped as an ERROR
// node.
func (p *Parser) ErrAndBump(msg string) {
	m := p.Start()
	p.Error(msg)
	p.BumpAny()
	m.Complete(p, ERROR)
}

// ErrRecover emits msg; if the current token is in recovery, it is left
// untouched so an outer production can consume it, otherwise it is
// wrapped as an ERROR node via ErrAndBump.
func (p *Parser) ErrRecover(msg string, recovery SyntaxSet) {
	if p.AtTS(recovery) || p.AtEOF() {
		p.Error(msg)
		return
	}
	p.ErrAndBump(msg)
}
