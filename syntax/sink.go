package syntax

import "strings"

// Sink materializes an immutable green tree from the parser's Event
// stream, interleaving the trivia (whitespace/comment) tokens the parser
// never saw and deciding, per spec.md §4.F, which node each trivia run
// attaches to. Grounded closely on the original prototype's
// syntax/text_tree_sink.rs (PendingStart/Normal/PendingFinish state
// machine and its trailing-comment attachment rule), restated in terms of
// this codebase's GreenNode/GreenToken builder.
type Sink struct {
	text string
	raw  []RawToken
	pos  int    // index into raw of the next not-yet-consumed token
	off  uint32 // byte offset matching raw[pos]

	stack []*builderFrame
	root  *GreenNode

	pendingFinishArmed bool

	errors []SyntaxError
}

type builderFrame struct {
	kind     SyntaxKind
	children []GreenElement
}

// attachKinds is the set of node kinds eligible to receive a redirected
// trailing-comment run as leading trivia (spec.md §4.F).
func isAttachKind(k SyntaxKind) bool {
	return k == RULE || k == BLOCK_EXPR || k == STRINGS || k == CONDITION
}

// RunSink drives a Sink over events and the raw token list, returning the
// finished green root and any sink-level diagnostics.
func RunSink(events []Event, raw []RawToken, text string) (*GreenNode, []SyntaxError) {
	s := &Sink{text: text, raw: raw}
	s.process(events)
	if s.root == nil {
		panic("syntax: sink finished without closing the root node")
	}
	return s.root, s.errors
}

func (s *Sink) process(events []Event) {
	for i := range events {
		switch events[i].kind {
		case evTombstone:
			continue
		case evStart:
			s.handleStart(events, i)
		case evFinish:
			s.handleFinish()
		case evToken:
			s.handleToken(events[i])
		case evError:
			s.handleError(events[i])
		}
	}
	s.flushPendingFinish(TOMBSTONE, false)
}

// handleStart processes a Start event, walking its forward-parent chain
// (spec.md §3 "Forward parent") and opening the collected kinds outer to
// inner. Each Start event consumed via the chain (including i itself) is
// replaced with a tombstone so the main loop's later visit to a
// forward-jumped index is a no-op.
func (s *Sink) handleStart(events []Event, i int) {
	kinds := []SyntaxKind{events[i].startKind}
	fwd := events[i].forwardParent
	events[i] = tombstoneEvent()
	idx := i
	for fwd != 0 {
		idx += fwd
		kinds = append(kinds, events[idx].startKind)
		fwd = events[idx].forwardParent
		events[idx] = tombstoneEvent()
	}

	outermost := kinds[len(kinds)-1]
	s.flushPendingFinish(outermost, true)

	for j := len(kinds) - 1; j >= 0; j-- {
		s.stack = append(s.stack, &builderFrame{kind: kinds[j]})
		if j == len(kinds)-1 {
			// Leading trivia precedes the whole chain, not just its
			// innermost member, so it becomes the outermost node's first
			// child; nothing separates the simultaneous opens below it.
			s.eatTrivia()
		}
	}
}

func (s *Sink) handleFinish() {
	if s.pendingFinishArmed {
		// Back-to-back finishes: close the inner node without consuming the
		// trailing trivia run, so the attachment decision is made once, by
		// the event that follows the whole chain of finishes.
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		parent := s.stack[len(s.stack)-1]
		parent.children = append(parent.children, NewGreenNode(top.kind, top.children))
	}
	s.pendingFinishArmed = true
}

func (s *Sink) handleToken(e Event) {
	s.flushPendingFinish(TOMBSTONE, false)
	s.eatTrivia()
	text := s.text[s.off : s.off+s.raw[s.pos].Len]
	s.appendToTop(NewGreenToken(e.tokenKind, text))
	s.off += s.raw[s.pos].Len
	s.pos++
}

func (s *Sink) handleError(e Event) {
	s.flushPendingFinish(TOMBSTONE, false)
	at := s.peekRealOffset()
	s.errors = append(s.errors, SyntaxError{Message: e.message, Range: TextRange{Start: at, End: at}})
}

// flushPendingFinish resolves a deferred Finish left by handleFinish. If
// the event triggering the flush is a Start of an attach-eligible kind,
// the trailing comment run (per spec.md §4.F's attachment rule) is left
// un-consumed so it becomes that new node's leading trivia instead of the
// closing node's trailing trivia.
func (s *Sink) flushPendingFinish(nextKind SyntaxKind, nextIsStart bool) {
	if !s.pendingFinishArmed {
		return
	}
	s.pendingFinishArmed = false

	triviaRun := s.peekTriviaRun()
	redirect := 0
	if nextIsStart && isAttachKind(nextKind) {
		redirect = attachedSuffixLen(triviaRun, s.raw, s.text)
	}
	attach := len(triviaRun) - redirect
	for i := 0; i < attach; i++ {
		s.consumeOneTrivia()
	}

	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	node := NewGreenNode(top.kind, top.children)
	if len(s.stack) == 0 {
		s.root = node
		return
	}
	parent := s.stack[len(s.stack)-1]
	parent.children = append(parent.children, node)
}

// eatTrivia consumes any trivia tokens sitting at the raw cursor into
// whatever node is currently at the top of the stack. Used both for a
// node's leading trivia (right after it is pushed) and, via handleToken,
// for trivia immediately preceding a real token.
func (s *Sink) eatTrivia() {
	for s.pos < len(s.raw) && s.raw[s.pos].Kind.IsTrivia() {
		text := s.text[s.off : s.off+s.raw[s.pos].Len]
		s.appendToTop(NewGreenToken(s.raw[s.pos].Kind, text))
		s.off += s.raw[s.pos].Len
		s.pos++
	}
}

// consumeOneTrivia eats exactly the next trivia token into the top frame;
// used by flushPendingFinish to attach only part of a trailing run.
func (s *Sink) consumeOneTrivia() {
	text := s.text[s.off : s.off+s.raw[s.pos].Len]
	s.appendToTop(NewGreenToken(s.raw[s.pos].Kind, text))
	s.off += s.raw[s.pos].Len
	s.pos++
}

// peekTriviaRun returns the indices (into s.raw) of the contiguous trivia
// run starting at s.pos, without consuming anything.
func (s *Sink) peekTriviaRun() []int {
	var run []int
	for i := s.pos; i < len(s.raw) && s.raw[i].Kind.IsTrivia(); i++ {
		run = append(run, i)
	}
	return run
}

// peekRealOffset returns the byte offset of the first non-trivia token at
// or after s.pos, without consuming anything; used to anchor Error
// diagnostics at "the current text position" (spec.md §4.F) even when
// trivia sits between the last consumed token and here.
func (s *Sink) peekRealOffset() uint32 {
	off := s.off
	for i := s.pos; i < len(s.raw) && s.raw[i].Kind.IsTrivia(); i++ {
		off += s.raw[i].Len
	}
	return off
}

func (s *Sink) appendToTop(e GreenElement) {
	top := s.stack[len(s.stack)-1]
	top.children = append(top.children, e)
}

// attachedSuffixLen implements spec.md §4.F's trailing-comment attachment
// rule: scanning the run backward (i.e. from the token closest to the new
// node), stop at the first blank-line whitespace token; within what was
// scanned, if a comment is present, the suffix starting at the comment
// closest to the new node (the first one found scanning backward) is
// returned as the attach length. Returns 0 if no comment is found before a
// blank-line break (or before the run's start).
func attachedSuffixLen(run []int, raw []RawToken, text string) int {
	lastComment := -1
	for i := len(run) - 1; i >= 0; i-- {
		tok := raw[run[i]]
		if isBlankLineWhitespace(tok, raw, run, i, text) {
			break
		}
		if tok.Kind == COMMENT && lastComment == -1 {
			lastComment = i
		}
	}
	if lastComment == -1 {
		return 0
	}
	return len(run) - lastComment
}

// isBlankLineWhitespace reports whether the trivia token at run[i] is a
// whitespace run containing a blank line (two consecutive newlines).
func isBlankLineWhitespace(tok RawToken, raw []RawToken, run []int, i int, text string) bool {
	if tok.Kind != WHITESPACE {
		return false
	}
	// Resolve the token's absolute offset by summing the lengths of every
	// raw token before it.
	var off uint32
	for j := 0; j < run[i]; j++ {
		off += raw[j].Len
	}
	slice := text[off : off+tok.Len]
	return strings.Contains(slice, "\n\n")
}
