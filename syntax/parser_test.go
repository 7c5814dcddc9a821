package syntax

import "testing"

func newTestParser(text string) (*Parser, *TokenSource) {
	raw, _ := Tokenize(text)
	ts := NewTokenSource(raw)
	return NewParser(ts), ts
}

func TestMarkerCompleteRecordsStartAndFinish(t *testing.T) {
	p, _ := newTestParser("rule")
	m := p.Start()
	p.Bump(RULE_KW)
	m.Complete(p, RULE)

	events := p.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events (start, token, finish), got %d", len(events))
	}
	if events[0].kind != evStart || events[0].startKind != RULE {
		t.Errorf("events[0] = %+v, want a Start(RULE)", events[0])
	}
	if events[1].kind != evToken || events[1].tokenKind != RULE_KW {
		t.Errorf("events[1] = %+v, want a Token(RULE_KW)", events[1])
	}
	if events[2].kind != evFinish {
		t.Errorf("events[2] = %+v, want Finish", events[2])
	}
}

func TestMarkerAbandonAtEndTruncates(t *testing.T) {
	p, _ := newTestParser("")
	before := len(p.Events())
	m := p.Start()
	m.Abandon(p)
	if len(p.Events()) != before {
		t.Errorf("abandoning a trailing marker should truncate it away, got %d events", len(p.Events()))
	}
}

func TestMarkerCompletedTwicePanics(t *testing.T) {
	p, _ := newTestParser("rule")
	m := p.Start()
	p.Bump(RULE_KW)
	m.Complete(p, RULE)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic completing the same marker twice")
		}
	}()
	m.Complete(p, RULE)
}

func TestPrecedeSetsForwardParent(t *testing.T) {
	p, _ := newTestParser("a + b")
	inner := p.Start()
	p.Bump(IDENTIFIER)
	cm := inner.Complete(p, PRIMARY_EXPR)

	outer := cm.Precede(p)
	outer.Complete(p, EXPRESSION)

	startIdx := cm.index
	if p.events[startIdx].forwardParent == 0 {
		t.Error("Precede should record a non-zero forwardParent delta on the preceded Start event")
	}
}

func TestExpectEmitsErrorWithoutConsuming(t *testing.T) {
	p, ts := newTestParser("rule")
	ok := p.Expect(COLON)
	if ok {
		t.Fatal("Expect should fail when the current token doesn't match")
	}
	if ts.Current() != RULE_KW {
		t.Error("Expect should not consume the current token on failure")
	}
	events := p.Events()
	if events[len(events)-1].kind != evError {
		t.Error("Expect should emit an Error event on failure")
	}
}

func TestBumpOnWrongTokenPanics(t *testing.T) {
	p, _ := newTestParser("rule")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic from Bump on a non-matching token")
		}
	}()
	p.Bump(COLON)
}

func TestErrRecoverLeavesRecoverySetTokenUntouched(t *testing.T) {
	p, ts := newTestParser("meta")
	p.ErrRecover("bad", NewSyntaxSet(META_KW))
	if ts.Current() != META_KW {
		t.Error("ErrRecover should not consume a token that is in the recovery set")
	}
}

func TestErrRecoverConsumesNonRecoveryToken(t *testing.T) {
	p, ts := newTestParser("junk meta")
	p.ErrRecover("bad", NewSyntaxSet(META_KW))
	// Trivia is invisible to the token source, so after consuming the bad
	// IDENTIFIER the cursor should already sit on META_KW.
	if ts.Current() != META_KW {
		t.Errorf("expected cursor past the bad token at META_KW, got %v", ts.Current())
	}
}

func TestClimbProducesLeftAssociativeBinaryChain(t *testing.T) {
	p, _ := newTestParser("1 + 2 + 3")
	climb(p, arithmeticLayer, 0)
	raw, _ := Tokenize("1 + 2 + 3")
	green, errs := RunSink(p.Events(), raw, "1 + 2 + 3")
	if len(errs) != 0 {
		t.Fatalf("unexpected sink errors: %v", errs)
	}
	root := NewRoot(green)
	if root.Kind() != EXPRESSION {
		t.Fatalf("root kind = %v, want EXPRESSION", root.Kind())
	}
	// Left-associative: the outer node's first child is itself an
	// EXPRESSION (the "1 + 2" subtree), not a bare literal.
	children := root.Children()
	if len(children) == 0 || children[0].Kind() != EXPRESSION {
		t.Errorf("expected left-associative nesting, first child kind = %v", childKindOrZero(children))
	}
}

func childKindOrZero(cs []*RedNode) SyntaxKind {
	if len(cs) == 0 {
		return 0
	}
	return cs[0].Kind()
}

func TestStepLimitGuardForceClosesOpenMarkers(t *testing.T) {
	events := closeDangling([]Event{{kind: evStart}, {kind: evStart}})
	open := 0
	for _, e := range events {
		switch e.kind {
		case evStart:
			open++
		case evFinish:
			open--
		}
	}
	if open != 0 {
		t.Errorf("closeDangling left %d unmatched Start events", open)
	}
}
