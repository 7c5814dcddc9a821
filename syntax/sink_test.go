package syntax

import "testing"

func parseToRoot(t *testing.T, text string) (*RedNode, []SyntaxError) {
	t.Helper()
	raw, lexErrs := Tokenize(text)
	ts := NewTokenSource(raw)
	events := ParseSourceFile(ts)
	green, sinkErrs := RunSink(events, raw, text)
	var errs []SyntaxError
	errs = append(errs, lexErrs...)
	errs = append(errs, sinkErrs...)
	return NewRoot(green), errs
}

func TestSinkTreeCoversWholeInput(t *testing.T) {
	text := "rule foo { condition: true }"
	root, _ := parseToRoot(t, text)
	if root.Text() != text {
		t.Errorf("reconstructed text = %q, want %q", root.Text(), text)
	}
	if root.TextRange().Len() != uint32(len(text)) {
		t.Errorf("root range len = %d, want %d", root.TextRange().Len(), len(text))
	}
}

func TestSinkAttachesLeadingCommentToFollowingRule(t *testing.T) {
	// The comment sits between two rules, so there is a pending Finish (the
	// first rule's) to flush against when the second rule's Start is seen —
	// the path that actually exercises the attachment rule's redirect.
	text := "rule foo { condition: true }\n// doc comment\nrule bar { condition: true }"
	root, _ := parseToRoot(t, text)
	rules := SourceFile{node: root}.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	second := rules[1].Syntax()
	first := second.ChildrenWithTokens()[0]
	if first.Token == nil || first.Token.Kind() != COMMENT {
		t.Errorf("second rule's first child = %+v, want a leading COMMENT token", first)
	}
}

func TestSinkDoesNotAttachCommentAcrossBlankLine(t *testing.T) {
	text := "rule foo { condition: true }\n\n// unrelated comment\n\nrule bar { condition: true }"
	root, _ := parseToRoot(t, text)
	rules := SourceFile{node: root}.Rules()
	second := rules[1].Syntax()
	first := second.ChildrenWithTokens()[0]
	if first.Token != nil && first.Token.Kind() == COMMENT {
		t.Error("a comment separated from the rule by a blank line should not attach as leading trivia")
	}
}

func TestSinkAttachesCommentToStringsSection(t *testing.T) {
	text := "rule foo { meta: x = 1\n  // about the strings\n  strings: $a = \"x\" condition: true }"
	root, _ := parseToRoot(t, text)
	rule := SourceFile{node: root}.Rules()[0]
	strings := rule.Body().Strings()
	if strings == nil {
		t.Fatal("expected a strings section")
	}
	found := false
	for _, e := range strings.Syntax().ChildrenWithTokens() {
		if e.Token != nil && e.Token.Kind() == COMMENT {
			found = true
		}
		if e.Node != nil {
			break
		}
	}
	if !found {
		t.Error("expected the comment immediately preceding 'strings:' to attach as its leading trivia")
	}
}

func TestSinkErrorAnchoredAtRealTokenOffset(t *testing.T) {
	text := "rule foo {   condition: }"
	_, errs := parseToRoot(t, text)
	if len(errs) == 0 {
		t.Fatal("expected at least one diagnostic for the missing condition expression")
	}
	for _, e := range errs {
		if e.Range.Start > uint32(len(text)) {
			t.Errorf("error offset %d out of range for input of length %d", e.Range.Start, len(text))
		}
	}
}

func TestSinkRootAlwaysWellFormed(t *testing.T) {
	// A pathological, deeply malformed input must still sink into a single
	// rooted tree (spec.md §8, "a parse always yields a tree").
	text := "}}}rule{{{"
	root, _ := parseToRoot(t, text)
	if root.Kind() != SOURCE_FILE {
		t.Fatalf("root kind = %v, want SOURCE_FILE", root.Kind())
	}
	if root.Text() != text {
		t.Errorf("reconstructed text = %q, want %q", root.Text(), text)
	}
}
