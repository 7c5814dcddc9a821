package syntax

import "testing"

func TestSyntaxSetAddContains(t *testing.T) {
	s := NewSyntaxSet(RULE_KW, STRING_LIT)
	if !s.Contains(RULE_KW) || !s.Contains(STRING_LIT) {
		t.Fatal("set should contain both added kinds")
	}
	if s.Contains(IDENTIFIER) {
		t.Error("set should not contain an unadded kind")
	}
}

func TestSyntaxSetHighBitWord(t *testing.T) {
	// VARIABLE_ANCHOR sits near the end of the enum, past the 128-bit
	// boundary, exercising the top word.
	s := NewSyntaxSet(VARIABLE_ANCHOR)
	if !s.Contains(VARIABLE_ANCHOR) {
		t.Fatal("set should contain a kind whose raw tag is >= 64")
	}
	if s.Contains(RULE_KW) {
		t.Error("set should not contain an unrelated low-word kind")
	}
}

func TestSyntaxSetRemove(t *testing.T) {
	s := NewSyntaxSet(RULE_KW, STRING_LIT).Remove(RULE_KW)
	if s.Contains(RULE_KW) {
		t.Error("removed kind should no longer be a member")
	}
	if !s.Contains(STRING_LIT) {
		t.Error("unrelated kind should remain a member")
	}
}

func TestSyntaxSetUnion(t *testing.T) {
	a := NewSyntaxSet(RULE_KW)
	b := NewSyntaxSet(STRING_LIT, VARIABLE_ANCHOR)
	u := a.Union(b)
	for _, k := range []SyntaxKind{RULE_KW, STRING_LIT, VARIABLE_ANCHOR} {
		if !u.Contains(k) {
			t.Errorf("union should contain %v", k)
		}
	}
}

func TestSyntaxSetEmpty(t *testing.T) {
	var s SyntaxSet
	if !s.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if s.Add(RULE_KW).IsEmpty() {
		t.Error("set with a member should not be empty")
	}
}

func TestPredefinedSetsDisjointFromUnrelatedKinds(t *testing.T) {
	if RuleModifierSet.Contains(RULE_KW) {
		t.Error("RuleModifierSet should not contain RULE_KW itself")
	}
	if !ComparisonOpSet.Contains(EQEQ) || !ComparisonOpSet.Contains(MATCHES_KW) {
		t.Error("ComparisonOpSet should contain both symbolic and keyword comparison operators")
	}
	if ComparisonOpSet.Contains(AND_KW) {
		t.Error("ComparisonOpSet should not contain a boolean-layer operator")
	}
}
