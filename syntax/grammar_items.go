package syntax

// ParseSourceFile is the grammar's entry point (spec.md §4.E "Top-level").
// It drives p to exhaustion and returns the finished event log. A runaway
// grammar path is caught by the step-limit guard and force-closed here so
// parsing always terminates with a well-formed tree (spec.md §8, invariant
// 7 "Safety latch").
func ParseSourceFile(ts *TokenSource) (events []Event) {
	p := NewParser(ts)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stepLimitExceeded); !ok {
				panic(r)
			}
			events = closeDangling(p.events)
			return
		}
	}()

	m := p.Start()
	for !p.AtEOF() {
		parseItem(p)
	}
	m.Complete(p, SOURCE_FILE)
	return p.events
}

// closeDangling appends one Finish event per Start event left unmatched,
// restoring the "every Start has a matching Finish" invariant after a
// step-limit abort.
func closeDangling(events []Event) []Event {
	open := 0
	for _, e := range events {
		switch e.kind {
		case evStart:
			open++
		case evFinish:
			open--
		}
	}
	for ; open > 0; open-- {
		events = append(events, Event{kind: evFinish})
	}
	return events
}

func parseItem(p *Parser) {
	switch {
	case p.At(IMPORT_KW):
		parseImportStmt(p)
	case p.At(INCLUDE_KW):
		parseIncludeStmt(p)
	case p.AtTS(RuleModifierSet) || p.At(RULE_KW):
		parseRule(p)
	case p.At(L_BRACE):
		m := p.Start()
		p.Error(MsgExpectedTopLevelItem)
		depth := 0
		for {
			if p.At(L_BRACE) {
				depth++
			} else if p.At(R_BRACE) {
				depth--
				if depth == 0 {
					p.BumpAny()
					break
				}
			} else if p.AtEOF() {
				break
			}
			p.BumpAny()
		}
		m.Complete(p, ERROR)
	case p.At(R_BRACE):
		p.Error(MsgUnmatchedBrace)
		em := p.Start()
		p.BumpAny()
		em.Complete(p, ERROR)
	default:
		p.ErrAndBump(MsgExpectedTopLevelItem)
	}
}

func parseImportStmt(p *Parser) {
	m := p.Start()
	p.Bump(IMPORT_KW)
	p.Expect(STRING_LIT)
	m.Complete(p, IMPORT_STMT)
}

func parseIncludeStmt(p *Parser) {
	m := p.Start()
	p.Bump(INCLUDE_KW)
	p.Expect(STRING_LIT)
	m.Complete(p, INCLUDE_STMT)
}

func parseRule(p *Parser) {
	m := p.Start()
	for p.AtTS(RuleModifierSet) {
		mm := p.Start()
		p.BumpAny()
		mm.Complete(p, MODIFIER)
	}
	p.Expect(RULE_KW)
	if !p.Eat(IDENTIFIER) {
		p.Error(MsgExpectedAName)
	}
	if p.Eat(COLON) {
		for p.At(IDENTIFIER) {
			tm := p.Start()
			p.Bump(IDENTIFIER)
			tm.Complete(p, TAG)
		}
	}
	if p.At(L_BRACE) {
		parseBlockExpr(p)
	} else {
		p.Error(MsgExpectedBlockOrTags)
	}
	m.Complete(p, RULE)
}

func parseBlockExpr(p *Parser) {
	m := p.Start()
	p.Bump(L_BRACE)
	parseRuleBody(p)
	p.Expect(R_BRACE)
	m.Complete(p, BLOCK_EXPR)
}

// sectionOrder ranks META < STRINGS < CONDITION (spec.md §4.E, "Rule").
// parseRuleBody's out-of-order checks use the same ranks as literal values
// and do not call it.
func sectionOrder(k SyntaxKind) int {
	switch k {
	case META_KW:
		return 0
	case STRINGS_KW:
		return 1
	case CONDITION_KW:
		return 2
	}
	return -1
}

func parseRuleBody(p *Parser) {
	var seenMeta, seenStrings, seenCondition bool
	lastOrder := -1

	for {
		switch {
		case p.At(META_KW):
			if seenMeta {
				p.Error(MsgOnlyOneMeta)
			}
			if lastOrder > 0 {
				p.Error(MsgMetaBeforeOthers)
			}
			seenMeta = true
			parseMetaSection(p)
			if lastOrder < 0 {
				lastOrder = 0
			}
		case p.At(STRINGS_KW):
			if seenStrings {
				p.Error(MsgOnlyOneStrings)
			}
			if lastOrder > 1 {
				p.Error(MsgStringsBeforeCondition)
			}
			seenStrings = true
			parseStringsSection(p)
			if lastOrder < 1 {
				lastOrder = 1
			}
		case p.At(CONDITION_KW):
			if seenCondition {
				p.Error(MsgOnlyOneCondition)
			}
			seenCondition = true
			parseConditionSection(p)
			lastOrder = 2
		case p.At(R_BRACE) || p.AtEOF():
			return
		default:
			p.ErrAndBump(MsgExpectedSectionKeyword)
		}
	}
}
