package syntax

// sectionFollowSet is what both the meta and strings bodies resync on:
// the next section keyword, end of block, or end of file.
var sectionFollowSet = NewSyntaxSet(META_KW, STRINGS_KW, CONDITION_KW, R_BRACE, EOF)

func parseMetaSection(p *Parser) {
	m := p.Start()
	p.Bump(META_KW)
	p.Expect(COLON)
	for !p.AtTS(sectionFollowSet) {
		parseMetaStmt(p)
	}
	m.Complete(p, META)
}

func parseMetaStmt(p *Parser) {
	m := p.Start()
	if !p.Eat(IDENTIFIER) {
		p.Error(MsgExpectedAnIdentifier)
		p.BumpAny()
		m.Complete(p, ERROR)
		return
	}
	p.Expect(EQ)
	switch {
	case p.At(STRING_LIT), p.At(BOOL_LIT), p.At(INT_LIT), p.At(FLOAT_LIT):
		p.BumpAny()
		m.Complete(p, META_STMT)
	default:
		p.Error(MsgExpectedValidMetadataValue)
		m.Abandon(p)
	}
}

func parseStringsSection(p *Parser) {
	m := p.Start()
	p.Bump(STRINGS_KW)
	p.Expect(COLON)
	for !p.AtTS(sectionFollowSet) {
		if p.At(VARIABLE) {
			parseVariableStmt(p)
			continue
		}
		em := p.Start()
		p.Error(MsgExpectedPatternOrMod)
		for !p.AtTS(sectionFollowSet) {
			p.BumpAny()
		}
		em.Complete(p, ERROR)
	}
	m.Complete(p, STRINGS)
}

func parseVariableStmt(p *Parser) {
	m := p.Start()
	p.Bump(VARIABLE)
	p.Expect(EQ)
	parsePattern(p)
	m.Complete(p, VARIABLE_STMT)
}

func parsePattern(p *Parser) {
	m := p.Start()
	switch {
	case p.At(STRING_LIT):
		p.Bump(STRING_LIT)
		parsePatternMods(p)
		m.Complete(p, PATTERN)
	case p.At(L_BRACE):
		parseHexPattern(p)
		parsePatternMods(p)
		m.Complete(p, PATTERN)
	case p.At(SLASH):
		parseRegexPattern(p)
		parsePatternMods(p)
		m.Complete(p, PATTERN)
	default:
		p.Error(MsgExpectedValidStringPattern)
		m.Abandon(p)
	}
}

func parsePatternMods(p *Parser) {
	for p.AtTS(PatternModifierSet) {
		mm := p.Start()
		kw := p.ts.Current()
		p.BumpAny()
		switch kw {
		case XOR_KW:
			if p.Eat(L_PAREN) {
				rm := p.Start()
				p.Expect(INT_LIT)
				if p.Eat(HYPHEN) {
					p.Expect(INT_LIT)
				}
				rm.Complete(p, XOR_RANGE)
				p.Expect(R_PAREN)
			}
		case BASE64_KW, BASE64WIDE_KW:
			if p.Eat(L_PAREN) {
				am := p.Start()
				p.Expect(STRING_LIT)
				am.Complete(p, BASE_ALPHABET)
				p.Expect(R_PAREN)
			}
		}
		mm.Complete(p, PATTERN_MOD)
	}
}

// parseHexPattern consumes a `{ ... }` hex payload whose bytes have
// already been decomposed into HEX_LIT/L_BRACKET/HYPHEN/PIPE/L_PAREN/
// R_PAREN/R_BRACE tokens by the lexer's hex sub-scanner (lexer.go,
// tryLexHexPattern). Grammar shape per spec.md §4.E.
func parseHexPattern(p *Parser) {
	m := p.Start()
	p.Bump(L_BRACE)
	parseHexToken(p)
	p.Expect(R_BRACE)
	m.Complete(p, HEX_PATTERN)
}

func hexElementStart(p *Parser) bool {
	return p.At(HEX_LIT) || p.At(L_PAREN) || p.At(L_BRACKET)
}

func parseHexToken(p *Parser) {
	m := p.Start()
	parseHexElement(p)
	for hexElementStart(p) {
		tm := p.Start()
		parseHexElement(p)
		tm.Complete(p, HEX_TOKEN_TAIL)
	}
	m.Complete(p, HEX_TOKEN)
}

func parseHexElement(p *Parser) {
	switch {
	case p.At(HEX_LIT):
		bm := p.Start()
		p.Bump(HEX_LIT)
		bm.Complete(p, HEX_BYTE)
	case p.At(L_PAREN):
		parseHexAlternative(p)
	case p.At(L_BRACKET):
		parseHexJump(p)
	default:
		p.ErrAndBump(MsgExpectedHexByteOrAlt)
	}
}

func parseHexAlternative(p *Parser) {
	m := p.Start()
	p.Bump(L_PAREN)
	parseHexToken(p)
	for p.At(PIPE) {
		pm := p.Start()
		p.Bump(PIPE)
		pm.Complete(p, HEX_PIPE)
		parseHexToken(p)
	}
	p.Expect(R_PAREN)
	m.Complete(p, HEX_ALTERNATIVE)
}

func parseHexJump(p *Parser) {
	m := p.Start()
	p.Bump(L_BRACKET)
	if p.At(INT_LIT) {
		p.Bump(INT_LIT)
	}
	if p.Eat(HYPHEN) {
		if p.At(INT_LIT) {
			p.Bump(INT_LIT)
		}
	}
	p.Expect(R_BRACKET)
	m.Complete(p, HEX_JUMP)
}

// parseRegexPattern consumes a `/BODY/MODS` regex whose shape the lexer's
// regex sub-scanner already decomposed into SLASH/REGEX_LIT/SLASH/
// CASE_INSENSITIVE/DOT_MATCHES_ALL tokens (lexer.go, tryLexRegex).
func parseRegexPattern(p *Parser) {
	m := p.Start()
	p.Bump(SLASH)
	p.Expect(REGEX_LIT)
	p.Expect(SLASH)
	for p.At(CASE_INSENSITIVE) || p.At(DOT_MATCHES_ALL) {
		rm := p.Start()
		p.BumpAny()
		rm.Complete(p, REGEX_MOD)
	}
	m.Complete(p, REGEX_PATTERN)
}
