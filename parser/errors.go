package parser

import "github.com/arclight-dev/objcswift/token"

// followSet is the set of token kinds at which panic-mode recovery stops
// for a given nonterminal (spec §4.2). The first matching token is left
// un-consumed, so the caller's own loop can act on it (e.g. the
// top-level loop seeing @end and finishing the enclosing construct).
type followSet map[token.Kind]bool

func follow(kinds ...token.Kind) followSet {
	s := make(followSet, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

var (
	// Class/implementation/category body: spec §4.2 table row 1.
	followClassBody = follow(token.AtEnd, token.AtInterface, token.AtImplementation, token.EOF)

	// Ivar block: row 2.
	followIVarBlock = follow(token.RBrace, token.AtEnd)

	// Property declaration: row 3.
	followProperty = follow(token.Semicolon)

	// Method signature in an interface: row 4 (";" variant).
	followMethodInterface = follow(token.Semicolon)
	// Method signature in an implementation: row 4 ("{" variant).
	followMethodImplementation = follow(token.LBrace)

	// Protocol reference list: row 5.
	followProtocolList = follow(token.Greater, token.Semicolon, token.LBrace)
)

// recoverTo discards tokens until the lexer's current token is in set or
// EOF is reached, per spec §4.2 ("discards tokens until the nearest
// follow-set member"). It never consumes the stopping token.
func (p *Parser) recoverTo(set followSet) {
	for {
		t := p.lex.Peek()
		if t.Kind == token.EOF || set[t.Kind] {
			return
		}
		p.lex.Next()
	}
}

// errorf records a recoverable syntax diagnostic at the current token's
// range. Callers follow it with a recoverTo to the construct's follow
// set, per spec §4.2.
func (p *Parser) errorf(r token.Range, format string, args ...any) {
	p.diags.Errorf(r, format, args...)
}
