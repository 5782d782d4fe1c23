package parser

import (
	"strings"

	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/token"
)

var followEnumBody = follow(token.RBrace, token.Semicolon, token.EOF)

// parseTypedefEnum parses `typedef NS_ENUM(BackingType, Name) { Case (=
// RawValue)?, ... };` or the NS_OPTIONS form (SPEC_FULL §3 supplement).
// The caller has already consumed the leading `typedef` keyword. Returns
// nil if what follows isn't one of these two recognized macro forms,
// having already recovered past the offending construct.
func (p *Parser) parseTypedefEnum() *objcast.EnumDecl {
	macro := p.lex.Peek()
	if macro.Kind != token.Identifier || (macro.Lexeme != "NS_ENUM" && macro.Lexeme != "NS_OPTIONS") {
		p.errorf(macro.Range, "unsupported typedef, expected NS_ENUM or NS_OPTIONS")
		p.recoverTo(follow(token.Semicolon))
		if p.lex.Peek().Kind == token.Semicolon {
			p.lex.Next()
		}
		return nil
	}
	p.lex.Next()
	isOptions := macro.Lexeme == "NS_OPTIONS"

	if p.lex.Peek().Kind == token.LParen {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected '(' after %s", macro.Lexeme)
	}

	backing := p.parseType()

	if p.lex.Peek().Kind == token.Comma {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected ',' between %s's type and name", macro.Lexeme)
	}

	name := p.expectIdentifier()

	if p.lex.Peek().Kind == token.RParen {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected ')'")
	}

	decl := objcast.NewEnumDecl(name, backing, isOptions)

	if p.lex.Peek().Kind != token.LBrace {
		p.errorf(p.lex.Peek().Range, "expected '{'")
		p.recoverTo(followEnumBody)
	} else {
		p.lex.Next()
		p.parseEnumCases(decl)
		if p.lex.Peek().Kind == token.RBrace {
			p.lex.Next()
		} else {
			p.errorf(p.lex.Peek().Range, "expected '}'")
			p.recoverTo(followEnumBody)
			if p.lex.Peek().Kind == token.RBrace {
				p.lex.Next()
			}
		}
	}

	p.expectSemicolon()
	return decl
}

func (p *Parser) parseEnumCases(decl *objcast.EnumDecl) {
	for p.lex.Peek().Kind != token.RBrace && p.lex.Peek().Kind != token.EOF {
		if p.lex.Peek().Kind != token.Identifier {
			p.errorf(p.lex.Peek().Range, "expected an enum case name")
			p.recoverTo(follow(token.Comma, token.RBrace))
			if p.lex.Peek().Kind == token.Comma {
				p.lex.Next()
				continue
			}
			break
		}
		name := p.lex.Next().Lexeme
		raw := ""
		if p.lex.Peek().Kind == token.Equals {
			p.lex.Next()
			raw = p.consumeEnumRawValue()
		}
		decl.AddCase(objcast.EnumCaseDecl{Name: name, RawValue: raw})

		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		break
	}
}

// consumeEnumRawValue captures the raw literal text of an enum case's
// explicit value, up to the next ',' or '}'. The grammar never evaluates
// C constant expressions, so the tokens are simply joined back with
// spaces.
func (p *Parser) consumeEnumRawValue() string {
	var parts []string
	for {
		t := p.lex.Peek()
		if t.Kind == token.Comma || t.Kind == token.RBrace || t.Kind == token.EOF {
			break
		}
		parts = append(parts, p.lex.Next().Lexeme)
	}
	return strings.Join(parts, " ")
}
