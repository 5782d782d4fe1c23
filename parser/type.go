package parser

import (
	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/token"
)

// parseType folds pointer '*', generics '<...>', prefix specifiers, and
// the bare `id` with optional `<Proto, ...>` qualification into the
// ObjcType sum exactly as listed in spec §4.2/§3.
func (p *Parser) parseType() *objcast.ObjcType {
	start := p.lex.Peek().Range

	var specs []objcast.TypeSpecifier
	for {
		switch p.lex.Peek().Kind {
		case token.KeywordWeak:
			specs = append(specs, objcast.SpecWeak)
		case token.KeywordStrong:
			specs = append(specs, objcast.SpecStrong)
		case token.KeywordUnsafeUnretained:
			specs = append(specs, objcast.SpecUnsafeUnretained)
		case token.KeywordConst:
			specs = append(specs, objcast.SpecConst)
		case token.KeywordVolatile:
			specs = append(specs, objcast.SpecVolatile)
		default:
			goto specsDone
		}
		p.lex.Next()
	}
specsDone:

	nullability := objcast.NullabilityUnspecified
	if p.lex.Peek().Kind == token.KeywordNullable {
		p.lex.Next()
		nullability = objcast.NullabilityNullable
	} else if p.lex.Peek().Kind == token.KeywordNonnull {
		p.lex.Next()
		nullability = objcast.NullabilityNonnull
	}

	var base *objcast.ObjcType
	switch tok := p.lex.Peek(); tok.Kind {
	case token.KeywordVoid:
		p.lex.Next()
		base = objcast.NewVoidType(tok.Range)
	case token.KeywordInstancetype:
		p.lex.Next()
		base = objcast.NewInstancetypeType(tok.Range)
	case token.KeywordID:
		p.lex.Next()
		var protocols []string
		if p.lex.Peek().Kind == token.Less {
			protocols = p.parseAngleIdentList()
		}
		base = objcast.NewIDType(tok.Range, protocols)
	case token.Identifier:
		p.lex.Next()
		var args []*objcast.ObjcType
		if p.lex.Peek().Kind == token.Less {
			args = p.parseAngleTypeList()
		}
		if len(args) > 0 {
			base = objcast.NewGenericType(tok.Range, tok.Lexeme, args)
		} else {
			base = objcast.NewStructType(tok.Range, tok.Lexeme)
		}
	default:
		p.errorf(tok.Range, "expected a type, found %s", tok.Kind)
		base = objcast.NewVoidType(tok.Range)
	}

	for p.lex.Peek().Kind == token.Star {
		star := p.lex.Next()
		base = objcast.NewPointerType(start.Join(star.Range), base)
	}

	if p.lex.Peek().Kind == token.KeywordNullable {
		p.lex.Next()
		nullability = objcast.NullabilityNullable
	} else if p.lex.Peek().Kind == token.KeywordNonnull {
		p.lex.Next()
		nullability = objcast.NullabilityNonnull
	}
	if nullability == objcast.NullabilityUnspecified && p.assumeNonnullDepth > 0 {
		nullability = objcast.NullabilityNonnull
	}

	result := base
	if len(specs) > 0 {
		result = objcast.NewSpecifiedType(start.Join(base.Range()), specs, base)
	}
	result.Nullability = nullability
	return result
}

// parseAngleIdentList parses `< Ident (, Ident)* >`, used by `id<P1,P2>`.
func (p *Parser) parseAngleIdentList() []string {
	p.lex.Next() // '<'
	var names []string
	for {
		if p.lex.Peek().Kind == token.Identifier {
			names = append(names, p.lex.Next().Lexeme)
		} else {
			p.errorf(p.lex.Peek().Range, "expected protocol name")
		}
		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		break
	}
	if p.lex.Peek().Kind == token.Greater {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected '>'")
	}
	return names
}

// parseAngleTypeList parses `< Type (, Type)* >`, used by generic
// containers such as NSArray<NSString *>.
func (p *Parser) parseAngleTypeList() []*objcast.ObjcType {
	p.lex.Next() // '<'
	var types []*objcast.ObjcType
	for {
		types = append(types, p.parseType())
		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		break
	}
	if p.lex.Peek().Kind == token.Greater {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected '>'")
	}
	return types
}
