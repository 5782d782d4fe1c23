package parser

import (
	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/token"
)

func (p *Parser) parseClassForwardDecl() *objcast.ClassForwardDecl {
	kw := p.expectKeyword(token.AtClass)
	n := objcast.NewClassForwardDecl(kw)
	for {
		n.AddName(p.expectIdentifier())
		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		break
	}
	p.expectSemicolon()
	return n
}

func (p *Parser) expectSemicolon() {
	if p.lex.Peek().Kind == token.Semicolon {
		p.lex.Next()
		return
	}
	p.errorf(p.lex.Peek().Range, "expected ';'")
	p.recoverTo(followProperty)
	if p.lex.Peek().Kind == token.Semicolon {
		p.lex.Next()
	}
}

// parseInterfaceOrCategory handles the shared `@interface Name ...`
// prefix, dispatching to ClassInterface or ClassCategory depending on
// whether a parenthesized category name follows the class identifier.
func (p *Parser) parseInterfaceOrCategory() objcast.Node {
	kw := p.expectKeyword(token.AtInterface)
	name := p.expectIdentifier()

	if p.lex.Peek().Kind == token.LParen {
		return p.finishCategory(kw, name)
	}

	iface := objcast.NewClassInterface(kw, name)
	if p.lex.Peek().Kind == token.Colon {
		p.lex.Next()
		iface.SetSuperclass(p.expectIdentifier())
	}
	if p.lex.Peek().Kind == token.Less {
		iface.SetProtocols(p.parseProtocolReferenceList())
	}
	if p.lex.Peek().Kind == token.LBrace {
		iface.SetIVars(p.parseIVarsList())
	}

	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.AtEnd, token.EOF:
			goto done
		case token.AtProperty:
			iface.AddProperty(p.parsePropertyDeclaration())
		case token.Plus, token.Minus:
			iface.AddMethod(p.parseMethodSignature(false))
		default:
			p.errorf(t.Range, "unexpected token %s in interface body", t.Kind)
			p.lex.Next()
			p.recoverTo(followClassBody)
		}
	}
done:
	iface.SetEnd(p.expectKeyword(token.AtEnd))
	return iface
}

func (p *Parser) finishCategory(kw *objcast.KeywordNode, name *objcast.IdentifierNode) *objcast.ClassCategory {
	p.lex.Next() // '('
	categoryName := ""
	if p.lex.Peek().Kind == token.Identifier {
		categoryName = p.lex.Next().Lexeme
	}
	if p.lex.Peek().Kind == token.RParen {
		p.lex.Next()
	} else {
		p.errorf(p.lex.Peek().Range, "expected ')'")
	}

	cat := objcast.NewClassCategory(kw, name, categoryName)
	if p.lex.Peek().Kind == token.Less {
		cat.SetProtocols(p.parseProtocolReferenceList())
	}

	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.AtEnd, token.EOF:
			goto done
		case token.AtProperty:
			cat.AddProperty(p.parsePropertyDeclaration())
		case token.Plus, token.Minus:
			cat.AddMethod(p.parseMethodSignature(false))
		default:
			p.errorf(t.Range, "unexpected token %s in category body", t.Kind)
			p.lex.Next()
			p.recoverTo(followClassBody)
		}
	}
done:
	cat.SetEnd(p.expectKeyword(token.AtEnd))
	return cat
}

// parseImplementationOrCategory handles `@implementation Name ...`,
// dispatching to ClassImplementation or ClassCategory.
func (p *Parser) parseImplementationOrCategory() objcast.Node {
	kw := p.expectKeyword(token.AtImplementation)
	name := p.expectIdentifier()

	if p.lex.Peek().Kind == token.LParen {
		p.lex.Next()
		categoryName := ""
		if p.lex.Peek().Kind == token.Identifier {
			categoryName = p.lex.Next().Lexeme
		}
		if p.lex.Peek().Kind == token.RParen {
			p.lex.Next()
		} else {
			p.errorf(p.lex.Peek().Range, "expected ')'")
		}
		cat := objcast.NewClassCategory(kw, name, categoryName)
		p.parseImplementationMembersInto(func(m *objcast.MethodSignature) { cat.AddMethod(m) }, nil)
		cat.SetEnd(p.expectKeyword(token.AtEnd))
		return cat
	}

	impl := objcast.NewClassImplementation(kw, name)
	p.parseImplementationMembersInto(impl.AddMethod, impl.AddPropertyImpl)
	impl.SetEnd(p.expectKeyword(token.AtEnd))
	return impl
}

func (p *Parser) parseImplementationMembersInto(
	addMethod func(*objcast.MethodSignature),
	addPropertyImpl func(*objcast.PropertyImplementation),
) {
	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.AtEnd, token.EOF:
			return
		case token.Plus, token.Minus:
			addMethod(p.parseMethodSignature(true))
		case token.AtSynthesize:
			impl := p.parsePropertyImplementation(token.AtSynthesize, objcast.PropertySynthesize)
			if addPropertyImpl != nil {
				addPropertyImpl(impl)
			}
		case token.AtDynamic:
			impl := p.parsePropertyImplementation(token.AtDynamic, objcast.PropertyDynamic)
			if addPropertyImpl != nil {
				addPropertyImpl(impl)
			}
		default:
			p.errorf(t.Range, "unexpected token %s in implementation body", t.Kind)
			p.lex.Next()
			p.recoverTo(followClassBody)
		}
	}
}

// parseProtocolDecl parses `@protocol Name <Inherited> ... @end`,
// tracking the active @required/@optional partition (SPEC_FULL §3).
func (p *Parser) parseProtocolDecl() *objcast.ProtocolDecl {
	kw := p.expectKeyword(token.AtProtocol)
	name := p.expectIdentifier()
	decl := objcast.NewProtocolDecl(kw, name)

	if p.lex.Peek().Kind == token.Less {
		decl.SetInherited(p.parseProtocolReferenceList())
	}

	optional := false
	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.AtEnd, token.EOF:
			decl.SetEnd(p.expectKeyword(token.AtEnd))
			return decl
		case token.AtRequired:
			p.lex.Next()
			optional = false
		case token.AtOptional:
			p.lex.Next()
			optional = true
		case token.AtProperty:
			decl.AddProperty(p.parsePropertyDeclaration())
		case token.Plus, token.Minus:
			decl.AddMethod(p.parseMethodSignature(false), optional)
		default:
			p.errorf(t.Range, "unexpected token %s in protocol body", t.Kind)
			p.lex.Next()
			p.recoverTo(followClassBody)
		}
	}
}

// parseProtocolReferenceList parses `< A, B, ... >` with panic-mode
// recovery for malformed entries, per spec §4.2's testable scenario:
// `<A, , >` accepts A, reports the stray comma, and terminates at '>'.
func (p *Parser) parseProtocolReferenceList() *objcast.ProtocolReferenceList {
	open := p.expectRune(token.Less)
	list := objcast.NewProtocolReferenceList(open)

	for p.lex.Peek().Kind != token.Greater && p.lex.Peek().Kind != token.EOF {
		if p.lex.Peek().Kind == token.Identifier {
			list.AddProtocol(p.expectIdentifier())
			if p.lex.Peek().Kind == token.Comma {
				p.lex.Next()
				continue
			}
			break
		}
		// Stray token (e.g. an extra comma): report and recover to the
		// list's follow set without consuming '>' itself (spec table row 5).
		p.errorf(p.lex.Peek().Range, "expected protocol name, found %s", p.lex.Peek().Kind)
		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		p.recoverTo(followProtocolList)
		break
	}
	if len(list.Protocols) == 0 {
		p.errorf(p.lex.Peek().Range, "expected at least one protocol name")
	}

	list.SetClose(p.expectRune(token.Greater))
	return list
}

// parseIVarsList parses the `{ ... }` ivar block, tracking the active
// visibility keyword (spec §3: "applies to the suffix of ivars following
// the last visibility keyword, defaulting to @protected").
func (p *Parser) parseIVarsList() *objcast.IVarsList {
	open := p.expectRune(token.LBrace)
	list := objcast.NewIVarsList(open)

	visibility := objcast.VisibilityProtected
	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.RBrace, token.AtEnd, token.EOF:
			goto done
		case token.AtPrivate:
			list.AddKeyword(objcast.NewKeywordNode(p.lex.Next()))
			visibility = objcast.VisibilityPrivate
		case token.AtProtected:
			list.AddKeyword(objcast.NewKeywordNode(p.lex.Next()))
			visibility = objcast.VisibilityProtected
		case token.AtPackage:
			list.AddKeyword(objcast.NewKeywordNode(p.lex.Next()))
			visibility = objcast.VisibilityPackage
		case token.AtPublic:
			list.AddKeyword(objcast.NewKeywordNode(p.lex.Next()))
			visibility = objcast.VisibilityPublic
		default:
			if isTypeStart(t.Kind) {
				typ := p.parseType()
				id := p.expectIdentifier()
				list.AddIVar(objcast.NewIVarDecl(typ, id, visibility))
				p.expectSemicolon()
				continue
			}
			p.errorf(t.Range, "unexpected token %s in ivar block", t.Kind)
			p.lex.Next()
			p.recoverTo(followIVarBlock)
		}
	}
done:
	if p.lex.Peek().Kind == token.RBrace {
		list.SetClose(p.expectRune(token.RBrace))
	}
	return list
}

func isTypeStart(k token.Kind) bool {
	switch k {
	case token.Identifier, token.KeywordID, token.KeywordVoid, token.KeywordInstancetype,
		token.KeywordWeak, token.KeywordStrong, token.KeywordUnsafeUnretained,
		token.KeywordConst, token.KeywordVolatile, token.KeywordNullable, token.KeywordNonnull:
		return true
	}
	return false
}

// parsePropertyDeclaration parses `@property(attrs) type identifier;`
// (spec §3).
func (p *Parser) parsePropertyDeclaration() *objcast.PropertyDeclaration {
	kw := p.expectKeyword(token.AtProperty)

	var attrs []objcast.PropertyAttribute
	if p.lex.Peek().Kind == token.LParen {
		p.lex.Next()
		for p.lex.Peek().Kind != token.RParen && p.lex.Peek().Kind != token.EOF {
			if p.lex.Peek().Kind != token.Identifier {
				p.errorf(p.lex.Peek().Range, "expected attribute name")
				p.lex.Next()
				continue
			}
			name := p.lex.Next().Lexeme
			value := ""
			if p.lex.Peek().Kind == token.Equals {
				p.lex.Next()
				if p.lex.Peek().Kind == token.Identifier {
					value = p.lex.Next().Lexeme
				}
			}
			attrs = append(attrs, objcast.PropertyAttribute{Name: name, Value: value})
			if p.lex.Peek().Kind == token.Comma {
				p.lex.Next()
			}
		}
		if p.lex.Peek().Kind == token.RParen {
			p.lex.Next()
		}
	}

	typ := p.parseType()
	id := p.expectIdentifier()
	decl := objcast.NewPropertyDeclaration(kw, attrs, typ, id)
	p.expectSemicolon()
	return decl
}

// parsePropertyImplementation parses `@synthesize a, b=_b;` or
// `@dynamic c, d;` (spec §3, scenario 4).
func (p *Parser) parsePropertyImplementation(kind token.Kind, implKind objcast.PropertyImplKind) *objcast.PropertyImplementation {
	kw := p.expectKeyword(kind)
	var items []objcast.PropertyImplItem
	for {
		name := p.expectIdentifier().Name
		ivar := ""
		if p.lex.Peek().Kind == token.Equals {
			p.lex.Next()
			ivar = p.expectIdentifier().Name
		}
		items = append(items, objcast.PropertyImplItem{Name: name, IVar: ivar})
		if p.lex.Peek().Kind == token.Comma {
			p.lex.Next()
			continue
		}
		break
	}
	p.expectSemicolon()
	return objcast.NewPropertyImplementation(kw, implKind, items)
}

// parseMethodSignature parses `[+-] (returnType) selector[;|{body}]`
// (spec §3). withBody indicates an implementation context, where the
// follow token is '{' rather than ';'.
func (p *Parser) parseMethodSignature(withBody bool) *objcast.MethodSignature {
	isClass := p.lex.Next().Kind == token.Plus // consumes '+' or '-'

	var returnType *objcast.ObjcType
	if p.lex.Peek().Kind == token.LParen {
		p.lex.Next()
		returnType = p.parseType()
		if p.lex.Peek().Kind == token.RParen {
			p.lex.Next()
		} else {
			p.errorf(p.lex.Peek().Range, "expected ')'")
		}
	}

	selector := p.parseSelector()
	m := objcast.NewMethodSignature(isClass, returnType, selector)

	if p.lex.Peek().Kind == token.LBrace {
		m.HasBody = true
		m.BodyText = p.skipBalancedBody()
		return m
	}

	if withBody {
		p.errorf(p.lex.Peek().Range, "expected '{'")
		p.recoverTo(followMethodImplementation)
		if p.lex.Peek().Kind == token.LBrace {
			m.HasBody = true
			m.BodyText = p.skipBalancedBody()
		}
		return m
	}

	p.expectSemicolon()
	return m
}

// parseSelector distinguishes a bare selector (a lone identifier not
// followed by ':') from a keyword-part selector using one token of
// extra lookahead (lexer.PeekAt(1)); see spec §3's selector grammar.
func (p *Parser) parseSelector() []objcast.SelectorPart {
	if p.lex.Peek().Kind == token.Identifier && p.lex.PeekAt(1).Kind != token.Colon {
		name := p.lex.Next().Lexeme
		return []objcast.SelectorPart{{Keyword: name}}
	}

	var parts []objcast.SelectorPart
	for p.lex.Peek().Kind == token.Identifier {
		keyword := p.lex.Next().Lexeme
		if p.lex.Peek().Kind != token.Colon {
			p.errorf(p.lex.Peek().Range, "expected ':' in selector")
			parts = append(parts, objcast.SelectorPart{Keyword: keyword})
			break
		}
		p.lex.Next() // ':'

		var paramType *objcast.ObjcType
		if p.lex.Peek().Kind == token.LParen {
			p.lex.Next()
			paramType = p.parseType()
			if p.lex.Peek().Kind == token.RParen {
				p.lex.Next()
			} else {
				p.errorf(p.lex.Peek().Range, "expected ')'")
			}
		}
		paramName := ""
		if p.lex.Peek().Kind == token.Identifier {
			paramName = p.lex.Next().Lexeme
		}
		parts = append(parts, objcast.SelectorPart{Keyword: keyword, ParamType: paramType, ParamName: paramName})

		if p.lex.Peek().Kind != token.Identifier || p.lex.PeekAt(1).Kind != token.Colon {
			break
		}
	}
	return parts
}

// skipBalancedBody consumes a `{ ... }` method body, tracking brace
// depth, and returns the raw text strictly between the outermost braces
// (the emitter supplies its own Swift "{"/"}" wrapper around this text).
// The core never executes or analyzes bodies (spec §1 Non-goals): only
// their extent matters so the emitter can carry an opaque placeholder
// forward.
func (p *Parser) skipBalancedBody() string {
	open := p.lex.Next() // consumes the outermost '{'
	depth := 1
	innerStart := open.Range.End
	innerEnd := innerStart
	for {
		t := p.lex.Peek()
		if t.Kind == token.EOF {
			p.errorf(t.Range, "unexpected end of file inside method body")
			break
		}
		if t.Kind == token.RBrace && depth == 1 {
			innerEnd = t.Range.Start
			p.lex.Next()
			break
		}
		p.lex.Next()
		if t.Kind == token.LBrace {
			depth++
		} else if t.Kind == token.RBrace {
			depth--
		}
		innerEnd = t.Range.End
	}
	return p.lex.Slice(token.Range{Start: innerStart, End: innerEnd})
}
