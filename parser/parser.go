// Package parser is an error-recovering recursive-descent consumer of
// token.Token that builds objcast concrete syntax trees (spec §4.2). It
// never throws on recoverable syntax errors: diagnostics accumulate on a
// reporter.Handler and the caller always receives a (possibly partial)
// tree.
package parser

import (
	"github.com/arclight-dev/objcswift/lexer"
	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/reporter"
	"github.com/arclight-dev/objcswift/token"
)

// Parser consumes a single source's token stream.
type Parser struct {
	lex   *lexer.Lexer
	diags *reporter.Handler
	stack []*contextFrame

	// assumeNonnullDepth tracks nested NS_ASSUME_NONNULL_BEGIN/END
	// regions (SPEC_FULL §3 supplement). While it is positive, parseType
	// marks a type with no explicit nullability annotation as nonnull.
	assumeNonnullDepth int
}

// New creates a Parser over source text, reporting diagnostics to diags.
func New(source string, text []byte, diags *reporter.Handler) *Parser {
	return &Parser{lex: lexer.New(source, text, diags), diags: diags}
}

// AssumeNonnullActive reports whether an NS_ASSUME_NONNULL_BEGIN region
// is open at the parser's current position; after ParseMain, whether the
// source ended inside a region that was never closed.
func (p *Parser) AssumeNonnullActive() bool {
	return p.assumeNonnullDepth > 0
}

// ParseMain consumes the whole token stream and returns a
// GlobalContextNode (spec §4.2).
func (p *Parser) ParseMain() *objcast.GlobalContextNode {
	frame, release := p.pushContext()
	defer release()

	for {
		t := p.lex.Peek()
		switch t.Kind {
		case token.EOF:
			root := objcast.NewGlobalContextNode()
			for _, n := range frame.nodes {
				root.Add(n)
			}
			return root
		case token.Identifier:
			switch t.Lexeme {
			case "NS_ASSUME_NONNULL_BEGIN":
				p.lex.Next()
				p.assumeNonnullDepth++
			case "NS_ASSUME_NONNULL_END":
				p.lex.Next()
				if p.assumeNonnullDepth > 0 {
					p.assumeNonnullDepth--
				}
			case "typedef":
				p.lex.Next()
				if decl := p.parseTypedefEnum(); decl != nil {
					frame.emit(decl)
				}
			default:
				p.errorf(t.Range, "unexpected identifier %q at top level", t.Lexeme)
				p.lex.Next()
				p.recoverTo(followClassBody)
			}
		case token.AtClass:
			frame.emit(p.parseClassForwardDecl())
		case token.AtInterface:
			frame.emit(p.parseInterfaceOrCategory())
		case token.AtImplementation:
			frame.emit(p.parseImplementationOrCategory())
		case token.AtProtocol:
			frame.emit(p.parseProtocolDecl())
		default:
			p.errorf(t.Range, "unexpected token %s at top level", t.Kind)
			p.lex.Next()
			p.recoverTo(followClassBody)
		}
	}
}

// ParseClassInterfaceNode parses a single `@interface Name : Super
// <Protocols> { ivars } ... @end` construct, exposed for targeted
// testing per spec §4.2. Returns nil if the top-level construct turned
// out to be a category, not a plain interface.
func (p *Parser) ParseClassInterfaceNode() *objcast.ClassInterface {
	frame, release := p.pushContext()
	defer release()

	node := p.parseInterfaceOrCategory()
	frame.emit(node)
	iface, _ := node.(*objcast.ClassInterface)
	return iface
}

// ParseClassImplementation parses a single `@implementation Name ...
// @end` construct, exposed for targeted testing.
func (p *Parser) ParseClassImplementation() *objcast.ClassImplementation {
	frame, release := p.pushContext()
	defer release()

	node := p.parseImplementationOrCategory()
	frame.emit(node)
	impl, _ := node.(*objcast.ClassImplementation)
	return impl
}

// ParseClassCategoryNode parses a single category construct (either an
// `@interface Name (Cat) ...` or `@implementation Name (Cat) ...`),
// exposed for targeted testing.
func (p *Parser) ParseClassCategoryNode() *objcast.ClassCategory {
	frame, release := p.pushContext()
	defer release()

	var node objcast.Node
	switch p.lex.Peek().Kind {
	case token.AtImplementation:
		node = p.parseImplementationOrCategory()
	default:
		node = p.parseInterfaceOrCategory()
	}
	frame.emit(node)
	cat, _ := node.(*objcast.ClassCategory)
	return cat
}

// ParseProtocolReferenceList parses a single `<A, B, ...>` list, exposed
// for targeted testing (spec §4.2's testable recovery scenario).
func (p *Parser) ParseProtocolReferenceList() *objcast.ProtocolReferenceList {
	frame, release := p.pushContext()
	defer release()

	node := p.parseProtocolReferenceList()
	frame.emit(node)
	return node
}

// Diagnostics returns the handler this parser reports to.
func (p *Parser) Diagnostics() *reporter.Handler {
	return p.diags
}

func (p *Parser) expectKeyword(k token.Kind) *objcast.KeywordNode {
	if p.lex.Peek().Kind != k {
		p.errorf(p.lex.Peek().Range, "expected %s", k)
		return objcast.NewKeywordNode(token.Token{Kind: k, Range: p.lex.Peek().Range})
	}
	return objcast.NewKeywordNode(p.lex.Next())
}

func (p *Parser) expectIdentifier() *objcast.IdentifierNode {
	if p.lex.Peek().Kind != token.Identifier {
		p.errorf(p.lex.Peek().Range, "expected identifier, found %s", p.lex.Peek().Kind)
		return objcast.NewIdentifierNode(token.Token{Kind: token.Identifier, Range: p.lex.Peek().Range})
	}
	return objcast.NewIdentifierNode(p.lex.Next())
}

func (p *Parser) expectRune(k token.Kind) *objcast.RuneNode {
	if p.lex.Peek().Kind != k {
		p.errorf(p.lex.Peek().Range, "expected %s", k)
		return objcast.NewRuneNode(token.Token{Kind: k, Range: p.lex.Peek().Range})
	}
	return objcast.NewRuneNode(p.lex.Next())
}
