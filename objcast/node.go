// Package objcast defines the concrete Objective-C syntax tree produced
// by package parser: class interfaces, implementations, categories,
// protocols, ivar blocks, properties, method signatures, and the
// ObjcType sum (spec §3).
package objcast

import "github.com/arclight-dev/objcswift/token"

// Node is implemented by every concrete AST node. Parent is a weak,
// non-owning back-reference (spec §3, §9): nothing ever walks it to
// free or mutate the tree, it exists purely so diagnostics and the
// intention builder can ask "what encloses me" without threading
// context through every recursive call.
type Node interface {
	Range() token.Range
	Parent() Node
	Children() []Node
	setParent(Node)
}

// base is embedded by every node type to provide the Node plumbing.
type base struct {
	rng      token.Range
	parent   Node
	children []Node
}

func (b *base) Range() token.Range   { return b.rng }
func (b *base) Parent() Node         { return b.parent }
func (b *base) Children() []Node     { return b.children }
func (b *base) setParent(p Node)     { b.parent = p }

// adopt appends child to the node's child list in source order (spec
// §4.2 "Children of every node are appended in source order") and wires
// the weak parent back-reference.
func adopt[T Node](b *base, self Node, child T) T {
	child.setParent(self)
	b.children = append(b.children, child)
	b.rng = b.rng.Join(child.Range())
	return child
}

// KeywordNode is a first-class child representing a recognized at-keyword
// token (@interface, @end, @property, @synthesize, @dynamic, ...), so the
// emitter and tests can recover them by filtered lookup over Children
// (spec §4.2: "The parser attaches keyword tokens ... as first-class
// child KeywordNodes").
type KeywordNode struct {
	base
	Kind token.Kind
	Tok  token.Token
}

func NewKeywordNode(tok token.Token) *KeywordNode {
	n := &KeywordNode{Kind: tok.Kind, Tok: tok}
	n.rng = tok.Range
	return n
}

// IdentifierNode is a bare name reference: a class, protocol, property,
// or parameter identifier.
type IdentifierNode struct {
	base
	Name string
	Tok  token.Token
}

func NewIdentifierNode(tok token.Token) *IdentifierNode {
	n := &IdentifierNode{Name: tok.Lexeme, Tok: tok}
	n.rng = tok.Range
	return n
}

// RuneNode wraps a single significant punctuation token kept as a child
// purely for range/ordering bookkeeping (e.g. the '<' and '>' of a
// protocol reference list, spec scenario 5).
type RuneNode struct {
	base
	Tok token.Token
}

func NewRuneNode(tok token.Token) *RuneNode {
	n := &RuneNode{Tok: tok}
	n.rng = tok.Range
	return n
}

// GlobalContextNode is the root produced by parseMain (spec §4.2): an
// ordered sequence of top-level constructs.
type GlobalContextNode struct {
	base
}

func NewGlobalContextNode() *GlobalContextNode {
	return &GlobalContextNode{}
}

func (n *GlobalContextNode) Add(child Node) {
	adopt(&n.base, n, child)
}

// ProtocolReferenceList is an ordered list of protocol identifiers, e.g.
// the `<A, B>` in `@interface MyClass : Super <A, B>` (spec §3). A list
// that ends up with no protocol is still returned, empty, and the parser
// records an error for it (spec §3, §4.2).
type ProtocolReferenceList struct {
	base
	Open, Close *RuneNode
	Protocols   []*IdentifierNode
}

func NewProtocolReferenceList(open *RuneNode) *ProtocolReferenceList {
	n := &ProtocolReferenceList{Open: open}
	adopt(&n.base, n, open)
	return n
}

func (n *ProtocolReferenceList) AddProtocol(id *IdentifierNode) {
	n.Protocols = append(n.Protocols, adopt(&n.base, n, id))
}

func (n *ProtocolReferenceList) SetClose(close *RuneNode) {
	n.Close = adopt(&n.base, n, close)
}

// Names returns the protocol identifier names in source order.
func (n *ProtocolReferenceList) Names() []string {
	out := make([]string, len(n.Protocols))
	for i, id := range n.Protocols {
		out[i] = id.Name
	}
	return out
}
