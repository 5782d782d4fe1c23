package objcast

// Visibility is the Objective-C ivar visibility keyword, defaulting to
// @protected (spec §3: "IVar visibility applies to the suffix of ivars
// following the last visibility keyword, defaulting to @protected").
type Visibility int

const (
	VisibilityProtected Visibility = iota
	VisibilityPrivate
	VisibilityPackage
	VisibilityPublic
)

// IVarDecl is a single `{type} {identifier};` inside an ivar block.
type IVarDecl struct {
	base
	Type       *ObjcType
	Identifier *IdentifierNode
	Visibility Visibility
}

func NewIVarDecl(typ *ObjcType, id *IdentifierNode, vis Visibility) *IVarDecl {
	n := &IVarDecl{Type: typ, Identifier: id, Visibility: vis}
	adopt(&n.base, n, typ)
	adopt(&n.base, n, id)
	return n
}

// IVarsList is the ordered `{ ... }` ivar block of a class interface
// (spec §3); ClassImplementation carries none.
type IVarsList struct {
	base
	Open, Close *RuneNode
	IVars       []*IVarDecl
}

func NewIVarsList(open *RuneNode) *IVarsList {
	n := &IVarsList{Open: open}
	adopt(&n.base, n, open)
	return n
}

func (n *IVarsList) AddIVar(v *IVarDecl) {
	n.IVars = append(n.IVars, adopt(&n.base, n, v))
}

func (n *IVarsList) SetClose(close *RuneNode) {
	n.Close = adopt(&n.base, n, close)
}

func (n *IVarsList) AddKeyword(k *KeywordNode) {
	adopt(&n.base, n, k)
}
