package objcast

// EnumCaseDecl is one case inside an NS_ENUM/NS_OPTIONS body: `Name` or
// `Name = RawValue` (SPEC_FULL §3 supplement). RawValue is kept as raw
// source text since the grammar never evaluates C constant expressions.
type EnumCaseDecl struct {
	Name     string
	RawValue string
}

// EnumDecl is `typedef NS_ENUM(BackingType, Name) { Case, ... };` or its
// NS_OPTIONS sibling (SPEC_FULL §3 supplement). Both macros share this
// node; IsOptions distinguishes them for the intention builder.
type EnumDecl struct {
	base
	Identifier  *IdentifierNode
	BackingType *ObjcType
	IsOptions   bool
	Cases       []EnumCaseDecl
}

func NewEnumDecl(id *IdentifierNode, backing *ObjcType, isOptions bool) *EnumDecl {
	n := &EnumDecl{Identifier: id, BackingType: backing, IsOptions: isOptions}
	adopt(&n.base, n, backing)
	adopt(&n.base, n, id)
	return n
}

func (n *EnumDecl) AddCase(c EnumCaseDecl) {
	n.Cases = append(n.Cases, c)
}
