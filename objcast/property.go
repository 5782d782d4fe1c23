package objcast

// PropertyAttribute is one keyword or key=value pair inside a
// `@property(...)` attribute list (spec §3).
type PropertyAttribute struct {
	Name  string // atomic, nonatomic, copy, strong, weak, retain, assign, readonly, readwrite, getter, setter
	Value string // non-empty only for getter=/setter=
}

// PropertyDeclaration is `@property(attrs) type identifier;` (spec §3).
type PropertyDeclaration struct {
	base
	AtProperty *KeywordNode
	Attributes []PropertyAttribute
	Type       *ObjcType
	Identifier *IdentifierNode
}

func NewPropertyDeclaration(kw *KeywordNode, attrs []PropertyAttribute, typ *ObjcType, id *IdentifierNode) *PropertyDeclaration {
	n := &PropertyDeclaration{AtProperty: kw, Attributes: attrs, Type: typ, Identifier: id}
	adopt(&n.base, n, kw)
	adopt(&n.base, n, typ)
	adopt(&n.base, n, id)
	return n
}

func (p *PropertyDeclaration) HasAttribute(name string) bool {
	for _, a := range p.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (p *PropertyDeclaration) AttributeValue(name string) (string, bool) {
	for _, a := range p.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// PropertyImplKind distinguishes @synthesize from @dynamic (spec
// scenario 4).
type PropertyImplKind int

const (
	PropertySynthesize PropertyImplKind = iota
	PropertyDynamic
)

// PropertyImplItem is one comma-separated entry of a @synthesize/@dynamic
// statement: `abc` or `ghi=jlm`.
type PropertyImplItem struct {
	Name string
	IVar string // empty unless explicitly bound via `name=ivar`
}

// PropertyImplementation is a single `@synthesize ...;` or
// `@dynamic ...;` statement (spec §3, scenario 4).
type PropertyImplementation struct {
	base
	Keyword *KeywordNode
	Kind    PropertyImplKind
	Items   []PropertyImplItem
}

func NewPropertyImplementation(kw *KeywordNode, kind PropertyImplKind, items []PropertyImplItem) *PropertyImplementation {
	n := &PropertyImplementation{Keyword: kw, Kind: kind, Items: items}
	adopt(&n.base, n, kw)
	return n
}
