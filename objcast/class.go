package objcast

// ClassInterface is `@interface Name : Super <Protocols> { ivars } ...
// properties ... methods @end` (spec §3). Invariant: exactly one
// identifier; a protocol list parsed with no protocol in it is kept
// empty and the parser records an error for it (spec §3/§4.2).
type ClassInterface struct {
	base
	AtInterface *KeywordNode
	Identifier  *IdentifierNode
	Superclass  *IdentifierNode // nil if none
	Protocols   *ProtocolReferenceList
	IVars       *IVarsList
	Properties  []*PropertyDeclaration
	Methods     []*MethodSignature
	AtEnd       *KeywordNode
}

func NewClassInterface(atInterface *KeywordNode, id *IdentifierNode) *ClassInterface {
	n := &ClassInterface{AtInterface: atInterface, Identifier: id}
	adopt(&n.base, n, atInterface)
	adopt(&n.base, n, id)
	return n
}

func (n *ClassInterface) SetSuperclass(id *IdentifierNode) {
	n.Superclass = adopt(&n.base, n, id)
}

func (n *ClassInterface) SetProtocols(p *ProtocolReferenceList) {
	n.Protocols = adopt(&n.base, n, p)
}

func (n *ClassInterface) SetIVars(iv *IVarsList) {
	n.IVars = adopt(&n.base, n, iv)
}

func (n *ClassInterface) AddProperty(p *PropertyDeclaration) {
	n.Properties = append(n.Properties, adopt(&n.base, n, p))
}

func (n *ClassInterface) AddMethod(m *MethodSignature) {
	n.Methods = append(n.Methods, adopt(&n.base, n, m))
}

func (n *ClassInterface) SetEnd(atEnd *KeywordNode) {
	n.AtEnd = adopt(&n.base, n, atEnd)
}

// ClassImplementation is `@implementation Name ... @end` (spec §3).
type ClassImplementation struct {
	base
	AtImplementation *KeywordNode
	Identifier       *IdentifierNode
	Methods          []*MethodSignature
	PropertyImpls    []*PropertyImplementation
	AtEnd            *KeywordNode
}

func NewClassImplementation(kw *KeywordNode, id *IdentifierNode) *ClassImplementation {
	n := &ClassImplementation{AtImplementation: kw, Identifier: id}
	adopt(&n.base, n, kw)
	adopt(&n.base, n, id)
	return n
}

func (n *ClassImplementation) AddMethod(m *MethodSignature) {
	n.Methods = append(n.Methods, adopt(&n.base, n, m))
}

func (n *ClassImplementation) AddPropertyImpl(p *PropertyImplementation) {
	n.PropertyImpls = append(n.PropertyImpls, adopt(&n.base, n, p))
}

func (n *ClassImplementation) SetEnd(atEnd *KeywordNode) {
	n.AtEnd = adopt(&n.base, n, atEnd)
}

// ClassCategory is `@interface Name (CategoryName) <Protocols> ... @end`
// or the matching @implementation form (spec §3).
type ClassCategory struct {
	base
	AtKeyword    *KeywordNode
	ClassName    *IdentifierNode
	CategoryName string // empty denotes a class extension `Name ()`
	Protocols    *ProtocolReferenceList
	Properties   []*PropertyDeclaration
	Methods      []*MethodSignature
	AtEnd        *KeywordNode
}

func NewClassCategory(kw *KeywordNode, className *IdentifierNode, categoryName string) *ClassCategory {
	n := &ClassCategory{AtKeyword: kw, ClassName: className, CategoryName: categoryName}
	adopt(&n.base, n, kw)
	adopt(&n.base, n, className)
	return n
}

func (n *ClassCategory) SetProtocols(p *ProtocolReferenceList) {
	n.Protocols = adopt(&n.base, n, p)
}

func (n *ClassCategory) AddProperty(p *PropertyDeclaration) {
	n.Properties = append(n.Properties, adopt(&n.base, n, p))
}

func (n *ClassCategory) AddMethod(m *MethodSignature) {
	n.Methods = append(n.Methods, adopt(&n.base, n, m))
}

func (n *ClassCategory) SetEnd(atEnd *KeywordNode) {
	n.AtEnd = adopt(&n.base, n, atEnd)
}

// ProtocolMethod pairs a method signature with whether it fell in the
// @optional or @required partition of the enclosing @protocol body
// (SPEC_FULL §3 supplement).
type ProtocolMethod struct {
	Method   *MethodSignature
	Optional bool
}

// ProtocolDecl is `@protocol Name <Inherited> ... @end` (spec §3).
type ProtocolDecl struct {
	base
	AtProtocol *KeywordNode
	Identifier *IdentifierNode
	Inherited  *ProtocolReferenceList
	Properties []*PropertyDeclaration
	Methods    []ProtocolMethod
	AtEnd      *KeywordNode
}

func NewProtocolDecl(kw *KeywordNode, id *IdentifierNode) *ProtocolDecl {
	n := &ProtocolDecl{AtProtocol: kw, Identifier: id}
	adopt(&n.base, n, kw)
	adopt(&n.base, n, id)
	return n
}

func (n *ProtocolDecl) SetInherited(p *ProtocolReferenceList) {
	n.Inherited = adopt(&n.base, n, p)
}

func (n *ProtocolDecl) AddProperty(p *PropertyDeclaration) {
	n.Properties = append(n.Properties, adopt(&n.base, n, p))
}

func (n *ProtocolDecl) AddMethod(m *MethodSignature, optional bool) {
	adopt(&n.base, n, m)
	n.Methods = append(n.Methods, ProtocolMethod{Method: m, Optional: optional})
}

func (n *ProtocolDecl) SetEnd(atEnd *KeywordNode) {
	n.AtEnd = adopt(&n.base, n, atEnd)
}

// ClassForwardDecl is `@class Name, Name2;` (spec scenario 1): it
// produces no intention by itself but registers names for symbol
// resolution (SPEC_FULL §3 supplement).
type ClassForwardDecl struct {
	base
	AtClass *KeywordNode
	Names   []*IdentifierNode
}

func NewClassForwardDecl(kw *KeywordNode) *ClassForwardDecl {
	n := &ClassForwardDecl{AtClass: kw}
	adopt(&n.base, n, kw)
	return n
}

func (n *ClassForwardDecl) AddName(id *IdentifierNode) {
	n.Names = append(n.Names, adopt(&n.base, n, id))
}
