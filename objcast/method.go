package objcast

// SelectorPart is one `keyword:type ident` fragment of a method selector,
// or the single bare identifier of a no-argument method (spec §3,
// GLOSSARY: "Selector — the ordered tuple of keyword parts").
type SelectorPart struct {
	Keyword    string // for a bare selector, the method name itself
	ParamType  *ObjcType
	ParamName  string
}

// MethodSignature is `[+-] (returnType) selector;` or, in an
// implementation, the same followed by a `{ ... }` body (spec §3).
type MethodSignature struct {
	base
	IsClassMethod bool // '+' vs '-'
	ReturnType    *ObjcType
	Selector      []SelectorPart
	HasBody       bool
	// BodyText is the raw, unparsed text of the method body: the spec's
	// core does not execute or analyze bodies beyond locating their
	// extent (spec §1 Non-goals), so the body is carried opaquely for
	// re-emission.
	BodyText string
}

func NewMethodSignature(isClassMethod bool, returnType *ObjcType, selector []SelectorPart) *MethodSignature {
	n := &MethodSignature{IsClassMethod: isClassMethod, ReturnType: returnType, Selector: selector}
	if returnType != nil {
		adopt(&n.base, n, returnType)
	}
	for i := range selector {
		if selector[i].ParamType != nil {
			adopt(&n.base, n, selector[i].ParamType)
		}
	}
	return n
}

// SelectorName returns the full colon-joined selector name, e.g.
// "initWithThing:" for a one-argument selector, or the bare name for a
// zero-argument method (a single part with no parameter).
func (m *MethodSignature) SelectorName() string {
	if _, ok := m.BareName(); ok {
		return m.Selector[0].Keyword
	}
	name := ""
	for _, part := range m.Selector {
		name += part.Keyword + ":"
	}
	return name
}

// BareName returns the method name when it has no colon-separated
// arguments at all (e.g. `-(void)myMethod;`).
func (m *MethodSignature) BareName() (string, bool) {
	if len(m.Selector) == 1 && m.Selector[0].ParamType == nil && m.Selector[0].ParamName == "" {
		return m.Selector[0].Keyword, true
	}
	return "", false
}

// SelectorEquals reports equality of selector as the ordered tuple of
// keyword parts, ignoring parameter names and types, per spec §4.4
// ("matching ... by selector equality (treating selector as the ordered
// tuple of keyword parts)").
func (m *MethodSignature) SelectorEquals(other *MethodSignature) bool {
	if len(m.Selector) != len(other.Selector) {
		return false
	}
	for i := range m.Selector {
		if m.Selector[i].Keyword != other.Selector[i].Keyword {
			return false
		}
	}
	return true
}
