package intention

import (
	"strings"

	"github.com/tidwall/btree"

	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/reporter"
	"github.com/arclight-dev/objcswift/typemap"
)

// ParsedFile is one input's parse result, named so the builder can
// derive Swift output paths from source names (spec §4.4).
type ParsedFile struct {
	Name          string
	Root          *objcast.GlobalContextNode
	AssumeNonnull bool
}

// Builder walks the concrete trees of every input file and emits one
// intention Graph, implementing the file-pairing rule of spec §4.4.
// registry is a btree-ordered map keyed by class name: it is the
// "symbols first, resolve second" structure that lets a property of a
// forward-declared type resolve correctly no matter which input file
// supplies the full @interface, mirroring a two-pass symbol-then-link
// compiler design (SPEC_FULL §3).
type Builder struct {
	diags *reporter.Handler
	graph *Graph

	registry *btree.Map[string, *pendingType]
	order    []string

	forwardDeclared map[string]bool

	files     map[string]*File
	fileOrder []string
}

// pendingType accumulates interface + implementation + category data
// for one class name before being flushed into the arena.
type pendingType struct {
	name               string
	iface              *objcast.ClassInterface
	ifaceFile          string
	ifaceAssumeNonnull bool
	impl               *objcast.ClassImplementation
	implFile           string
	categories         []categoryHit
}

type categoryHit struct {
	cat  *objcast.ClassCategory
	file string
}

func NewBuilder(diags *reporter.Handler) *Builder {
	return &Builder{
		diags:           diags,
		graph:           NewGraph(),
		registry:        btree.NewMap[string, *pendingType](0),
		forwardDeclared: map[string]bool{},
		files:           map[string]*File{},
	}
}

// AddFile folds one parsed input into the builder's pending state.
// Files must be added in InputSourcesProvider.sources() order (spec §5
// ordering guarantee ii), since that order decides which @interface or
// @implementation "wins" on a duplicate (first one seen).
func (b *Builder) AddFile(f ParsedFile) {
	for _, n := range f.Root.Children() {
		switch node := n.(type) {
		case *objcast.ClassForwardDecl:
			for _, id := range node.Names {
				b.forwardDeclared[id.Name] = true
				b.pending(id.Name)
			}
		case *objcast.ClassInterface:
			p := b.pending(node.Identifier.Name)
			if p.iface != nil {
				b.diags.Warnf(node.Range(), "duplicate @interface for %s, keeping the first one seen", node.Identifier.Name)
				continue
			}
			p.iface = node
			p.ifaceFile = f.Name
			p.ifaceAssumeNonnull = f.AssumeNonnull
		case *objcast.ClassImplementation:
			p := b.pending(node.Identifier.Name)
			if p.impl != nil {
				b.diags.Warnf(node.Range(), "duplicate @implementation for %s, keeping the first one seen", node.Identifier.Name)
				continue
			}
			p.impl = node
			p.implFile = f.Name
		case *objcast.ClassCategory:
			// A class extension `Name ()` folds in the same way as a named
			// category, except flush() only records a CategoryNames entry
			// when CategoryName is non-empty.
			p := b.pending(node.ClassName.Name)
			p.categories = append(p.categories, categoryHit{cat: node, file: f.Name})
		case *objcast.ProtocolDecl:
			b.addProtocol(node, f.Name, f.AssumeNonnull)
		case *objcast.EnumDecl:
			b.addEnum(node, f.Name)
		}
	}
}

func (b *Builder) pending(name string) *pendingType {
	if p, ok := b.registry.Get(name); ok {
		return p
	}
	p := &pendingType{name: name}
	b.registry.Set(name, p)
	b.order = append(b.order, name)
	return p
}

// fileFor returns (creating if needed) the File intention for a Swift
// output path, in first-seen order (spec §5 ordering guarantee i: "one
// output file per input, declarations in source order").
func (b *Builder) fileFor(path string) *File {
	if f, ok := b.files[path]; ok {
		return f
	}
	f := &File{Path: path}
	b.files[path] = f
	b.fileOrder = append(b.fileOrder, path)
	return f
}

// Build flushes every pending class into the Graph and returns it
// (protocols and enums were already placed by AddFile). Must be called once, after every input file has been
// added.
func (b *Builder) Build() *Graph {
	for _, name := range b.order {
		p, _ := b.registry.Get(name)
		if p.iface == nil && p.impl == nil && len(p.categories) == 0 {
			// A bare @class forward declaration with nothing else produces
			// no intention (spec scenario 1).
			continue
		}
		b.flush(p)
	}
	for _, path := range b.fileOrder {
		b.graph.Files = append(b.graph.Files, b.files[path])
	}
	return b.graph
}

func (b *Builder) flush(p *pendingType) {
	t := Type{
		Kind:       TypeClass,
		Name:       p.name,
		Superclass: "NSObject",
		Header:     Header{KnownAttributes: map[string]bool{}},
	}

	var path string
	switch {
	case p.impl != nil:
		// the .m wins over the .h: a header-only class emits from its own
		// path, but once an @implementation exists its file is authoritative
		// and the header is not re-emitted on its own (spec §4.4, scenario 7)
		path = swiftPathFor(p.implFile)
		t.Source = p.impl
		t.ParentFile = path
	case p.iface != nil:
		path = swiftPathFor(p.ifaceFile)
		t.Source = p.iface
		t.ParentFile = path
	default:
		path = swiftPathFor(p.categories[0].file)
		t.Source = p.categories[0].cat
		t.ParentFile = path
	}

	assumeNonnull := p.ifaceAssumeNonnull

	if p.iface != nil {
		if p.iface.Superclass != nil {
			t.Superclass = p.iface.Superclass.Name
		}
		if p.iface.Protocols != nil {
			t.Conformances = append(t.Conformances, p.iface.Protocols.Names()...)
		}
		for _, prop := range p.iface.Properties {
			t.Properties = append(t.Properties, propertyIntention(prop, assumeNonnull))
		}
		for _, ivar := range ivarsOf(p.iface.IVars) {
			promoteIVar(&t, ivar, assumeNonnull)
		}
		for _, m := range p.iface.Methods {
			addMember(&t, m, assumeNonnull)
		}
	}

	if p.impl != nil {
		for _, ivar := range ivarsOf(classImplIVars(p.impl)) {
			promoteIVar(&t, ivar, assumeNonnull)
		}
		applySynthesizeDynamic(&t, p.impl.PropertyImpls)
		for _, m := range p.impl.Methods {
			mergeOrAddMember(&t, m, assumeNonnull, b.diags)
		}
	}

	for _, hit := range p.categories {
		if hit.cat.CategoryName != "" {
			t.CategoryNames = append(t.CategoryNames, hit.cat.CategoryName)
		}
		if hit.cat.Protocols != nil {
			t.Conformances = append(t.Conformances, hit.cat.Protocols.Names()...)
		}
		for _, prop := range hit.cat.Properties {
			t.Properties = append(t.Properties, propertyIntention(prop, assumeNonnull))
		}
		for _, m := range hit.cat.Methods {
			mergeOrAddMember(&t, m, assumeNonnull, b.diags)
		}
	}

	ptr := b.graph.newType(t)
	file := b.fileFor(path)
	file.Types = append(file.Types, ptr)
}

// classImplIVars is a hook point: package objcast's ClassImplementation
// carries no ivar block in this grammar (ivars only appear after
// @interface), so this always returns nil. Kept named rather than
// inlined so a future ivar-in-@implementation extension has one call
// site to change.
func classImplIVars(*objcast.ClassImplementation) *objcast.IVarsList {
	return nil
}

// swiftPathFor derives the emitted Swift file's nominal output path
// from an input's name. Per spec §8 scenarios 6-7, the output path is
// the originating source name verbatim (the trailer reads
// "// End of file objc.m", not "objc.swift") -- the rewrite only
// changes a file's contents, not callers' notion of its path.
func swiftPathFor(name string) string {
	return name
}

func ivarsOf(list *objcast.IVarsList) []*objcast.IVarDecl {
	if list == nil {
		return nil
	}
	return list.IVars
}

func propertyIntention(p *objcast.PropertyDeclaration, assumeNonnull bool) *PropertyIntention {
	return &PropertyIntention{
		Header:  Header{Source: p, AccessLevel: AccessInternal, KnownAttributes: map[string]bool{}},
		Name:    p.Identifier.Name,
		Storage: storageFor(p, assumeNonnull),
	}
}

// storageFor derives ValueStorage from a property's attribute list, per
// spec §4.4's property -> storage mapping table: weak -> weak,
// unsafe_unretained/assign on an object type -> unowned(unsafe),
// otherwise strong; readonly narrows the setter to private(set).
func storageFor(p *objcast.PropertyDeclaration, assumeNonnull bool) ValueStorage {
	storage := ValueStorage{SwiftType: typemap.Swift(p.Type, assumeNonnull)}

	switch {
	case p.HasAttribute("weak"):
		storage.Ownership = OwnershipWeak
	case (p.HasAttribute("unsafe_unretained") || p.HasAttribute("assign")) && p.Type.IsObjectType():
		storage.Ownership = OwnershipUnownedUnsafe
	default:
		storage.Ownership = OwnershipStrong
	}

	if p.HasAttribute("readonly") {
		storage.HasExplicitSetterAccess = true
		storage.SetterAccessLevel = AccessPrivate
		storage.IsConstant = true
	}
	return storage
}

// promoteIVar turns a bare ivar into a stored property when no
// @property/@synthesize already claims its name, per spec §4.4 ("the
// intention builder ... promotes ivars to stored properties where
// appropriate").
func promoteIVar(t *Type, ivar *objcast.IVarDecl, assumeNonnull bool) {
	name := ivar.Identifier.Name
	trimmed := strings.TrimPrefix(name, "_")
	for _, p := range t.Properties {
		if p.Name == trimmed || p.BackingIVar == name {
			p.SourceIVarName = name
			return
		}
	}

	ownership := OwnershipStrong
	switch {
	case ivar.Type.HasSpecifier(objcast.SpecWeak):
		ownership = OwnershipWeak
	case ivar.Type.HasSpecifier(objcast.SpecUnsafeUnretained):
		ownership = OwnershipUnownedUnsafe
	}

	access := AccessInternal
	switch ivar.Visibility {
	case objcast.VisibilityPrivate:
		access = AccessPrivate
	case objcast.VisibilityProtected, objcast.VisibilityPackage:
		access = AccessInternal
	case objcast.VisibilityPublic:
		access = AccessPublic
	}

	t.Properties = append(t.Properties, &PropertyIntention{
		Header:         Header{Source: ivar, AccessLevel: access, KnownAttributes: map[string]bool{}},
		Name:           trimmed,
		Storage:        ValueStorage{SwiftType: typemap.Swift(ivar.Type, assumeNonnull), Ownership: ownership},
		SourceIVarName: name,
	})
}

// applySynthesizeDynamic binds @synthesize/@dynamic statements to the
// properties already collected from the interface (spec §4.4, scenario
// 4): @dynamic marks the property computed, suppressing stored backing.
func applySynthesizeDynamic(t *Type, impls []*objcast.PropertyImplementation) {
	for _, impl := range impls {
		for _, item := range impl.Items {
			for _, p := range t.Properties {
				if p.Name != item.Name {
					continue
				}
				switch impl.Kind {
				case objcast.PropertySynthesize:
					if item.IVar != "" {
						p.BackingIVar = item.IVar
					} else {
						p.BackingIVar = "_" + item.Name
					}
				case objcast.PropertyDynamic:
					p.IsComputed = true
				}
			}
		}
	}
}

func methodIntention(m *objcast.MethodSignature, assumeNonnull bool) *MethodIntention {
	returnType := ""
	if !typemap.IsVoid(m.ReturnType) {
		returnType = typemap.Swift(m.ReturnType, assumeNonnull)
	}
	return &MethodIntention{
		Header:     Header{Source: m, KnownAttributes: map[string]bool{}},
		IsStatic:   m.IsClassMethod,
		Selector:   selectorParams(m, assumeNonnull),
		ReturnType: returnType,
		BodyText:   m.BodyText,
		HasBody:    m.HasBody,
	}
}

func selectorParams(m *objcast.MethodSignature, assumeNonnull bool) []SelectorParam {
	out := make([]SelectorParam, len(m.Selector))
	for i, part := range m.Selector {
		swiftType := ""
		if part.ParamType != nil {
			swiftType = typemap.Swift(part.ParamType, assumeNonnull)
		}
		out[i] = SelectorParam{Keyword: part.Keyword, ParamName: part.ParamName, SwiftType: swiftType}
	}
	return out
}

// isInitSelector reports whether m should lower to an InitIntention
// rather than an ordinary MethodIntention: an instance method whose
// base selector keyword starts with "init" and returns instancetype,
// the conventional Objective-C initializer shape (spec §6.3:
// "instancetype (init return) -> Self (elided in printed Swift)").
func isInitSelector(m *objcast.MethodSignature) bool {
	if m.IsClassMethod || len(m.Selector) == 0 {
		return false
	}
	if m.ReturnType == nil || m.ReturnType.Kind != objcast.TypeInstancetype {
		return false
	}
	return strings.HasPrefix(m.Selector[0].Keyword, "init")
}

func initIntention(m *objcast.MethodSignature, assumeNonnull bool) *InitIntention {
	return &InitIntention{
		Header:   Header{Source: m, KnownAttributes: map[string]bool{}},
		Selector: selectorParams(m, assumeNonnull),
		BodyText: m.BodyText,
		HasBody:  m.HasBody,
	}
}

// addMember lowers one interface-declared method into the matching
// Initializers or Methods slice of t.
func addMember(t *Type, m *objcast.MethodSignature, assumeNonnull bool) {
	if isInitSelector(m) {
		t.Initializers = append(t.Initializers, initIntention(m, assumeNonnull))
		return
	}
	t.Methods = append(t.Methods, methodIntention(m, assumeNonnull))
}

// mergeOrAddMember attaches an implementation-only method body to the
// matching interface declaration by selector equality (spec §4.4:
// "matching ... by selector equality, treating selector as the ordered
// tuple of keyword parts"), or adds it as a new member with a warning
// when no interface declared it (spec §7: semantic mismatches during
// intention building are warnings, not errors).
func mergeOrAddMember(t *Type, m *objcast.MethodSignature, assumeNonnull bool, diags *reporter.Handler) {
	if isInitSelector(m) {
		for _, existing := range t.Initializers {
			if sig, ok := existing.Header.Source.(*objcast.MethodSignature); ok && sig.SelectorEquals(m) {
				existing.BodyText = m.BodyText
				existing.HasBody = m.HasBody
				return
			}
		}
		diags.Warnf(m.Range(), "initializer %s has an implementation but no matching interface declaration", m.SelectorName())
		t.Initializers = append(t.Initializers, initIntention(m, assumeNonnull))
		return
	}

	for _, existing := range t.Methods {
		if sig, ok := existing.Header.Source.(*objcast.MethodSignature); ok && sig.SelectorEquals(m) {
			existing.BodyText = m.BodyText
			existing.HasBody = m.HasBody
			return
		}
	}
	diags.Warnf(m.Range(), "method %s has an implementation but no matching interface declaration", m.SelectorName())
	t.Methods = append(t.Methods, methodIntention(m, assumeNonnull))
}

// addProtocol lowers an @protocol into a Protocol intention, splitting
// its methods into required/optional by the @required/@optional
// partition recorded on each objcast.ProtocolMethod (SPEC_FULL §3
// supplement).
func (b *Builder) addProtocol(decl *objcast.ProtocolDecl, fileName string, assumeNonnull bool) {
	proto := &Protocol{
		Header: Header{Source: decl, KnownAttributes: map[string]bool{}},
		Name:   decl.Identifier.Name,
	}
	if decl.Inherited != nil {
		proto.Inherited = decl.Inherited.Names()
	}
	for _, prop := range decl.Properties {
		proto.Properties = append(proto.Properties, propertyIntention(prop, assumeNonnull))
	}
	for _, pm := range decl.Methods {
		mi := methodIntention(pm.Method, assumeNonnull)
		mi.IsOptional = pm.Optional
		proto.Methods = append(proto.Methods, mi)
	}

	path := swiftPathFor(fileName)
	file := b.fileFor(path)
	file.Protocols = append(file.Protocols, proto)
}

// addEnum lowers an NS_ENUM/NS_OPTIONS typedef directly into a Type,
// bypassing the pendingType merge machinery since enums have no
// interface/implementation split to reconcile (SPEC_FULL §3 supplement).
func (b *Builder) addEnum(decl *objcast.EnumDecl, fileName string) {
	kind := TypeEnum
	if decl.IsOptions {
		kind = TypeOptionSet
	}
	path := swiftPathFor(fileName)
	t := Type{
		Header:      Header{Source: decl, ParentFile: path, KnownAttributes: map[string]bool{}},
		Kind:        kind,
		Name:        decl.Identifier.Name,
		IsOptionSet: decl.IsOptions,
	}
	for _, c := range decl.Cases {
		t.EnumCases = append(t.EnumCases, EnumCase{Name: c.Name, RawValue: c.RawValue})
	}

	ptr := b.graph.newType(t)
	file := b.fileFor(path)
	file.Types = append(file.Types, ptr)
}
