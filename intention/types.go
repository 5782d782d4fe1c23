// Package intention defines the language-neutral intermediate
// representation between package parser and package emitter (spec §3,
// §4.4): a graph of File -> (Type | GlobalFn | GlobalVar | Typealias |
// Protocol) intentions, built by merging every parsed file's concrete
// tree and resolving symbols across files.
package intention

import (
	"github.com/arclight-dev/objcswift/internal/arena"
	"github.com/arclight-dev/objcswift/objcast"
)

// AccessLevel is a Swift access level. Default is AccessInternal (spec
// §4.4). AccessOpen exists per spec §9's Open Question: "the source
// exposes an open access level but ... did not yet support the
// keyword. An implementer should emit the literal token open" -- this
// port does the same.
type AccessLevel int

const (
	AccessInternal AccessLevel = iota
	AccessPrivate
	AccessFilePrivate
	AccessPublic
	AccessOpen
)

func (a AccessLevel) String() string {
	switch a {
	case AccessInternal:
		return "internal"
	case AccessPrivate:
		return "private"
	case AccessFilePrivate:
		return "fileprivate"
	case AccessPublic:
		return "public"
	case AccessOpen:
		return "open"
	default:
		return "internal"
	}
}

// Ownership is one of strong, weak, unownedSafe, unownedUnsafe (spec
// GLOSSARY, §3).
type Ownership int

const (
	OwnershipStrong Ownership = iota
	OwnershipWeak
	OwnershipUnownedSafe
	OwnershipUnownedUnsafe
)

// ValueStorage is `{type, ownership, isConstant}` (spec §3).
type ValueStorage struct {
	SwiftType         string
	Ownership         Ownership
	IsConstant        bool
	SetterAccessLevel AccessLevel
	HasExplicitSetterAccess bool
}

// Header is the common record every FromSourceIntention carries (spec
// §9: "a tagged sum with a common header record (source, parent,
// accessLevel, knownAttributes)"). Parent is a weak back-reference: the
// file path of the enclosing File intention, not a pointer, so the
// intention graph cannot contain ownership cycles by construction (spec
// §9's arena/index recommendation, applied here as a plain string key
// into the Graph.Files registry rather than a pointer, since File itself
// never needs a matching forward edge beyond "which types live here").
type Header struct {
	Source         objcast.Node
	ParentFile     string
	AccessLevel    AccessLevel
	KnownAttributes map[string]bool
}

func (h Header) HasAttribute(name string) bool {
	return h.KnownAttributes[name]
}

// PropertyIntention is a stored or computed property member (spec §3's
// "MemberGenerationIntention" family, specialized).
type PropertyIntention struct {
	Header
	Name              string
	Storage           ValueStorage
	IsComputed        bool // true for @dynamic: no backing storage generated
	BackingIVar       string
	SourceIVarName    string // the interface-declared backing ivar, if promoted
}

// SelectorParam mirrors objcast.SelectorPart, carrying the resolved
// Swift parameter type name instead of the raw ObjcType.
type SelectorParam struct {
	Keyword   string
	ParamName string
	SwiftType string
}

// MethodIntention is a method member.
type MethodIntention struct {
	Header
	IsStatic      bool // class method ('+')
	IsOverride    bool
	Selector      []SelectorParam
	ReturnType    string // empty/omitted for Swift "no return type" (void)
	BodyText      string
	HasBody       bool
	IsOptional    bool // protocol-body @optional partition (SPEC_FULL §3)
	MutatingValue bool // struct-style intentions only; unused for NSObject subclasses but kept for completeness
}

// SwiftName returns the Swift function's base name: the first selector
// keyword. Argument labels are not part of it; the emitter renders one
// label per selector part, the first part included.
func (m *MethodIntention) SwiftName() string {
	if len(m.Selector) == 0 {
		return ""
	}
	return m.Selector[0].Keyword
}

// InitIntention is an initializer member, distinguished from an ordinary
// method because of the `convenience` decorator (spec §4.5).
type InitIntention struct {
	Header
	IsConvenience bool
	Selector      []SelectorParam
	BodyText      string
	HasBody       bool
}

// EnumCase is one case of an NS_ENUM/NS_OPTIONS-derived enum (SPEC_FULL
// §3 supplement).
type EnumCase struct {
	Name     string
	RawValue string // literal text, empty if implicit
}

// TypeKind distinguishes the handful of Swift declaration shapes a
// Type intention can describe.
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeEnum
	TypeOptionSet
)

// Type is the central intention: a class/enum/option-set to be
// generated, produced by merging a ClassInterface with its matching
// ClassImplementation (and any categories), per the pairing rule (spec
// §4.4).
type Type struct {
	Header
	Kind          TypeKind
	Name          string
	Superclass    string // "NSObject" default for plain classes; empty for enums
	Conformances  []string
	Properties    []*PropertyIntention
	Methods       []*MethodIntention
	Initializers  []*InitIntention
	EnumCases     []EnumCase
	IsOptionSet   bool
	CategoryNames []string // every category folded into this type (SPEC_FULL §3)
}

// GlobalFn is a top-level C function lowered to a free Swift function.
type GlobalFn struct {
	Header
	Name       string
	ReturnType string
	Params     []SelectorParam
}

// GlobalVar is a top-level C global lowered to a free Swift var/let.
type GlobalVar struct {
	Header
	Name    string
	Storage ValueStorage
}

// Typealias is a `typedef` lowered to a Swift `typealias`.
type Typealias struct {
	Header
	Name   string
	Target string
}

// Protocol is an @protocol lowered to a Swift protocol.
type Protocol struct {
	Header
	Name       string
	Inherited  []string
	Properties []*PropertyIntention
	Methods    []*MethodIntention
}

// File is the root of one output unit: every intention that will be
// emitted into a single Swift file (spec §3: "File -> (Type | GlobalFn |
// GlobalVar | Typealias | Protocol)*").
type File struct {
	// Path is the Swift output path this file's intentions are destined
	// for, derived from the originating .m name if one exists, or the
	// .h name otherwise (spec §4.4 "Header-only classes").
	Path string

	Types      []arena.Pointer[Type]
	Protocols  []*Protocol
	GlobalFns  []*GlobalFn
	GlobalVars []*GlobalVar
	Typealiases []*Typealias
}

// Graph is the complete intention graph for one rewrite (spec §3).
// Types live in an arena so that the File.Types slices hold small
// integer pointers rather than raw *Type (spec §9's arena/index
// recommendation). The ordered, class-name-keyed lookup the
// file-pairing merge needs lives in Builder, not here.
type Graph struct {
	arena *arena.Arena[Type]
	Files []*File
}

func NewGraph() *Graph {
	return &Graph{arena: &arena.Arena[Type]{}}
}

func (g *Graph) newType(t Type) arena.Pointer[Type] {
	return g.arena.New(t)
}

// Type dereferences a Type pointer previously returned by this Graph.
func (g *Graph) Type(p arena.Pointer[Type]) *Type {
	return p.In(g.arena)
}
