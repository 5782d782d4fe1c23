package objcast

import "github.com/arclight-dev/objcswift/token"

// TypeSpecifier is one of the prefix keywords that can decorate an
// ObjcType (spec §3: "__weak | __strong | __unsafe_unretained | const |
// volatile").
type TypeSpecifier string

const (
	SpecWeak             TypeSpecifier = "__weak"
	SpecStrong           TypeSpecifier = "__strong"
	SpecUnsafeUnretained TypeSpecifier = "__unsafe_unretained"
	SpecConst            TypeSpecifier = "const"
	SpecVolatile         TypeSpecifier = "volatile"
)

// ObjcType is the sum type from spec §3: struct(name), id(protocols),
// pointer(ObjcType), generic(name, [ObjcType]), specified(specifiers,
// ObjcType). It is represented here as a tagged union node rather than
// an interface hierarchy, per spec §9 ("Reimplement as a tagged sum").
type ObjcType struct {
	base

	Kind TypeKind

	// Struct / generic name, or the identifier a pointer points to the
	// struct type of.
	Name string

	// Protocols qualifying an `id<...>` type (Kind == TypeID).
	Protocols []string

	// Pointee for Kind == TypePointer.
	Pointee *ObjcType

	// Type arguments for Kind == TypeGeneric, e.g. NSArray<NSString*>.
	Args []*ObjcType

	// Specifiers and inner type for Kind == TypeSpecified.
	Specifiers []TypeSpecifier
	Inner      *ObjcType

	// Nullability as resolved from NS_ASSUME_NONNULL region state,
	// nullable/nonnull attributes, and _Nullable/_Nonnull specifiers
	// (spec §6.3). Unspecified means none of the three applied.
	Nullability Nullability
}

type TypeKind int

const (
	TypeStruct TypeKind = iota
	TypeID
	TypePointer
	TypeGeneric
	TypeSpecified
	TypeVoid
	TypeInstancetype
)

type Nullability int

const (
	NullabilityUnspecified Nullability = iota
	NullabilityNonnull
	NullabilityNullable
)

func NewStructType(rng token.Range, name string) *ObjcType {
	return &ObjcType{base: base{rng: rng}, Kind: TypeStruct, Name: name}
}

func NewIDType(rng token.Range, protocols []string) *ObjcType {
	return &ObjcType{base: base{rng: rng}, Kind: TypeID, Protocols: protocols}
}

func NewPointerType(rng token.Range, pointee *ObjcType) *ObjcType {
	n := &ObjcType{base: base{rng: rng}, Kind: TypePointer, Pointee: pointee}
	adopt(&n.base, n, pointee)
	return n
}

func NewGenericType(rng token.Range, name string, args []*ObjcType) *ObjcType {
	n := &ObjcType{base: base{rng: rng}, Kind: TypeGeneric, Name: name, Args: args}
	for _, a := range args {
		adopt(&n.base, n, a)
	}
	return n
}

func NewSpecifiedType(rng token.Range, specs []TypeSpecifier, inner *ObjcType) *ObjcType {
	n := &ObjcType{base: base{rng: rng}, Kind: TypeSpecified, Specifiers: specs, Inner: inner}
	adopt(&n.base, n, inner)
	return n
}

func NewVoidType(rng token.Range) *ObjcType {
	return &ObjcType{base: base{rng: rng}, Kind: TypeVoid}
}

func NewInstancetypeType(rng token.Range) *ObjcType {
	return &ObjcType{base: base{rng: rng}, Kind: TypeInstancetype}
}

// HasSpecifier reports whether spec decorates this type, looking through
// a TypeSpecified wrapper only (specifiers never nest).
func (t *ObjcType) HasSpecifier(spec TypeSpecifier) bool {
	if t == nil || t.Kind != TypeSpecified {
		return false
	}
	for _, s := range t.Specifiers {
		if s == spec {
			return true
		}
	}
	return false
}

// IsObjectType reports whether the type denotes an Objective-C object
// reference (a pointer to a struct, an id, or a specified wrapper around
// one) as opposed to a scalar like NSInteger or BOOL. Ownership inference
// (spec §4.4) only applies to object types.
func (t *ObjcType) IsObjectType() bool {
	switch t.Kind {
	case TypePointer, TypeID, TypeInstancetype:
		return true
	case TypeSpecified:
		return t.Inner.IsObjectType()
	default:
		return false
	}
}
