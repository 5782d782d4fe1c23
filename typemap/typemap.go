// Package typemap implements the Objective-C -> Swift type-mapping
// contract of spec §6.3: a pure function from objcast.ObjcType (plus
// ambient nullability state) to the Swift type spelling. The intention
// builder calls it to fill ValueStorage.SwiftType and parameter and
// return types; the emitter prints those strings as they are.
package typemap

import (
	"fmt"
	"strings"

	"github.com/arclight-dev/objcswift/objcast"
)

// wellKnown holds the partial table from spec §6.3. Nonnull NSString*
// and NSArray<T*>* are handled specially below because their Swift
// spelling depends on nullability and element type, not just the bare
// name.
var wellKnown = map[string]string{
	"BOOL":       "Bool",
	"NSInteger":  "Int",
	"NSUInteger": "UInt",
	"id":         "AnyObject",
	"int":        "Int32",
	"float":      "Float",
	"double":     "Double",
	"char":       "Int8",
	"CGFloat":    "CGFloat",
}

// Swift renders t as a Swift type spelling per spec §6.3. assumeNonnull
// reports whether t falls inside an NS_ASSUME_NONNULL_BEGIN/END region
// (SPEC_FULL §3); it only matters when t carries no explicit
// nullable/nonnull/_Nullable/_Nonnull annotation of its own.
func Swift(t *objcast.ObjcType, assumeNonnull bool) string {
	if t == nil {
		return ""
	}

	base, isObject := swiftBase(t)

	switch t.Nullability {
	case objcast.NullabilityNonnull:
		return base
	case objcast.NullabilityNullable:
		return base + "?"
	default:
		if !isObject {
			return base
		}
		if assumeNonnull {
			return base
		}
		// Nullability is genuinely unspecified: emit an implicitly
		// unwrapped optional, per spec §6.3's final sentence.
		return base + "!"
	}
}

// swiftBase renders the type ignoring nullability, and reports whether
// the result denotes an object reference (so Swift callers only apply
// optional-ness where spec §6.3 says the source had object semantics).
func swiftBase(t *objcast.ObjcType) (string, bool) {
	switch t.Kind {
	case objcast.TypeVoid:
		return "", false
	case objcast.TypeInstancetype:
		// "instancetype (init return) -> Self (elided in printed Swift)"
		// per spec §6.3: callers that need the elision handle it; here
		// we still report the nominal mapping for non-init contexts.
		return "Self", true
	case objcast.TypeID:
		if len(t.Protocols) == 1 {
			return t.Protocols[0], true
		}
		if len(t.Protocols) > 1 {
			return strings.Join(t.Protocols, " & "), true
		}
		return "AnyObject", true
	case objcast.TypeSpecified:
		return swiftBase(t.Inner)
	case objcast.TypePointer:
		return pointerBase(t)
	case objcast.TypeGeneric:
		return genericBase(t)
	case objcast.TypeStruct:
		// A bare struct name (no pointer) is always a value type in both
		// Objective-C and Swift; object semantics only start at TypePointer
		// (spec §6.3, matching objcast.ObjcType.IsObjectType's own rule).
		if swift, ok := wellKnown[t.Name]; ok {
			return swift, false
		}
		return t.Name, false
	default:
		return t.Name, true
	}
}

func pointerBase(t *objcast.ObjcType) (string, bool) {
	pointee := t.Pointee
	if pointee.Kind == objcast.TypeStruct && pointee.Name == "NSString" {
		return "String", true
	}
	base, _ := swiftBase(pointee)
	return base, true
}

func genericBase(t *objcast.ObjcType) (string, bool) {
	switch t.Name {
	case "NSArray":
		if len(t.Args) == 1 {
			elem, _ := swiftBase(t.Args[0])
			return fmt.Sprintf("[%s]", elem), true
		}
	case "NSDictionary":
		if len(t.Args) == 2 {
			k, _ := swiftBase(t.Args[0])
			v, _ := swiftBase(t.Args[1])
			return fmt.Sprintf("[%s: %s]", k, v), true
		}
	case "NSSet":
		if len(t.Args) == 1 {
			elem, _ := swiftBase(t.Args[0])
			return fmt.Sprintf("Set<%s>", elem), true
		}
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i], _ = swiftBase(a)
	}
	if len(args) == 0 {
		return t.Name, true
	}
	return fmt.Sprintf("%s<%s>", t.Name, strings.Join(args, ", ")), true
}

// IsVoid reports whether t maps to Swift's "no return type" (spec
// §6.3: "void (return) -> omitted").
func IsVoid(t *objcast.ObjcType) bool {
	return t == nil || t.Kind == objcast.TypeVoid
}
