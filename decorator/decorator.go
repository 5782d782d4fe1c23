// Package decorator implements the Swift modifier chain of spec §4.5: a
// fixed, ordered list of pure functions, each contributing zero or more
// modifier tokens to a declaration. Registration order is itself part
// of the specification, since it determines the order modifiers are
// printed in (spec §9: "the registration order at startup is part of
// the specification").
package decorator

import "github.com/arclight-dev/objcswift/intention"

// Modifier is one rendered token, e.g. "private", "static", "weak".
type Modifier string

// Decorator is a pure function contributing zero or more modifier
// tokens for one declaration. Implementations never mutate el.
type Decorator func(el DecoratableElement) []Modifier

// DecoratableElement is either a member intention or a local variable
// declaration (spec §4.5). The emitter only needs the handful of facts
// below to run every decorator in Chain.
type DecoratableElement interface {
	AccessLevel() intention.AccessLevel
	IsStatic() bool
	IsOverride() bool
	IsConvenience() bool
	IsMutating() bool
	IsProtocolOptional() bool
	Setter() (level intention.AccessLevel, has bool)
	Ownership() (intention.Ownership, bool)
}

// Chain is the default decorator order from spec §4.5: access level,
// setter access, protocol optional, static, override, convenience,
// mutating, ownership. This slice's order is the specification; do not
// reorder it without updating spec §4.5.
var Chain = []Decorator{
	accessLevel,
	setterAccess,
	protocolOptional,
	staticModifier,
	override,
	convenience,
	mutating,
	ownership,
}

// Modifiers runs every decorator in Chain against el and concatenates
// their results in registration order.
func Modifiers(el DecoratableElement) []Modifier {
	var out []Modifier
	for _, d := range Chain {
		out = append(out, d(el)...)
	}
	return out
}

// accessLevel omits `internal`, Swift's implicit default (spec §4.5
// item 1).
func accessLevel(el DecoratableElement) []Modifier {
	if el.AccessLevel() == intention.AccessInternal {
		return nil
	}
	return []Modifier{Modifier(el.AccessLevel().String())}
}

// setterAccess renders `private(set)`-style narrowing whenever the
// element declares an explicit setter access level (spec §4.5 item 2);
// it does not compare that level with the element's own.
func setterAccess(el DecoratableElement) []Modifier {
	level, has := el.Setter()
	if !has {
		return nil
	}
	return []Modifier{Modifier(level.String() + "(set)")}
}

// protocolOptional renders `optional` for a protocol member partitioned
// into the @optional section (spec §4.5 item 3).
func protocolOptional(el DecoratableElement) []Modifier {
	if !el.IsProtocolOptional() {
		return nil
	}
	return []Modifier{"optional"}
}

func staticModifier(el DecoratableElement) []Modifier {
	if !el.IsStatic() {
		return nil
	}
	return []Modifier{"static"}
}

func override(el DecoratableElement) []Modifier {
	if !el.IsOverride() {
		return nil
	}
	return []Modifier{"override"}
}

func convenience(el DecoratableElement) []Modifier {
	if !el.IsConvenience() {
		return nil
	}
	return []Modifier{"convenience"}
}

func mutating(el DecoratableElement) []Modifier {
	if !el.IsMutating() {
		return nil
	}
	return []Modifier{"mutating"}
}

// ownership renders the trailing ownership modifier; `strong` is
// Swift's default and emits nothing (spec §4.5 item 8).
func ownership(el DecoratableElement) []Modifier {
	o, has := el.Ownership()
	if !has {
		return nil
	}
	switch o {
	case intention.OwnershipWeak:
		return []Modifier{"weak"}
	case intention.OwnershipUnownedSafe:
		return []Modifier{"unowned(safe)"}
	case intention.OwnershipUnownedUnsafe:
		return []Modifier{"unowned(unsafe)"}
	default:
		return nil
	}
}
