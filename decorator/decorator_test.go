package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/decorator"
	"github.com/arclight-dev/objcswift/intention"
)

func TestModifiers_PropertyWeakReadonlyPublic(t *testing.T) {
	prop := &intention.PropertyIntention{
		Header: intention.Header{AccessLevel: intention.AccessPublic},
		Storage: intention.ValueStorage{
			Ownership:               intention.OwnershipWeak,
			HasExplicitSetterAccess: true,
			SetterAccessLevel:       intention.AccessPrivate,
		},
	}
	mods := decorator.Modifiers(decorator.PropertyElement{PropertyIntention: prop})
	require.Equal(t, []decorator.Modifier{"public", "private(set)", "weak"}, mods)
}

func TestModifiers_PropertyStrongOwnershipEmitsNothing(t *testing.T) {
	prop := &intention.PropertyIntention{
		Header:  intention.Header{AccessLevel: intention.AccessInternal},
		Storage: intention.ValueStorage{Ownership: intention.OwnershipStrong},
	}
	mods := decorator.Modifiers(decorator.PropertyElement{PropertyIntention: prop})
	require.Empty(t, mods)
}

func TestModifiers_ComputedPropertyHasNoOwnershipModifier(t *testing.T) {
	prop := &intention.PropertyIntention{
		Header:     intention.Header{AccessLevel: intention.AccessInternal},
		IsComputed: true,
		Storage:    intention.ValueStorage{Ownership: intention.OwnershipWeak},
	}
	mods := decorator.Modifiers(decorator.PropertyElement{PropertyIntention: prop})
	require.Empty(t, mods)
}

func TestModifiers_StaticOverrideMethodOrder(t *testing.T) {
	m := &intention.MethodIntention{
		Header:     intention.Header{AccessLevel: intention.AccessInternal},
		IsStatic:   true,
		IsOverride: true,
	}
	mods := decorator.Modifiers(decorator.MethodElement{MethodIntention: m})
	require.Equal(t, []decorator.Modifier{"static", "override"}, mods)
}

func TestModifiers_ProtocolOptionalMethod(t *testing.T) {
	m := &intention.MethodIntention{
		Header:     intention.Header{AccessLevel: intention.AccessInternal},
		IsOptional: true,
	}
	mods := decorator.Modifiers(decorator.MethodElement{MethodIntention: m})
	require.Equal(t, []decorator.Modifier{"optional"}, mods)
}

func TestModifiers_ConvenienceInitializer(t *testing.T) {
	i := &intention.InitIntention{
		Header:        intention.Header{AccessLevel: intention.AccessInternal},
		IsConvenience: true,
	}
	mods := decorator.Modifiers(decorator.InitElement{InitIntention: i})
	require.Equal(t, []decorator.Modifier{"convenience"}, mods)
}

func TestModifiers_RegistrationOrderIsFixed(t *testing.T) {
	require.Len(t, decorator.Chain, 8)
}
