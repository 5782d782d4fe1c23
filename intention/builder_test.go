package intention_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/intention"
	"github.com/arclight-dev/objcswift/parser"
	"github.com/arclight-dev/objcswift/reporter"
)

func parseFile(t *testing.T, name, src string) intention.ParsedFile {
	t.Helper()
	diags := reporter.NewHandler(name, []byte(src))
	p := parser.New(name, []byte(src), diags)
	root := p.ParseMain()
	require.False(t, diags.HasErrors(), "unexpected parse errors in %s: %v", name, diags.Errors())
	return intention.ParsedFile{Name: name, Root: root, AssumeNonnull: p.AssumeNonnullActive()}
}

func buildGraph(t *testing.T, files ...intention.ParsedFile) *intention.Graph {
	t.Helper()
	diags := reporter.NewHandler("<merge>", nil)
	b := intention.NewBuilder(diags)
	for _, f := range files {
		b.AddFile(f)
	}
	return b.Build()
}

// Scenario 1: a bare forward declaration produces no intention.
func TestBuilder_ForwardDeclarationOnlyProducesNoType(t *testing.T) {
	f := parseFile(t, "fwd.h", "@class Helper;\n")
	g := buildGraph(t, f)
	require.Empty(t, g.Files)
}

// Scenario 2: an empty interface still produces a Type with the default
// NSObject superclass.
func TestBuilder_EmptyInterfaceProducesBareClass(t *testing.T) {
	f := parseFile(t, "empty.h", "@interface Empty\n@end\n")
	g := buildGraph(t, f)
	require.Len(t, g.Files, 1)
	require.Len(t, g.Files[0].Types, 1)

	typ := g.Type(g.Files[0].Types[0])
	require.Equal(t, "Empty", typ.Name)
	require.Equal(t, "NSObject", typ.Superclass)
	require.Empty(t, typ.Properties)
	require.Empty(t, typ.Methods)
}

// Scenario: a bare ivar with no matching @property is promoted to a
// stored property, with ownership inferred from its specifier.
func TestBuilder_PromotesWeakIVarToProperty(t *testing.T) {
	f := parseFile(t, "ivars.h", "@interface Holder {\n  __weak id _delegate;\n}\n@end\n")
	g := buildGraph(t, f)
	typ := g.Type(g.Files[0].Types[0])

	require.Len(t, typ.Properties, 1)
	prop := typ.Properties[0]
	require.Equal(t, "delegate", prop.Name)
	require.Equal(t, intention.OwnershipWeak, prop.Storage.Ownership)
	require.Equal(t, "_delegate", prop.SourceIVarName)
}

// Scenario 4: @synthesize binds a property to an explicit backing ivar,
// and @dynamic marks a property computed.
func TestBuilder_SynthesizeAndDynamicBindProperties(t *testing.T) {
	iface := parseFile(t, "props.h", "@interface Props\n@property (nonatomic, strong) id thing;\n@property (nonatomic) id other;\n@end\n")
	impl := parseFile(t, "props.m", "@implementation Props\n@synthesize thing = _storedThing;\n@dynamic other;\n@end\n")
	g := buildGraph(t, iface, impl)

	require.Len(t, g.Files, 1)
	require.Equal(t, "props.m", g.Files[0].Path)

	typ := g.Type(g.Files[0].Types[0])
	var thing, other *intention.PropertyIntention
	for _, p := range typ.Properties {
		switch p.Name {
		case "thing":
			thing = p
		case "other":
			other = p
		}
	}
	require.NotNil(t, thing)
	require.Equal(t, "_storedThing", thing.BackingIVar)
	require.NotNil(t, other)
	require.True(t, other.IsComputed)
}

// Scenario 7: matching .h/.m declarations collapse into one Type, keyed
// on the implementation's file path, with the method body attached by
// selector equality.
func TestBuilder_HeaderAndImplementationMergeBySelector(t *testing.T) {
	iface := parseFile(t, "objc.h", "@interface MyClass\n- (void)myMethod;\n@end\n")
	impl := parseFile(t, "objc.m", "@implementation MyClass\n- (void)myMethod {\n  doThing();\n}\n@end\n")
	g := buildGraph(t, iface, impl)

	require.Len(t, g.Files, 1)
	require.Equal(t, "objc.m", g.Files[0].Path)
	require.Len(t, g.Files[0].Types, 1)

	typ := g.Type(g.Files[0].Types[0])
	require.Equal(t, "MyClass", typ.Name)
	require.Len(t, typ.Methods, 1)
	require.True(t, typ.Methods[0].HasBody)
	require.Contains(t, typ.Methods[0].BodyText, "doThing()")
}

// An init-shaped method (instance method, instancetype return, "init"
// prefix) lowers to an Initializer rather than an ordinary method.
func TestBuilder_InitSelectorLowersToInitializer(t *testing.T) {
	f := parseFile(t, "init.h", "@interface Thing\n- (instancetype)initWithValue:(NSInteger)value;\n@end\n")
	g := buildGraph(t, f)
	typ := g.Type(g.Files[0].Types[0])

	require.Empty(t, typ.Methods)
	require.Len(t, typ.Initializers, 1)
	require.Equal(t, "initWithValue", typ.Initializers[0].Selector[0].Keyword)
}

// An implementation-only method with no interface declaration is still
// added, with a warning recorded rather than an error (spec: semantic
// mismatches during intention building are warnings).
func TestBuilder_ImplementationOnlyMethodWarns(t *testing.T) {
	iface := parseFile(t, "objc.h", "@interface MyClass\n@end\n")
	impl := parseFile(t, "objc.m", "@implementation MyClass\n- (void)extra {\n}\n@end\n")

	diags := reporter.NewHandler("<merge>", nil)
	b := intention.NewBuilder(diags)
	b.AddFile(iface)
	b.AddFile(impl)
	g := b.Build()

	require.False(t, diags.HasErrors())
	require.NotEmpty(t, diags.Warnings())

	typ := g.Type(g.Files[0].Types[0])
	require.Len(t, typ.Methods, 1)
	require.Equal(t, "extra", typ.Methods[0].SwiftName())
}

// A superclass and a protocol conformance list both survive the merge
// unchanged, compared structurally rather than field-by-field.
func TestBuilder_SuperclassAndConformancesSurviveMerge(t *testing.T) {
	f := parseFile(t, "objc.h", "@interface MyClass : NSView <Copying, NSCoding>\n@end\n")
	g := buildGraph(t, f)
	typ := g.Type(g.Files[0].Types[0])

	require.Equal(t, "NSView", typ.Superclass)
	if diff := cmp.Diff([]string{"Copying", "NSCoding"}, typ.Conformances); diff != "" {
		t.Errorf("conformances mismatch (-want +got):\n%s", diff)
	}
}

// An NS_ENUM typedef lowers to a Type of kind TypeEnum with its cases
// carried verbatim.
func TestBuilder_NSEnumLowersToEnumType(t *testing.T) {
	f := parseFile(t, "direction.h", "typedef NS_ENUM(NSInteger, Direction) {\n  DirectionUp,\n  DirectionDown = 5,\n};\n")
	g := buildGraph(t, f)
	require.Len(t, g.Files, 1)
	require.Len(t, g.Files[0].Types, 1)

	typ := g.Type(g.Files[0].Types[0])
	require.Equal(t, intention.TypeEnum, typ.Kind)
	require.Equal(t, "Direction", typ.Name)
	require.False(t, typ.IsOptionSet)
	require.Equal(t, []intention.EnumCase{
		{Name: "DirectionUp"},
		{Name: "DirectionDown", RawValue: "5"},
	}, typ.EnumCases)
}

// An NS_OPTIONS typedef lowers the same way but is marked as an option
// set, which the emitter renders as a Swift OptionSet struct.
func TestBuilder_NSOptionsLowersToOptionSetType(t *testing.T) {
	f := parseFile(t, "flags.h", "typedef NS_OPTIONS(NSUInteger, Flags) {\n  FlagsNone = 0,\n  FlagsFoo = 1,\n};\n")
	g := buildGraph(t, f)
	typ := g.Type(g.Files[0].Types[0])

	require.Equal(t, intention.TypeOptionSet, typ.Kind)
	require.True(t, typ.IsOptionSet)
	require.Len(t, typ.EnumCases, 2)
}

// A category with no implementation folds its methods and name into the
// same Type as the interface.
func TestBuilder_CategoryFoldsIntoInterfaceType(t *testing.T) {
	iface := parseFile(t, "objc.h", "@interface MyClass\n@end\n")
	cat := parseFile(t, "objc+Extras.h", "@interface MyClass (Extras)\n- (void)extra;\n@end\n")
	g := buildGraph(t, iface, cat)

	require.Len(t, g.Files, 1)
	typ := g.Type(g.Files[0].Types[0])
	require.Equal(t, []string{"Extras"}, typ.CategoryNames)
	require.Len(t, typ.Methods, 1)
}
