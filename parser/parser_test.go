package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/parser"
	"github.com/arclight-dev/objcswift/reporter"
)

func newParser(t *testing.T, src string) (*parser.Parser, *reporter.Handler) {
	t.Helper()
	diags := reporter.NewHandler("t.h", []byte(src))
	return parser.New("t.h", []byte(src), diags), diags
}

func TestParseMain_ForwardDeclarationAndInterface(t *testing.T) {
	p, diags := newParser(t, "@class Helper;\n@interface MyClass : NSObject <Copying>\n- (void)run;\n@end\n")
	root := p.ParseMain()
	require.False(t, diags.HasErrors())
	require.Len(t, root.Children(), 2)

	fwd, ok := root.Children()[0].(*objcast.ClassForwardDecl)
	require.True(t, ok)
	require.NotNil(t, fwd)

	iface, ok := root.Children()[1].(*objcast.ClassInterface)
	require.True(t, ok)
	require.Equal(t, "MyClass", iface.Identifier.Name)
	require.NotNil(t, iface.Superclass)
	require.Equal(t, "NSObject", iface.Superclass.Name)
	require.Equal(t, []string{"Copying"}, iface.Protocols.Names())
	require.Len(t, iface.Methods, 1)
	require.Equal(t, "run", iface.Methods[0].SelectorName())
}

func TestParseMain_ImplementationWithBody(t *testing.T) {
	p, diags := newParser(t, "@implementation MyClass\n- (void)run {\n  doSomething();\n}\n@end\n")
	root := p.ParseMain()
	require.False(t, diags.HasErrors())

	impl, ok := root.Children()[0].(*objcast.ClassImplementation)
	require.True(t, ok)
	require.Equal(t, "MyClass", impl.Identifier.Name)
	require.Len(t, impl.Methods, 1)
	require.True(t, impl.Methods[0].HasBody)
	require.Contains(t, impl.Methods[0].BodyText, "doSomething()")
}

func TestParseMain_RecoversFromUnexpectedTopLevelToken(t *testing.T) {
	p, diags := newParser(t, "$$$ garbage\n@interface MyClass\n@end\n")
	root := p.ParseMain()

	require.True(t, diags.HasErrors())
	require.True(t, diags.Recovered())

	var sawInterface bool
	for _, child := range root.Children() {
		if _, ok := child.(*objcast.ClassInterface); ok {
			sawInterface = true
		}
	}
	require.True(t, sawInterface, "parser should still recover the valid interface after garbage input")
}

func TestParseMain_AssumeNonnullRegionTracking(t *testing.T) {
	p, diags := newParser(t, "NS_ASSUME_NONNULL_BEGIN\n@interface MyClass\n@end\n")
	p.ParseMain()
	require.False(t, diags.HasErrors())
	require.True(t, p.AssumeNonnullActive())

	p2, _ := newParser(t, "NS_ASSUME_NONNULL_BEGIN\n@interface MyClass\n@end\nNS_ASSUME_NONNULL_END\n")
	p2.ParseMain()
	require.False(t, p2.AssumeNonnullActive())
}

func TestParseProtocolReferenceList_StrayCommaRecovers(t *testing.T) {
	p, diags := newParser(t, "<A, , >")
	list := p.ParseProtocolReferenceList()
	require.True(t, diags.HasErrors())
	require.NotNil(t, list)
	require.Equal(t, []string{"A"}, list.Names())
}

func TestParseProtocolReferenceList_Empty(t *testing.T) {
	p, diags := newParser(t, "<>")
	list := p.ParseProtocolReferenceList()
	require.True(t, diags.HasErrors())
	require.Empty(t, list.Names())
}

func TestParseClassCategoryNode_Named(t *testing.T) {
	p, diags := newParser(t, "@interface MyClass (Extras)\n- (void)extra;\n@end\n")
	cat := p.ParseClassCategoryNode()
	require.False(t, diags.HasErrors())
	require.NotNil(t, cat)
	require.Equal(t, "MyClass", cat.ClassName.Name)
}

func TestParseMain_NSEnumWithExplicitValues(t *testing.T) {
	p, diags := newParser(t, "typedef NS_ENUM(NSInteger, Direction) {\n  DirectionUp,\n  DirectionDown = 5,\n};\n")
	root := p.ParseMain()
	require.False(t, diags.HasErrors())
	require.Len(t, root.Children(), 1)

	decl, ok := root.Children()[0].(*objcast.EnumDecl)
	require.True(t, ok)
	require.Equal(t, "Direction", decl.Identifier.Name)
	require.False(t, decl.IsOptions)
	require.Equal(t, []objcast.EnumCaseDecl{
		{Name: "DirectionUp"},
		{Name: "DirectionDown", RawValue: "5"},
	}, decl.Cases)
}

func TestParseMain_NSOptionsMarksOptionSet(t *testing.T) {
	p, diags := newParser(t, "typedef NS_OPTIONS(NSUInteger, Flags) {\n  FlagsNone = 0,\n  FlagsFoo = 1,\n};\n")
	root := p.ParseMain()
	require.False(t, diags.HasErrors())

	decl, ok := root.Children()[0].(*objcast.EnumDecl)
	require.True(t, ok)
	require.True(t, decl.IsOptions)
	require.Len(t, decl.Cases, 2)
}
