package objcast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/objcast"
	"github.com/arclight-dev/objcswift/token"
)

func TestAdopt_SetsParentAndExpandsRange(t *testing.T) {
	root := objcast.NewGlobalContextNode()
	id := objcast.NewIdentifierNode(token.Token{Kind: token.Identifier, Lexeme: "Foo", Range: token.Range{Start: 10, End: 13}})
	root.Add(id)

	require.Equal(t, objcast.Node(root), id.Parent())
	require.Equal(t, []objcast.Node{id}, root.Children())
	require.Equal(t, token.Range{Start: 10, End: 13}, root.Range())
}

func TestProtocolReferenceList_NamesInSourceOrder(t *testing.T) {
	open := objcast.NewRuneNode(token.Token{Kind: token.Less, Range: token.Range{Start: 0, End: 1}})
	list := objcast.NewProtocolReferenceList(open)
	list.AddProtocol(objcast.NewIdentifierNode(token.Token{Kind: token.Identifier, Lexeme: "A", Range: token.Range{Start: 1, End: 2}}))
	list.AddProtocol(objcast.NewIdentifierNode(token.Token{Kind: token.Identifier, Lexeme: "B", Range: token.Range{Start: 4, End: 5}}))
	list.SetClose(objcast.NewRuneNode(token.Token{Kind: token.Greater, Range: token.Range{Start: 5, End: 6}}))

	require.Equal(t, []string{"A", "B"}, list.Names())
	require.Equal(t, token.Range{Start: 0, End: 6}, list.Range())
}

func TestMethodSignature_SelectorNameAndBareName(t *testing.T) {
	bare := objcast.NewMethodSignature(false, objcast.NewVoidType(token.Range{}), []objcast.SelectorPart{
		{Keyword: "myMethod"},
	})
	name, ok := bare.BareName()
	require.True(t, ok)
	require.Equal(t, "myMethod", name)
	require.Equal(t, "myMethod", bare.SelectorName())

	keyworded := objcast.NewMethodSignature(false, objcast.NewVoidType(token.Range{}), []objcast.SelectorPart{
		{Keyword: "initWithThing", ParamType: objcast.NewStructType(token.Range{}, "NSObject"), ParamName: "thing"},
	})
	_, ok = keyworded.BareName()
	require.False(t, ok)
	require.Equal(t, "initWithThing:", keyworded.SelectorName())
}

func TestMethodSignature_SelectorEqualsIgnoresParamNamesAndTypes(t *testing.T) {
	a := objcast.NewMethodSignature(false, objcast.NewVoidType(token.Range{}), []objcast.SelectorPart{
		{Keyword: "doWith", ParamType: objcast.NewStructType(token.Range{}, "NSString"), ParamName: "x"},
	})
	b := objcast.NewMethodSignature(false, objcast.NewVoidType(token.Range{}), []objcast.SelectorPart{
		{Keyword: "doWith", ParamType: objcast.NewStructType(token.Range{}, "NSObject"), ParamName: "y"},
	})
	require.True(t, a.SelectorEquals(b))

	c := objcast.NewMethodSignature(false, objcast.NewVoidType(token.Range{}), []objcast.SelectorPart{
		{Keyword: "doWithOther", ParamType: objcast.NewStructType(token.Range{}, "NSString"), ParamName: "x"},
	})
	require.False(t, a.SelectorEquals(c))
}

func TestObjcType_IsObjectType(t *testing.T) {
	ptr := objcast.NewPointerType(token.Range{}, objcast.NewStructType(token.Range{}, "NSObject"))
	require.True(t, ptr.IsObjectType())

	specified := objcast.NewSpecifiedType(token.Range{}, []objcast.TypeSpecifier{objcast.SpecWeak}, ptr)
	require.True(t, specified.IsObjectType())
	require.True(t, specified.HasSpecifier(objcast.SpecWeak))
	require.False(t, specified.HasSpecifier(objcast.SpecStrong))

	scalar := objcast.NewStructType(token.Range{}, "NSInteger")
	require.False(t, scalar.IsObjectType())

	instancetype := objcast.NewInstancetypeType(token.Range{})
	require.True(t, instancetype.IsObjectType())
}
