package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/token"
)

func TestRange_Contains(t *testing.T) {
	outer := token.Range{Start: 0, End: 10}
	require.True(t, outer.Contains(token.Range{Start: 2, End: 8}))
	require.True(t, outer.Contains(outer))
	require.False(t, outer.Contains(token.Range{Start: 0, End: 11}))
	require.False(t, outer.Contains(token.Range{Start: -1, End: 5}))
}

func TestRange_Join(t *testing.T) {
	a := token.Range{Start: 5, End: 10}
	b := token.Range{Start: 2, End: 7}
	require.Equal(t, token.Range{Start: 2, End: 10}, a.Join(b))

	require.Equal(t, a, a.Join(token.Range{}))
	require.Equal(t, b, token.Range{}.Join(b))
}

func TestKeywords_AtAndBareKeywordsResolve(t *testing.T) {
	cases := map[string]token.Kind{
		"@interface":   token.AtInterface,
		"@end":         token.AtEnd,
		"@property":    token.AtProperty,
		"__weak":       token.KeywordWeak,
		"instancetype": token.KeywordInstancetype,
		"nonnull":      token.KeywordNonnull,
		"_Nonnull":     token.KeywordNonnull,
	}
	for lexeme, want := range cases {
		got, ok := token.Keywords[lexeme]
		require.True(t, ok, "missing keyword %q", lexeme)
		require.Equal(t, want, got, "keyword %q", lexeme)
	}
}

func TestKind_StringFallsBackForUnknownValues(t *testing.T) {
	require.Equal(t, "@interface", token.AtInterface.String())
	require.Contains(t, token.Kind(9999).String(), "Kind(9999)")
}

func TestToken_StringIncludesRange(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Lexeme: "Foo", Range: token.Range{Start: 3, End: 6}}
	require.Equal(t, `Identifier("Foo")@3..6`, tok.String())
}
