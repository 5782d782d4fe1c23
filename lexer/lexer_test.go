package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/lexer"
	"github.com/arclight-dev/objcswift/reporter"
	"github.com/arclight-dev/objcswift/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *reporter.Handler) {
	t.Helper()
	diags := reporter.NewHandler("t.m", []byte(src))
	l := lexer.New("t.m", []byte(src), diags)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, diags
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks, diags := scanAll(t, "@interface Foo @end")
	require.False(t, diags.HasErrors())
	require.Equal(t, token.AtInterface, toks[0].Kind)
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Equal(t, "Foo", toks[1].Lexeme)
	require.Equal(t, token.AtEnd, toks[2].Kind)
	require.Equal(t, token.EOF, toks[3].Kind)
}

func TestLexer_AtStringLiteralDoesNotError(t *testing.T) {
	toks, diags := scanAll(t, `NSLog(@"hi %d", 1);`)
	require.False(t, diags.HasErrors())
	var sawString bool
	for _, tok := range toks {
		if tok.Kind == token.StringLiteral {
			sawString = true
			require.Equal(t, `@"hi %d"`, tok.Lexeme)
		}
	}
	require.True(t, sawString)
}

func TestLexer_AdjacentStringConcatenation(t *testing.T) {
	toks, diags := scanAll(t, `"abc" "def"`)
	require.False(t, diags.HasErrors())
	require.Equal(t, token.StringLiteral, toks[0].Kind)
	require.Equal(t, `"abc" "def"`, toks[0].Lexeme)
}

func TestLexer_PeekAtTwoTokenLookahead(t *testing.T) {
	diags := reporter.NewHandler("t.m", []byte("withThing:"))
	l := lexer.New("t.m", []byte("withThing:"), diags)
	require.Equal(t, token.Identifier, l.Peek().Kind)
	require.Equal(t, token.Colon, l.PeekAt(1).Kind)
	// Peeking ahead must not consume.
	require.Equal(t, token.Identifier, l.Peek().Kind)
}

func TestLexer_UnknownCharacterRecordsErrorAndContinues(t *testing.T) {
	toks, diags := scanAll(t, "@interface Foo ` @end")
	require.True(t, diags.HasErrors())
	require.Equal(t, token.AtEnd, toks[len(toks)-2].Kind)
}

func TestLexer_NumberKinds(t *testing.T) {
	toks, diags := scanAll(t, "0x1F 42 3.14 7.0e2")
	require.False(t, diags.HasErrors())
	require.Equal(t, token.IntLiteral, toks[0].Kind)
	require.Equal(t, token.IntLiteral, toks[1].Kind)
	require.Equal(t, token.FloatLiteral, toks[2].Kind)
	require.Equal(t, token.FloatLiteral, toks[3].Kind)
}
