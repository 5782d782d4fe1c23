package reporter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-dev/objcswift/reporter"
	"github.com/arclight-dev/objcswift/token"
)

func TestHandler_ErrorfSetsRecoveredAndHasErrors(t *testing.T) {
	h := reporter.NewHandler("t.m", []byte("line one\nline two\n"))
	require.False(t, h.HasErrors())
	require.False(t, h.Recovered())

	h.Errorf(token.Range{Start: 2, End: 3}, "unexpected %s", "token")
	require.True(t, h.HasErrors())
	require.True(t, h.Recovered())
	require.Len(t, h.Errors(), 1)
	require.Equal(t, "unexpected token", h.Errors()[0].Message)
}

func TestHandler_WarnfAndNotefDoNotAffectErrors(t *testing.T) {
	h := reporter.NewHandler("t.m", []byte("abc"))
	h.Warnf(token.Range{Start: 0, End: 1}, "mismatch")
	h.Notef(token.Range{Start: 0, End: 1}, "fyi")

	require.False(t, h.HasErrors())
	require.False(t, h.Recovered())
	require.Len(t, h.Warnings(), 1)
	require.Len(t, h.Notes(), 1)
}

func TestHandler_PosResolvesLineAndColumn(t *testing.T) {
	text := []byte("abc\ndef\nghi")
	h := reporter.NewHandler("t.m", text)

	// offset 5 is the 'e' in "def" on line 2, column 2.
	h.Errorf(token.Range{Start: 5, End: 6}, "boom")
	pos := h.Errors()[0].Pos
	require.Equal(t, "t.m", pos.Source)
	require.Equal(t, 2, pos.Line)
	require.Equal(t, 2, pos.Column)
}

func TestHandler_ErrorsOrderPreserved(t *testing.T) {
	h := reporter.NewHandler("t.m", []byte("xxxxxxxxxx"))
	h.Errorf(token.Range{Start: 0, End: 1}, "first")
	h.Errorf(token.Range{Start: 1, End: 2}, "second")
	h.Errorf(token.Range{Start: 2, End: 3}, "third")

	errs := h.Errors()
	require.Equal(t, []string{"first", "second", "third"}, []string{
		errs[0].Message, errs[1].Message, errs[2].Message,
	})
}

func TestSeverity_String(t *testing.T) {
	require.Equal(t, "error", reporter.Error.String())
	require.Equal(t, "warning", reporter.Warning.String())
	require.Equal(t, "note", reporter.Note.String())
}

func TestDiagnostic_ErrorFormatsLikeACompiler(t *testing.T) {
	h := reporter.NewHandler("t.m", []byte("abc"))
	h.Errorf(token.Range{Start: 0, End: 1}, "bad token")
	require.Equal(t, "t.m:1:1: error: bad token", h.Errors()[0].Error())
}

func TestHandler_RenderAlignsCaretUnderOffset(t *testing.T) {
	h := reporter.NewHandler("t.m", []byte("let x = 1\nreturn x + ;\n"))
	// offset 21 is the ';' on line 2, 11 runes into "return x + ;".
	h.Errorf(token.Range{Start: 21, End: 22}, "expected expression")
	out := h.Render(h.Errors()[0])
	require.Equal(t, "return x + ;\n           ^\nt.m:2:12: error: expected expression", out)
}

func TestGraphemeWidth_CountsDisplayCellsNotBytes(t *testing.T) {
	require.Equal(t, 3, reporter.GraphemeWidth("abc"))
	require.Equal(t, 0, reporter.GraphemeWidth(""))
}
