// Package reporter holds the diagnostics sink used by every later stage of
// the pipeline (spec §4.3, §6.4, §7): an append-only log of errors,
// warnings, and notes, each carrying a mandatory source location.
package reporter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
	"github.com/tidwall/btree"

	"github.com/arclight-dev/objcswift/token"
)

// Severity partitions the diagnostic log, mirroring spec §3
// ("errors, warnings, notes").
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Pos is a resolved line/column location, 1-based, counted by Unicode
// scalar per spec §4.1.
type Pos struct {
	Source string
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Line, p.Column)
}

// Diagnostic is a single entry in the log.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    token.Range
	Pos      Pos
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// GraphemeWidth returns the number of display cells s would occupy in a
// rendered diagnostic snippet. Used only for caret alignment in Render
// below -- never by column counting proper, which stays scalar-based
// per spec §4.1.
func GraphemeWidth(s string) int {
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += uniseg.StringWidth(gr.Str())
	}
	return width
}

// Handler is the single diagnostics sink for one parser/builder session
// (spec §4.3: "A single sink per parser session"). It is safe for
// concurrent use only insofar as loading of independent sources may be
// parallelized by the caller; the pipeline itself never does so (spec §5).
type Handler struct {
	mu          sync.Mutex
	errors      []Diagnostic
	warnings    []Diagnostic
	notes       []Diagnostic
	recovered   bool
	index       *lineIndex
}

// NewHandler creates an empty Handler bound to the given source text, used
// to resolve byte offsets to line/column.
func NewHandler(sourceName string, text []byte) *Handler {
	return &Handler{index: newLineIndex(sourceName, text)}
}

// Errorf records a recoverable syntax or semantic error at r and returns
// nothing, letting the caller continue (spec §7 item 1: "Never propagated;
// always recorded as a diagnostic ... The caller of parse() still
// receives a tree").
func (h *Handler) Errorf(r token.Range, format string, args ...any) {
	h.record(Error, r, fmt.Sprintf(format, args...))
}

// Warnf records a semantic mismatch that does not abort the build, per
// spec §7 ("Semantic mismatches during intention building ... are
// warnings, not errors").
func (h *Handler) Warnf(r token.Range, format string, args ...any) {
	h.record(Warning, r, fmt.Sprintf(format, args...))
}

// Notef records an informational diagnostic, e.g. recovery bookkeeping.
func (h *Handler) Notef(r token.Range, format string, args ...any) {
	h.record(Note, r, fmt.Sprintf(format, args...))
}

// Render produces a one-line annotated source snippet for d: the
// offending source line, followed by a caret aligned under its start.
// The caret is aligned by display width rather than byte or scalar
// count, since wide or combining runes ahead of it would otherwise
// misalign it -- this is GraphemeWidth's only call site, mirroring the
// teacher's experimental/report.Renderer window-building, simplified to
// a single annotated line rather than a multi-line bordered window.
func (h *Handler) Render(d Diagnostic) string {
	line, lineStart := h.index.lineText(d.Range.Start)
	prefix := string(h.index.text[lineStart:d.Range.Start])
	caret := strings.Repeat(" ", GraphemeWidth(prefix)) + "^"
	return fmt.Sprintf("%s\n%s\n%s: %s: %s", line, caret, d.Pos, d.Severity, d.Message)
}

func (h *Handler) record(sev Severity, r token.Range, msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d := Diagnostic{Severity: sev, Message: msg, Range: r, Pos: h.index.resolve(r.Start)}
	switch sev {
	case Error:
		h.errors = append(h.errors, d)
		h.recovered = true
	case Warning:
		h.warnings = append(h.warnings, d)
	default:
		h.notes = append(h.notes, d)
	}
}

// Errors returns the accumulated error diagnostics in the order they were
// produced (spec §5 ordering guarantee iii).
func (h *Handler) Errors() []Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Diagnostic(nil), h.errors...)
}

// Warnings returns the accumulated warning diagnostics.
func (h *Handler) Warnings() []Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Diagnostic(nil), h.warnings...)
}

// Notes returns the accumulated note diagnostics.
func (h *Handler) Notes() []Diagnostic {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Diagnostic(nil), h.notes...)
}

// HasErrors reports whether any error diagnostic has been recorded. This
// backs the observable invariant in spec §8: "Diagnostics with severity
// error are non-empty iff the parser invoked recovery at least once."
func (h *Handler) HasErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errors) > 0
}

// Recovered reports whether panic-mode recovery was ever invoked during
// this session; by construction this is equivalent to HasErrors, since
// every recovery records exactly one error (spec §4.2, §8).
func (h *Handler) Recovered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.recovered
}

// lineIndex resolves byte offsets to 1-based line/column, backed by a
// btree of line-start offsets so that resolution ("resolved on demand",
// spec §3) is a logarithmic floor lookup rather than a linear scan over
// every previously seen offset.
type lineIndex struct {
	source     string
	text       []byte
	starts     *btree.BTreeG[int]
	lineAtStart map[int]int
}

func newLineIndex(source string, text []byte) *lineIndex {
	starts := btree.NewBTreeG(func(a, b int) bool { return a < b })
	lineAtStart := map[int]int{0: 1}
	starts.Set(0)
	line := 1
	for i, b := range text {
		if b == '\n' && i+1 < len(text) {
			line++
			starts.Set(i + 1)
			lineAtStart[i+1] = line
		}
	}
	return &lineIndex{source: source, text: text, starts: starts, lineAtStart: lineAtStart}
}

// resolve returns the 1-based line and column (by Unicode scalar) of the
// byte offset, per spec §4.1 ("column counting is by Unicode scalar").
// The line-start table is a btree so locating the enclosing line is a
// logarithmic floor lookup rather than a linear rescan on every
// diagnostic (spec §3: "resolved on demand").
func (idx *lineIndex) resolve(offset int) Pos {
	offset = idx.clamp(offset)
	lineStart := idx.lineStartFor(offset)

	col := 1
	for range string(idx.text[lineStart:offset]) {
		col++
	}
	return Pos{Source: idx.source, Line: idx.lineAtStart[lineStart], Column: col}
}

// lineText returns the full source line containing offset (excluding
// its trailing newline) and the byte offset that line starts at, used
// by Render to build an annotated snippet.
func (idx *lineIndex) lineText(offset int) (string, int) {
	offset = idx.clamp(offset)
	lineStart := idx.lineStartFor(offset)

	lineEnd := lineStart
	for lineEnd < len(idx.text) && idx.text[lineEnd] != '\n' {
		lineEnd++
	}
	return string(idx.text[lineStart:lineEnd]), lineStart
}

func (idx *lineIndex) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(idx.text) {
		return len(idx.text)
	}
	return offset
}

func (idx *lineIndex) lineStartFor(offset int) int {
	var lineStart int
	idx.starts.Descend(offset, func(start int) bool {
		lineStart = start
		return false // first hit visited is the floor of offset
	})
	return lineStart
}
