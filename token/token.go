// Package token defines the lexical tokens produced by package lexer and
// consumed by package parser: token kinds, the closed set of Objective-C
// at-keywords, and source ranges.
package token

import "fmt"

// Kind classifies a single token.
type Kind int

const (
	Invalid Kind = iota
	EOF

	Identifier
	IntLiteral
	FloatLiteral
	StringLiteral

	// Punctuation.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Star      // *
	Less      // <
	Greater   // >
	Dot       // .

	// Operator-ish punctuation, kept coarse: the parser never needs
	// arbitrary C expression grammar, only enough to skip method bodies
	// and recognize attribute lists.
	Equals   // =
	Amp      // &
	Pipe     // |
	Plus     // +
	Minus    // -
	Bang     // !

	// At-keywords. This is the closed set named in spec §3.
	AtInterface
	AtImplementation
	AtProtocol
	AtEnd
	AtClass
	AtProperty
	AtSynthesize
	AtDynamic
	AtPrivate
	AtProtected
	AtPackage
	AtPublic
	AtOptional
	AtRequired
	AtSelector

	// Bare (non-at) keywords relevant to type and storage parsing.
	KeywordWeak
	KeywordStrong
	KeywordUnsafeUnretained
	KeywordConst
	KeywordVolatile
	KeywordID
	KeywordVoid
	KeywordInstancetype
	KeywordNullable
	KeywordNonnull

	Error // lexer could not classify the rune(s); diagnostic already recorded
)

//go:generate stringer -type=Kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Identifier:       "Identifier",
	IntLiteral:       "IntLiteral",
	FloatLiteral:     "FloatLiteral",
	StringLiteral:    "StringLiteral",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Comma:            ",",
	Semicolon:        ";",
	Colon:            ":",
	Star:             "*",
	Less:             "<",
	Greater:          ">",
	Dot:              ".",
	Equals:           "=",
	Amp:              "&",
	Pipe:             "|",
	Plus:             "+",
	Minus:            "-",
	Bang:             "!",
	AtInterface:      "@interface",
	AtImplementation: "@implementation",
	AtProtocol:       "@protocol",
	AtEnd:            "@end",
	AtClass:          "@class",
	AtProperty:       "@property",
	AtSynthesize:     "@synthesize",
	AtDynamic:        "@dynamic",
	AtPrivate:        "@private",
	AtProtected:      "@protected",
	AtPackage:        "@package",
	AtPublic:         "@public",
	AtOptional:       "@optional",
	AtRequired:       "@required",
	AtSelector:       "@selector",
	Error:            "Error",
}

// Keywords maps the closed at-keyword set and the bare specifier/type
// keywords to their Kind. Identifier lexing runs first; this table is
// consulted afterward, mirroring the teacher lexer's "keyword recognition
// is done after identifier lexing via a fixed table" (spec §4.1).
var Keywords = map[string]Kind{
	"@interface":      AtInterface,
	"@implementation": AtImplementation,
	"@protocol":       AtProtocol,
	"@end":            AtEnd,
	"@class":          AtClass,
	"@property":       AtProperty,
	"@synthesize":     AtSynthesize,
	"@dynamic":        AtDynamic,
	"@private":        AtPrivate,
	"@protected":      AtProtected,
	"@package":        AtPackage,
	"@public":         AtPublic,
	"@optional":       AtOptional,
	"@required":       AtRequired,
	"@selector":       AtSelector,

	"__weak":             KeywordWeak,
	"__strong":           KeywordStrong,
	"__unsafe_unretained": KeywordUnsafeUnretained,
	"const":               KeywordConst,
	"volatile":            KeywordVolatile,
	"id":                  KeywordID,
	"void":                KeywordVoid,
	"instancetype":        KeywordInstancetype,
	"nullable":            KeywordNullable,
	"nonnull":             KeywordNonnull,
	"_Nullable":           KeywordNullable,
	"_Nonnull":            KeywordNonnull,
}

// Range is a half-open interval of byte offsets into a single source's
// text, resolved to line/column on demand (spec §3). It is attached to
// every Token and every objcast node.
type Range struct {
	Start, End int // byte offsets, End exclusive
}

// Contains reports whether r wholly contains other, used to check the
// "sourceRange is contained in its parent's range" invariant (spec §8).
func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Join returns the smallest range containing both r and other. A zero
// Range on either side is treated as absent.
func (r Range) Join(other Range) Range {
	if r == (Range{}) {
		return other
	}
	if other == (Range{}) {
		return r
	}
	joined := r
	if other.Start < joined.Start {
		joined.Start = other.Start
	}
	if other.End > joined.End {
		joined.End = other.End
	}
	return joined
}

// Token is a single lexical element: its kind, its literal text, and the
// source range it spans. Keyword classification lives in Kind, not as a
// separate flag, matching spec §3 ("Kinds include ... the closed set of
// Objective-C at-keywords").
type Token struct {
	Kind   Kind
	Lexeme string
	Range  Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d..%d", t.Kind, t.Lexeme, t.Range.Start, t.Range.End)
}
