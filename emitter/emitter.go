// Package emitter walks an intention.Graph and produces Swift source
// text (spec §4.5): one pass per File, each declaration dressed with
// the decorator chain's modifiers and indented by a private counter
// that guarantees release on every exit path.
package emitter

import (
	"fmt"
	"strings"

	"github.com/arclight-dev/objcswift/decorator"
	"github.com/arclight-dev/objcswift/intention"
)

// indentationMode is the text a single indentationLevel expands to
// (spec §4.5: "a private counter indentationLevel multiplied by an
// indentationMode, default: four spaces").
const indentationMode = "    "

// printer accumulates one Swift file's text. Every indent is matched by
// an explicit deindent before the closing "}" line; emitType, emitEnum
// and emitProtocol also defer a deindent, which deindent's floor at zero
// turns into a no-op for these top-level declarations.
type printer struct {
	buf   strings.Builder
	level int
}

func (p *printer) indent() { p.level++ }

func (p *printer) deindent() {
	if p.level > 0 {
		p.level--
	}
}

func (p *printer) line(format string, args ...any) {
	p.buf.WriteString(strings.Repeat(indentationMode, p.level))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) raw(s string) {
	p.buf.WriteString(s)
}

// Emit renders one intention.File to Swift source text. graph supplies
// arena-backed Type dereferencing for the File's Types list.
func Emit(graph *intention.Graph, file *intention.File) string {
	p := &printer{}

	for _, ptr := range file.Types {
		emitType(p, graph.Type(ptr))
		p.raw("\n")
	}
	for _, proto := range file.Protocols {
		emitProtocol(p, proto)
		p.raw("\n")
	}
	for _, fn := range file.GlobalFns {
		emitGlobalFn(p, fn)
	}
	for _, v := range file.GlobalVars {
		emitGlobalVar(p, v)
	}
	for _, ta := range file.Typealiases {
		p.line("typealias %s = %s", ta.Name, ta.Target)
	}

	return p.buf.String()
}

// modifierPrefix renders a decorator chain's output as a space-joined,
// trailing-space-terminated prefix, or "" when the chain produced
// nothing (spec §4.5's "indirection allows the emitter to thread
// accumulated whitespace ... through the first modifier only" is
// simplified here to plain space-separated tokens, since this port
// emits fresh text rather than preserving original trivia).
func modifierPrefix(mods []decorator.Modifier) string {
	if len(mods) == 0 {
		return ""
	}
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, " ") + " "
}

func emitType(p *printer, t *intention.Type) {
	switch t.Kind {
	case intention.TypeEnum, intention.TypeOptionSet:
		emitEnum(p, t)
		return
	}

	kw := "class"
	var conformances []string
	if t.Superclass != "" {
		conformances = append(conformances, t.Superclass)
	}
	conformances = append(conformances, t.Conformances...)

	header := t.Name
	if len(conformances) > 0 {
		header += ": " + strings.Join(conformances, ", ")
	}

	access := modifierPrefix([]decorator.Modifier{})
	if t.Header.AccessLevel != intention.AccessInternal {
		access = t.Header.AccessLevel.String() + " "
	}
	p.line("%s%s %s {", access, kw, header)
	p.indent()
	defer p.deindent()

	for _, prop := range t.Properties {
		emitProperty(p, prop)
	}
	for _, m := range t.Methods {
		emitMethod(p, m)
	}
	for _, i := range t.Initializers {
		emitInit(p, i)
	}

	p.deindent()
	p.line("}")
}

func emitEnum(p *printer, t *intention.Type) {
	conformance := "Int"
	line := fmt.Sprintf("enum %s: %s", t.Name, conformance)
	if t.IsOptionSet {
		line = fmt.Sprintf("struct %s: OptionSet", t.Name)
	}
	access := ""
	if t.Header.AccessLevel != intention.AccessInternal {
		access = t.Header.AccessLevel.String() + " "
	}
	p.line("%s%s {", access, line)
	p.indent()
	defer p.deindent()

	if t.IsOptionSet {
		p.line("let rawValue: Int")
		for _, c := range t.EnumCases {
			raw := c.RawValue
			if raw == "" {
				raw = "0"
			}
			p.line("static let %s = %s(rawValue: %s)", c.Name, t.Name, raw)
		}
	} else {
		for _, c := range t.EnumCases {
			if c.RawValue == "" {
				p.line("case %s", c.Name)
			} else {
				p.line("case %s = %s", c.Name, c.RawValue)
			}
		}
	}

	p.deindent()
	p.line("}")
}

func emitProperty(p *printer, prop *intention.PropertyIntention) {
	mods := decorator.Modifiers(decorator.PropertyElement{PropertyIntention: prop})
	kw := "var"
	if prop.Storage.IsConstant && !prop.IsComputed {
		kw = "let"
	}
	p.line("%s%s %s: %s", modifierPrefix(mods), kw, prop.Name, prop.Storage.SwiftType)
}

func emitMethod(p *printer, m *intention.MethodIntention) {
	mods := decorator.Modifiers(decorator.MethodElement{MethodIntention: m})
	sig := signatureText(m.Selector)
	ret := ""
	if m.ReturnType != "" {
		ret = " -> " + m.ReturnType
	}
	p.line("%sfunc %s(%s)%s {", modifierPrefix(mods), m.SwiftName(), sig, ret)
	p.indent()
	if m.HasBody && m.BodyText != "" {
		for _, l := range strings.Split(strings.TrimSpace(m.BodyText), "\n") {
			p.line("%s", strings.TrimSpace(l))
		}
	}
	p.deindent()
	p.line("}")
}

func emitInit(p *printer, i *intention.InitIntention) {
	mods := decorator.Modifiers(decorator.InitElement{InitIntention: i})
	sig := signatureText(i.Selector)
	p.line("%sinit(%s) {", modifierPrefix(mods), sig)
	p.indent()
	if i.HasBody && i.BodyText != "" {
		for _, l := range strings.Split(strings.TrimSpace(i.BodyText), "\n") {
			p.line("%s", strings.TrimSpace(l))
		}
	}
	p.deindent()
	p.line("}")
}

func signatureText(params []intention.SelectorParam) string {
	if len(params) == 0 {
		return ""
	}
	if len(params) == 1 && params[0].SwiftType == "" {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, part := range params {
		if part.SwiftType == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s: %s", part.Keyword, part.ParamName, part.SwiftType))
	}
	return strings.Join(parts, ", ")
}

func emitProtocol(p *printer, proto *intention.Protocol) {
	header := proto.Name
	if len(proto.Inherited) > 0 {
		header += ": " + strings.Join(proto.Inherited, ", ")
	}
	p.line("protocol %s {", header)
	p.indent()
	defer p.deindent()

	for _, prop := range proto.Properties {
		emitProperty(p, prop)
	}
	for _, m := range proto.Methods {
		mods := decorator.Modifiers(decorator.MethodElement{MethodIntention: m})
		sig := signatureText(m.Selector)
		ret := ""
		if m.ReturnType != "" {
			ret = " -> " + m.ReturnType
		}
		p.line("%sfunc %s(%s)%s", modifierPrefix(mods), m.SwiftName(), sig, ret)
	}

	p.deindent()
	p.line("}")
}

func emitGlobalFn(p *printer, fn *intention.GlobalFn) {
	sig := signatureText(fn.Params)
	ret := ""
	if fn.ReturnType != "" {
		ret = " -> " + fn.ReturnType
	}
	access := ""
	if fn.Header.AccessLevel != intention.AccessInternal {
		access = fn.Header.AccessLevel.String() + " "
	}
	p.line("%sfunc %s(%s)%s {", access, fn.Name, sig, ret)
	p.line("}")
}

func emitGlobalVar(p *printer, v *intention.GlobalVar) {
	kw := "var"
	if v.Storage.IsConstant {
		kw = "let"
	}
	access := ""
	if v.Header.AccessLevel != intention.AccessInternal {
		access = v.Header.AccessLevel.String() + " "
	}
	p.line("%s%s %s: %s", access, kw, v.Name, v.Storage.SwiftType)
}
