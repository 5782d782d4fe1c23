package parser

import (
	"github.com/arclight-dev/objcswift/objcast"
)

// contextFrame is the "temporary context" of spec §4.2: a fresh
// collection root that a nested parse entry point populates. Acquisition
// and release are scoped (push on entry, pop on every exit path),
// modelling spec §9's "scoped acquisition: the handle's destructor/defer
// equivalent restores the previous context, regardless of success".
type contextFrame struct {
	nodes []objcast.Node
}

func (f *contextFrame) emit(n objcast.Node) {
	f.nodes = append(f.nodes, n)
}

// pushContext acquires a fresh context frame and returns a release
// function that must be deferred immediately by the caller, guaranteeing
// the previous context is restored on every exit path including a panic
// (spec §5 "Resource discipline ... release is guaranteed on normal
// completion and on any propagated error").
func (p *Parser) pushContext() (frame *contextFrame, release func()) {
	frame = &contextFrame{}
	p.stack = append(p.stack, frame)
	return frame, func() {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// current returns the innermost active context frame.
func (p *Parser) current() *contextFrame {
	return p.stack[len(p.stack)-1]
}
