// Package arena defines an Arena type with compressed integer pointers,
// used by package intention to back the intention graph (spec §9:
// "an arena + index scheme is the recommended strategy in any target
// language, making cycles impossible by construction").
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// pointersMinLenShift is the log2 of the size of the smallest slice in
// an Arena[T]'s backing table.
const (
	pointersMinLenShift = 4
	pointersMinLen      = 1 << pointersMinLenShift
)

// Untyped is an untyped arena pointer. Its value is one plus the number
// of elements allocated before it; zero denotes nil.
type Untyped uint32

// Nil returns a nil arena pointer.
func Nil() Untyped { return 0 }

// Nil reports whether this pointer is nil.
func (p Untyped) Nil() bool { return p == 0 }

// Pointer is a compressed, typed arena pointer. It cannot be
// dereferenced directly; see [Pointer.In]. The zero value is nil.
type Pointer[T any] Untyped

// Nil reports whether this pointer is nil.
func (p Pointer[T]) Nil() bool { return Untyped(p).Nil() }

// In looks up this pointer in the given arena. arena must be the one
// that allocated p; if p is nil, this panics.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.At(Untyped(p))
}

// Arena offers compressed pointers over a slice of T that guarantees
// elements are never moved, by maintaining a table of
// logarithmically-growing slices mimicking ordinary slice growth. This
// trades the 8-byte overhead of []*T for a logarithmic 24-byte overhead
// while keeping lookup O(1) at the cost of two loads instead of one.
//
// A zero Arena[T] is empty and ready to use. objcswift keeps one
// Arena[intention.Type] per intention.Graph; File intentions refer to
// their types by Pointer value rather than *T (spec §9).
type Arena[T any] struct {
	table [][]T
}

// New allocates a new value on the arena and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, pointersMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](Untyped(a.len()))
}

// At dereferences an untyped arena pointer, as if by [Pointer.In].
func (a *Arena[T]) At(ptr Untyped) *T {
	if ptr.Nil() {
		a = nil // Trigger an ordinary nil dereference on purpose.
	}
	slice, idx := a.coordinates(int(ptr) - 1)
	return &a.table[slice][idx]
}

// Len returns the number of values allocated in this arena.
func (a *Arena[T]) Len() int { return a.len() }

func (a *Arena[T]) len() int {
	if len(a.table) == 0 {
		return 0
	}
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// String implements fmt.Stringer.
func (a Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	for i, slice := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range slice {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

func (*Arena[T]) lenOfNthSlice(n int) int {
	return pointersMinLen << n
}

func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+pointersMinLen)
	slice -= pointersMinLenShift + 1

	idx -= a.lenOfFirstNSlices(slice)

	return slice, idx
}
