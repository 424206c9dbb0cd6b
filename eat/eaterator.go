// Package eat implements pull-based lazy sequences whose exhaustion is
// signaled with explicit option values rather than sentinel errors or
// panics. A sequence is advanced one element at a time by calling Next;
// once it returns None, it returns None forever.
package eat

import (
	"iter"

	"github.com/navijation/eaterate/option"
)

// Eaterator is a pull sequence over values of type T. Next returns the next
// element, or None once the sequence is exhausted.
//
// Implementations must satisfy monotonic exhaustion: after Next has returned
// None, every subsequent Next call on the same instance must also return
// None. Next may mutate internal state, so an eaterator is not safe for
// concurrent advancement without external synchronization; each instance
// assumes a single owner. Wrapping eaterators must own their upstream
// exclusively and preserve the exhaustion invariant.
type Eaterator[T any] interface {
	Next() option.Option[T]
}

// Seq adapts an eaterator to a range-over-func sequence. The sequence is
// lazy, single-pass, and forward-only: elements are pulled one at a time as
// the loop body demands them. Once the adapter observes None it becomes
// exhausted and never advances the upstream again; re-iterating requires a
// fresh eaterator.
func Seq[T any](eat Eaterator[T]) iter.Seq[T] {
	exhausted := false
	return func(yield func(T) bool) {
		if exhausted {
			return
		}
		for {
			item, exists := eat.Next().Unpack()
			if !exists {
				exhausted = true
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
