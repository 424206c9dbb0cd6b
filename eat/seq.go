package eat

import (
	"iter"

	"github.com/navijation/eaterate/option"
	"github.com/navijation/eaterate/util"
)

// FromSeq adapts any range-over-func sequence to an eaterator. The pull
// coroutine is released at the first exhaustion, after which the eaterator
// stays exhausted.
func FromSeq[T any](seq iter.Seq[T]) Eaterator[T] {
	next, stop := iter.Pull(seq)
	return &seqEaterator[T]{
		next: next,
		stop: stop,
	}
}

// From returns an eaterator over the given items, in order.
func From[T any](items ...T) Eaterator[T] {
	return FromSeq(util.SeqOf(items...))
}

type seqEaterator[T any] struct {
	next      func() (T, bool)
	stop      func()
	exhausted bool
}

var _ Eaterator[any] = (*seqEaterator[any])(nil)

func (me *seqEaterator[T]) Next() option.Option[T] {
	if me.exhausted {
		return option.None[T]()
	}

	item, exists := me.next()
	if !exists {
		me.exhausted = true
		me.stop()
		return option.None[T]()
	}

	return option.Some(item)
}
