package eat

import "github.com/navijation/eaterate/option"

// Repeat returns an eaterator that yields value exactly n times, then is
// exhausted. Repeat(v, 0) is exhausted from the start.
func Repeat[T any](value T, n uint64) Eaterator[T] {
	return &repeatEaterator[T]{
		value:     value,
		remaining: n,
	}
}

type repeatEaterator[T any] struct {
	value     T
	remaining uint64
}

var _ Eaterator[any] = (*repeatEaterator[any])(nil)

func (me *repeatEaterator[T]) Next() option.Option[T] {
	if me.remaining == 0 {
		return option.None[T]()
	}
	me.remaining--
	return option.Some(me.value)
}
