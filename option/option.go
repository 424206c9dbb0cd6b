package option

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyValue is the panic value raised when unwrapping an option that
// holds no data. Correct consumer code checks presence first (or uses Unpack
// or Or) and never triggers it.
var ErrEmptyValue = errors.New("cannot unwrap empty option")

// Option represents the presence or absence of a value, without a nil
// sentinel. The zero value is None. Options over comparable types compare
// with ==; two options are equal iff both are none, or both hold equal
// values.
type Option[T any] struct {
	item   T
	exists bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		item:   v,
		exists: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (me Option[T]) IsSome() bool {
	return me.exists
}

func (me Option[T]) IsNone() bool {
	return !me.exists
}

// Unwrap returns the held value. It panics with ErrEmptyValue on a none
// option; this is a programmer-error signal, not a recoverable condition.
func (me Option[T]) Unwrap() T {
	if !me.exists {
		panic(ErrEmptyValue)
	}
	return me.item
}

func (me Option[T]) Unpack() (T, bool) {
	return me.item, me.exists
}

func (me Option[T]) Or(defaultValue T) T {
	if me.exists {
		return me.item
	}
	return defaultValue
}

func (me Option[T]) String() string {
	if me.exists {
		return fmt.Sprintf("Some(%v)", me.item)
	}
	return "None"
}

// Map transforms the held value, if any. A free function rather than a
// method because Go methods cannot introduce type parameters.
func Map[T, K any](o Option[T], fn func(T) K) Option[K] {
	if item, exists := o.Unpack(); exists {
		return Some(fn(item))
	}
	return None[K]()
}

// Equal reports structural equality for options over any comparable type.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}
