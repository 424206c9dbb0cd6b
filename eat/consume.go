package eat

import "github.com/navijation/eaterate/option"

// Collect drains the eaterator into a slice, in pull order.
func Collect[T any](eat Eaterator[T]) (out []T) {
	for {
		item, exists := eat.Next().Unpack()
		if !exists {
			return out
		}
		out = append(out, item)
	}
}

// Count drains the eaterator, returning the number of elements it produced.
func Count[T any](eat Eaterator[T]) (n uint64) {
	for eat.Next().IsSome() {
		n++
	}
	return n
}

// Last drains the eaterator, returning its final element, or None if it
// produced nothing.
func Last[T any](eat Eaterator[T]) (out option.Option[T]) {
	for {
		item := eat.Next()
		if item.IsNone() {
			return out
		}
		out = item
	}
}

// Nth advances the eaterator n+1 times and returns the last element pulled,
// or None if the eaterator was exhausted first.
func Nth[T any](eat Eaterator[T], n uint64) option.Option[T] {
	for {
		item := eat.Next()
		if n == 0 || item.IsNone() {
			return item
		}
		n--
	}
}

// ForEach calls fn on each remaining element, in pull order.
func ForEach[T any](eat Eaterator[T], fn func(T)) {
	for {
		item, exists := eat.Next().Unpack()
		if !exists {
			return
		}
		fn(item)
	}
}

// Fold accumulates every remaining element into init, returning the final
// accumulator.
func Fold[T, K any](eat Eaterator[T], init K, fn func(K, T) K) K {
	for {
		item, exists := eat.Next().Unpack()
		if !exists {
			return init
		}
		init = fn(init, item)
	}
}
