package eat

import "github.com/navijation/eaterate/option"

// Range returns an eaterator counting from start up to, but not including,
// stop. An empty range (start >= stop) is exhausted from the start.
func Range(start, stop int64) *RangeEaterator {
	return &RangeEaterator{
		next: start,
		stop: stop,
	}
}

// RangeFrom returns an unbounded eaterator counting up from start.
func RangeFrom(start int64) *RangeEaterator {
	return &RangeEaterator{
		next:      start,
		unbounded: true,
	}
}

type RangeEaterator struct {
	next      int64
	stop      int64
	unbounded bool
}

var _ Eaterator[int64] = (*RangeEaterator)(nil)

// Inclusive extends the range to include its stop value. It has no effect
// on an unbounded range.
func (me *RangeEaterator) Inclusive() *RangeEaterator {
	if !me.unbounded {
		me.stop++
	}
	return me
}

func (me *RangeEaterator) Next() option.Option[int64] {
	if !me.unbounded && me.next >= me.stop {
		return option.None[int64]()
	}
	out := me.next
	me.next++
	return option.Some(out)
}
