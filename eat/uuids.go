package eat

import (
	"github.com/google/uuid"

	"github.com/navijation/eaterate/option"
)

// UUIDs returns an unbounded eaterator of random version 4 UUIDs. It never
// returns None; consumers decide when to stop pulling.
func UUIDs() Eaterator[uuid.UUID] {
	return uuidEaterator{}
}

type uuidEaterator struct{}

var _ Eaterator[uuid.UUID] = uuidEaterator{}

func (me uuidEaterator) Next() option.Option[uuid.UUID] {
	return option.Some(uuid.Must(uuid.NewRandom()))
}
