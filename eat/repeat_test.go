package eat

import (
	"testing"

	"github.com/navijation/eaterate/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat_YieldsExactlyN(t *testing.T) {
	t.Parallel()

	seq := Repeat("chocolate", 3)

	for range 3 {
		assert.Equal(t, option.Some("chocolate"), seq.Next())
	}

	// exhaustion is permanent
	for range 5 {
		assert.Equal(t, option.None[string](), seq.Next())
	}
}

func TestRepeat_Empty(t *testing.T) {
	t.Parallel()

	seq := Repeat("chocolate", 0)
	assert.Equal(t, option.None[string](), seq.Next())
	assert.Equal(t, option.None[string](), seq.Next())
}

func TestRepeat_ExactCountProperty(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 1, 2, 10, 1000} {
		seq := Repeat(struct{}{}, n)

		var produced uint64
		for seq.Next().IsSome() {
			produced++
		}

		require.Equal(t, n, produced)
		assert.True(t, seq.Next().IsNone())
	}
}

func TestRepeat_ForEachEquivalence(t *testing.T) {
	t.Parallel()

	var manual []string
	seq := Repeat("chocolate", 3)
	for {
		item, exists := seq.Next().Unpack()
		if !exists {
			break
		}
		manual = append(manual, item)
	}

	var ranged []string
	for item := range Seq(Repeat("chocolate", 3)) {
		ranged = append(ranged, item)
	}

	assert.Equal(t, []string{"chocolate", "chocolate", "chocolate"}, ranged)
	assert.Equal(t, manual, ranged)
}
