package numeric

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *Calc {
	return New(WithRand(rand.New(rand.NewSource(seed))))
}

func TestShuffle(t *testing.T) {
	c := seeded(1)

	t.Run("permutes the same multiset", func(t *testing.T) {
		in := []float64{3, 1, 4, 1, 5, 9, 2, 6}
		want := append([]float64(nil), in...)
		sort.Float64s(want)

		out := c.Shuffle(in)

		got := append([]float64(nil), out...)
		sort.Float64s(got)
		assert.Equal(t, want, got)
	})

	t.Run("in place, same slice returned", func(t *testing.T) {
		in := []float64{1, 2, 3}
		out := c.Shuffle(in)
		assert.Equal(t, &in[0], &out[0])
		assert.Len(t, out, 3)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.Equal(t, []float64{7}, c.Shuffle([]float64{7}))
		assert.Empty(t, c.Shuffle([]float64{}))
	})

	t.Run("roughly uniform positions", func(t *testing.T) {
		// With a uniform source every element lands in every position
		// with probability 1/3. Over 6000 trials the observed frequency
		// stays well inside [0.25, 0.42].
		const trials = 6000
		counts := [3][3]int{}
		for trial := 0; trial < trials; trial++ {
			seq := c.Shuffle([]float64{0, 1, 2})
			for pos, v := range seq {
				counts[int(v)][pos]++
			}
		}
		for elem := 0; elem < 3; elem++ {
			for pos := 0; pos < 3; pos++ {
				freq := float64(counts[elem][pos]) / trials
				assert.InDelta(t, 1.0/3.0, freq, 0.09,
					"element %d in position %d", elem, pos)
			}
		}
	})
}

func TestSample(t *testing.T) {
	pop := []float64{1, 2, 3}

	t.Run("empty population", func(t *testing.T) {
		_, err := seeded(1).Sample(nil, 1, true)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("quantity exceeds population without duplicates", func(t *testing.T) {
		_, err := seeded(1).Sample(pop, 5, false)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := seeded(1).Sample(pop, -1, true)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("with duplicates draws from the population", func(t *testing.T) {
		got, err := seeded(2).Sample(pop, 5, true)
		require.NoError(t, err)
		require.Len(t, got, 5)
		for _, v := range got {
			assert.Contains(t, pop, v)
		}
	})

	t.Run("without duplicates is a sub-multiset", func(t *testing.T) {
		got, err := seeded(3).Sample(pop, 2, false)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0], got[1])
		for _, v := range got {
			assert.Contains(t, pop, v)
		}
	})

	t.Run("does not mutate the population", func(t *testing.T) {
		in := []float64{10, 20, 30, 40}
		_, err := seeded(4).Sample(in, 4, false)
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 20, 30, 40}, in)
	})

	t.Run("zero quantity", func(t *testing.T) {
		got, err := seeded(5).Sample(pop, 0, false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
