package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearlyEquals(t *testing.T) {
	c := New()

	assert.True(t, c.NearlyEquals(1.0, 1.0005, 0.001))
	assert.False(t, c.NearlyEquals(1.0, 1.01, 0.001))

	t.Run("default epsilon", func(t *testing.T) {
		assert.True(t, c.NearlyEquals(1.0, 1.0005))
		assert.False(t, c.NearlyEquals(1.0, 1.002))
	})

	t.Run("per-call tolerance does not mutate calc", func(t *testing.T) {
		c.NearlyEquals(1.0, 2.0, 5.0)
		assert.Equal(t, DefaultEpsilon, c.Epsilon())
		assert.False(t, c.NearlyEquals(1.0, 1.002))
	})

	t.Run("zero tolerance falls back to epsilon", func(t *testing.T) {
		assert.True(t, c.NearlyEquals(1.0, 1.0005, 0))
	})

	t.Run("configured epsilon", func(t *testing.T) {
		wide := New(WithEpsilon(0.1))
		assert.True(t, wide.NearlyEquals(1.0, 1.05))
		assert.Equal(t, 0.1, wide.Epsilon())
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		assert.True(t, c.NearlyEquals(1.0, 1.001))
	})
}
