package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 4.0, GCD(12, 8))
	assert.Equal(t, 4.0, GCD(8, 12))
	assert.Equal(t, 1.0, GCD(17, 13))
	assert.Equal(t, 6.0, GCD(-12, 18))
	assert.Equal(t, 6.0, GCD(12, -18))

	t.Run("zero operands", func(t *testing.T) {
		assert.Equal(t, 5.0, GCD(0, 5))
		assert.Equal(t, 5.0, GCD(5, 0))
		assert.Equal(t, 0.0, GCD(0, 0))
	})
}

func TestLCM(t *testing.T) {
	got, err := LCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	got, err = LCM(-4, 6)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	got, err = LCM(0, 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = LCM(0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
