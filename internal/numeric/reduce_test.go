package numeric

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Sum([]float64{}))
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, -1.5, Sum([]float64{2.5, -4}))
}

func TestSubtraction(t *testing.T) {
	got, err := Subtraction([]float64{5, 3, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = Subtraction([]float64{10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = Subtraction(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestProduct(t *testing.T) {
	got, err := Product([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 24.0, got)

	got, err = Product([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	got, err = Product([]float64{2, 0, 9})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = Product([]float64{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSquare(t *testing.T) {
	assert.Equal(t, 25.0, Square(5))
	assert.Equal(t, 9.0, Square(-3))
	assert.Equal(t, 0.25, Square(0.5))

	// no validation: non-finite values flow through
	assert.True(t, gomath.IsInf(Square(gomath.Inf(1)), 1))
	assert.True(t, gomath.IsNaN(Square(gomath.NaN())))
}
