package numeric

import "fmt"

// Sample selects quantity elements from seq. With allowDuplicates the
// draws are independent and uniform, so quantity may exceed the
// population; without it the result is a uniform sample without
// replacement taken from a shuffled copy, and seq is left untouched.
func (c *Calc) Sample(seq []float64, quantity int, allowDuplicates bool) ([]float64, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("sample: %w", ErrEmptyInput)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("sample quantity %d is negative: %w", quantity, ErrInvalidArgument)
	}

	if allowDuplicates {
		out := make([]float64, quantity)
		for i := range out {
			out[i] = seq[c.rng.Intn(len(seq))]
		}
		return out, nil
	}

	if quantity > len(seq) {
		return nil, fmt.Errorf("sample quantity %d exceeds population %d without duplicates: %w",
			quantity, len(seq), ErrInvalidArgument)
	}
	pool := make([]float64, len(seq))
	copy(pool, seq)
	return c.Shuffle(pool)[:quantity], nil
}

// Shuffle permutes seq in place with a Fisher-Yates pass, walking from
// the last index down and swapping each element with a uniformly chosen
// element at or before it. Returns the same slice for chaining. Every
// permutation is equally likely given a uniform source.
func (c *Calc) Shuffle(seq []float64) []float64 {
	for i := len(seq) - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}
