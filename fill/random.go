// SPDX-License-Identifier: MIT

package fill

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/strassen/matrix"
)

// DigitRange bounds the values written by Random: [0, DigitRange).
// Small integers keep every product and partial sum exactly representable,
// so Strassen and the triple loop can be compared bit for bit.
const DigitRange = 10

// Random overwrites every element of m with an integer drawn from
// [0, DigitRange) using rng. The same seed always yields the same matrix.
func Random(m *matrix.Dense, rng *rand.Rand) error {
	if m == nil {
		return fmt.Errorf("fill.Random: %w", matrix.ErrNilMatrix)
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, float64(rng.Intn(DigitRange))); err != nil {
				return fmt.Errorf("fill.Random: %w", err)
			}
		}
	}

	return nil
}

// RandomSquare allocates an n×n matrix and fills it with Random.
func RandomSquare(n int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.Create(n)
	if err != nil {
		return nil, fmt.Errorf("fill.RandomSquare: %w", err)
	}
	if err = Random(m, rng); err != nil {
		return nil, err
	}

	return m, nil
}
