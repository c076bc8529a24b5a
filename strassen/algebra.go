// SPDX-License-Identifier: MIT

package strassen

import "github.com/katalvlaran/strassen/matrix"

// algebra chains block additions and subtractions, keeping the first error.
// Once err is set every further call is a no-op returning nil.
type algebra struct{ err error }

func (g *algebra) add(a, b *matrix.Dense) *matrix.Dense {
	if g.err != nil {
		return nil
	}
	var c *matrix.Dense
	c, g.err = matrix.Add(a, b)

	return c
}

func (g *algebra) sub(a, b *matrix.Dense) *matrix.Dense {
	if g.err != nil {
		return nil
	}
	var c *matrix.Dense
	c, g.err = matrix.Sub(a, b)

	return c
}

// operand is the left/right input of one of the seven block products.
type operand struct{ left, right *matrix.Dense }

// operands builds the inputs of M1..M7 from the quadrants of A and B.
func operands(a, b matrix.Quadrants) ([ProductCount]operand, error) {
	var g algebra
	ops := [ProductCount]operand{
		{g.add(a.A11, a.A22), g.add(b.A11, b.A22)}, // M1
		{g.add(a.A21, a.A22), b.A11},               // M2
		{a.A11, g.sub(b.A12, b.A22)},               // M3
		{a.A22, g.sub(b.A21, b.A11)},               // M4
		{g.add(a.A11, a.A12), b.A22},               // M5
		{g.sub(a.A21, a.A11), g.add(b.A11, b.A12)}, // M6
		{g.sub(a.A12, a.A22), g.add(b.A21, b.A22)}, // M7
	}

	return ops, g.err
}

// combine assembles the result quadrants from M1..M7. Sums are evaluated
// left to right: C11 = ((M1+M4)−M5)+M7, C22 = ((M1+M3)−M2)+M6.
func combine(m [ProductCount]*matrix.Dense) (c11, c12, c21, c22 *matrix.Dense, err error) {
	var g algebra
	c11 = g.add(g.sub(g.add(m[0], m[3]), m[4]), m[6])
	c12 = g.add(m[2], m[4])
	c21 = g.add(m[1], m[3])
	c22 = g.add(g.sub(g.add(m[0], m[2]), m[1]), m[5])

	return c11, c12, c21, c22, g.err
}
