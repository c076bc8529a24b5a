package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleMultiplyStandard multiplies two 2×2 matrices with the triple loop.
func ExampleMultiplyStandard() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, err := matrix.MultiplyStandard(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleSplit shows the quadrant layout and the Join round trip.
func ExampleSplit() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	q, _ := matrix.Split(a)
	fmt.Print("A12:\n", q.A12)
	fmt.Print("A21:\n", q.A21)

	back, _ := q.Join()
	same, _ := matrix.Equal(a, back)
	fmt.Println("join(split(A)) == A:", same)
	// Output:
	// A12:
	// [3, 4]
	// [7, 8]
	// A21:
	// [9, 10]
	// [13, 14]
	// join(split(A)) == A: true
}

// ExampleIsPowerOfTwo shows the precondition guarding the Strassen path.
func ExampleIsPowerOfTwo() {
	for _, n := range []int{1, 6, 8} {
		fmt.Printf("%d: %v\n", n, matrix.IsPowerOfTwo(n))
	}

	six, _ := matrix.Create(6)
	err := matrix.ValidatePowerOfTwo(six)
	fmt.Println(errors.Is(err, matrix.ErrInvalidArgument))
	// Output:
	// 1: true
	// 6: false
	// 8: true
	// true
}
