// SPDX-License-Identifier: MIT
package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

func ExampleMultiply() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	B, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	C, err := strassen.Multiply(A, B)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(C)
	// Output:
	// [19, 22]
	// [43, 50]
}

func ExampleMultiplyWithTrace() {
	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	B, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	_, tr, _ := strassen.MultiplyWithTrace(A, B)
	for k := 1; k <= strassen.ProductCount; k++ {
		m, _ := tr.Product(k)
		v, _ := m.At(0, 0)
		fmt.Printf("M%d=%g ", k, v)
	}
	fmt.Println()
	// Output:
	// M1=65 M2=35 M3=-2 M4=8 M5=24 M6=22 M7=-30
}

func ExampleScalarMultiplications() {
	for _, n := range []int{2, 16, 256} {
		fmt.Printf("n=%d strassen=%d standard=%d\n", n, strassen.ScalarMultiplications(n, 1), n*n*n)
	}
	// Output:
	// n=2 strassen=7 standard=8
	// n=16 strassen=2401 standard=4096
	// n=256 strassen=5764801 standard=16777216
}
