// Package strassen multiplies square matrices with Strassen's
// divide-and-conquer method.
//
// 🚀 What is Strassen's method?
//
//	Split both n×n operands into four (n/2)×(n/2) quadrants and replace the
//	eight block products of the schoolbook algorithm with seven:
//
//	  M1 = (A11 + A22)(B11 + B22)      C11 = M1 + M4 − M5 + M7
//	  M2 = (A21 + A22) B11             C12 = M3 + M5
//	  M3 = A11 (B12 − B22)             C21 = M2 + M4
//	  M4 = A22 (B21 − B11)             C22 = M1 + M3 − M2 + M6
//	  M5 = (A11 + A12) B22
//	  M6 = (A21 − A11)(B11 + B12)
//	  M7 = (A12 − A22)(B21 + B22)
//
//	Recursing on each Mk gives O(n^log2(7)) ≈ O(n^2.807) scalar
//	multiplications instead of n³, at the price of O(n²) extra additions and
//	temporary blocks per level.
//
// ✨ Key features:
//   - Multiply: the plain recursion, bottoming out in matrix.MultiplyStandard
//     at block size 1 (or at WithThreshold).
//   - MultiplyWithTrace: the same product plus the seven top-level products
//     and four result quadrants, for diagnostic reporting.
//   - WithParallelDepth: evaluate the seven independent products concurrently
//     on the outermost levels.
//   - WithStats: count Strassen levels, base-case calls and scalar products.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/strassen/strassen"
//
//	c, err := strassen.Multiply(a, b)               // pure recursion
//	c, err = strassen.Multiply(a, b,
//	    strassen.WithThreshold(64),                 // crossover to the triple loop
//	    strassen.WithParallelDepth(1))              // 7 goroutines at the top
//	c, tr, err := strassen.MultiplyWithTrace(a, b)  // tr.M[0] is M1, tr.C11 ...
//
// Preconditions are checked once, at the entry point: both operands square,
// of equal size n, and n a power of two. Violations are reported with the
// matrix package sentinels (all matching matrix.ErrInvalidArgument). The
// recursion itself relies on the fact that halving a power of two stays a
// power of two down to 1.
//
// Performance:
//
//   - Time:   O(n^2.807) scalar multiplications, O(n²) additions per level
//   - Memory: O(n²) temporaries per active level; recursion depth log2(n)
package strassen
