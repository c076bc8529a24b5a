// Package strassen is the root of a small library and two command-line tools
// for multiplying square matrices, classically and with Strassen's method.
//
// 🚀 What is in here?
//
//	A dependency-light Go module that brings together:
//		• Dense square matrices with block algebra (add, subtract, split, join)
//		• The classical O(n³) triple-loop multiplier
//		• Strassen's O(n^2.807) recursion, with an optional crossover threshold,
//		  concurrent evaluation of the seven products and a top-level trace
//		• A benchmark harness that writes timings.csv for plotting
//
// ✨ Guarantees:
//
//   - Values, not references – every operation returns a fresh matrix
//   - Exact agreement – for integer-valued inputs Strassen and the triple loop
//     produce identical results, and the tests check it bit for bit
//   - Errors, not panics – precondition failures are sentinel errors matching
//     matrix.ErrInvalidArgument
//
// Packages:
//
//	matrix/   — Dense type, block algebra, MultiplyStandard, IsPowerOfTwo
//	strassen/ — Multiply, MultiplyWithTrace, options and statistics
//	fill/     — random digits and whitespace-separated text input
//	bench/    — timing harness and CSV read/write
//	report/   — terminal rendering, English and Russian
//
// Commands:
//
//	go run ./cmd/strassen -n 4 -random         # multiply, trace, compare
//	go run ./cmd/strassen-bench -sizes 2,4,8   # write timings.csv
//
// Both commands read STRASSEN_* environment variables (and a .env file found
// in the working directory or its parents); flags take precedence.
package strassen
