// Package bench times the triple-loop multiplier against Strassen's method
// over a series of power-of-two sizes and stores the results as CSV.
//
// The CSV layout is the one the plotting scripts expect:
//
//	n,standard_ms,strassen_ms
//	2,0.0011,0.0032
//	...
//
// Timings are wall-clock means over Config.Repeats runs per size. Inputs are
// random digits (fill.Random), so every run also checks that both methods
// produced exactly the same product.
package bench
