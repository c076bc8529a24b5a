// SPDX-License-Identifier: MIT

// Package strassen: functional configuration of the recursion.
// Neither option changes the numeric contract for integer-valued input: the
// threshold swaps whole sub-products for the triple loop and the parallel
// mode only reorders independent work.
package strassen

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the block size at or below which the recursion hands
	// over to matrix.MultiplyStandard. 1 means pure Strassen: every block larger
	// than a scalar is split.
	DefaultThreshold = 1

	// DefaultParallelDepth is the number of outermost levels whose seven
	// products run concurrently. 0 keeps the whole recursion sequential.
	DefaultParallelDepth = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid     = "strassen: WithThreshold: n must be >= 1"
	panicParallelDepthInvalid = "strassen: WithParallelDepth: depth must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threshold     int    // >= 1; DefaultThreshold
	parallelDepth int    // >= 0; DefaultParallelDepth
	stats         *Stats // optional counters; nil disables collection
}

// WithThreshold sets the crossover block size: blocks with n <= threshold are
// multiplied by the triple loop. Panics if n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithParallelDepth runs the seven products of the outermost depth levels on
// separate goroutines. depth=1 fans out 7 goroutines, depth=2 up to 49.
// Panics if depth < 0.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic(panicParallelDepthInvalid)
	}

	return func(o *Options) { o.parallelDepth = depth }
}

// WithStats collects recursion counters into s. s may be shared by several
// calls (counters accumulate) and is safe under WithParallelDepth.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

// gatherOptions applies opts in order over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		threshold:     DefaultThreshold,
		parallelDepth: DefaultParallelDepth,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
