// Package benchmark implements the command that times the standard and
// Strassen multipliers over a list of sizes and writes the timings as CSV.
package benchmark

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/strassen/bench"
	"github.com/katalvlaran/strassen/internal/config"
	"github.com/katalvlaran/strassen/report"
	"github.com/katalvlaran/strassen/strassen"
)

// Config holds benchmark command configuration.
type Config struct {
	Sizes         []int  `env:"STRASSEN_BENCH_SIZES"   envDefault:"2,4,8,16,32" envSeparator:","`
	Output        string `env:"STRASSEN_BENCH_OUTPUT"  envDefault:"timings.csv"`
	Seed          int64  `env:"STRASSEN_BENCH_SEED"`
	Repeats       int    `env:"STRASSEN_BENCH_REPEATS" envDefault:"1"`
	Threshold     int    `env:"STRASSEN_THRESHOLD"     envDefault:"1"`
	ParallelDepth int    `env:"STRASSEN_PARALLEL_DEPTH"`
	Lang          string `env:"STRASSEN_LANG"          envDefault:"en"`
}

// ParseConfig parses environment variables, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Func("sizes", "comma separated matrix sizes (default "+joinInts(cfg.Sizes)+")", func(s string) error {
		sizes, err := parseInts(s)
		if err != nil {
			return err
		}
		cfg.Sizes = sizes
		return nil
	})
	fs.StringVar(&cfg.Output, "out", cfg.Output, "CSV output path (empty = do not write)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.IntVar(&cfg.Repeats, "repeats", cfg.Repeats, "runs averaged per size")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "block size handled by the standard multiplier")
	fs.IntVar(&cfg.ParallelDepth, "parallel", cfg.ParallelDepth, "recursion levels whose seven products run concurrently")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "output language (en, ru)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the benchmark command. The timing table goes to out,
// progress lines to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Threshold < 1 {
		return fmt.Errorf("threshold must be >= 1, got %d", cfg.Threshold)
	}
	if cfg.ParallelDepth < 0 {
		return fmt.Errorf("parallel depth must be >= 0, got %d", cfg.ParallelDepth)
	}
	logger := log.New(errOut, "", 0)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("starting benchmark, seed %d", seed)

	timings, err := bench.Run(ctx, bench.Config{
		Sizes:   cfg.Sizes,
		Seed:    seed,
		Repeats: cfg.Repeats,
		Options: []strassen.Option{
			strassen.WithThreshold(cfg.Threshold),
			strassen.WithParallelDepth(cfg.ParallelDepth),
		},
	}, logger)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out, report.ParseLanguage(cfg.Lang))
	p.Timings(timings)
	if cfg.Output != "" {
		if err := writeFile(cfg.Output, timings); err != nil {
			return err
		}
		p.Println(report.MsgWritten, cfg.Output)
	}
	return p.Err()
}

func writeFile(path string, timings []bench.Timing) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return bench.WriteCSV(f, timings)
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
