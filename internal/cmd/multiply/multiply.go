// Package multiply implements the interactive command that multiplies two
// square matrices with both the triple loop and Strassen's method and
// compares the results.
package multiply

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/katalvlaran/strassen/fill"
	"github.com/katalvlaran/strassen/internal/config"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/report"
	"github.com/katalvlaran/strassen/strassen"
)

// Config holds multiply command configuration.
type Config struct {
	Size          int    `env:"STRASSEN_SIZE"`
	Random        bool   `env:"STRASSEN_RANDOM"`
	Seed          int64  `env:"STRASSEN_SEED"`
	Threshold     int    `env:"STRASSEN_THRESHOLD"      envDefault:"1"`
	ParallelDepth int    `env:"STRASSEN_PARALLEL_DEPTH"`
	Trace         bool   `env:"STRASSEN_TRACE"          envDefault:"true"`
	Lang          string `env:"STRASSEN_LANG"           envDefault:"en"`
	Verbose       bool   `env:"STRASSEN_VERBOSE"`
}

// ParseConfig parses environment variables, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Size, "n", cfg.Size, "matrix size, a power of two (0 = ask)")
	fs.BoolVar(&cfg.Random, "random", cfg.Random, "fill A and B with random digits instead of reading them")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "block size handled by the standard multiplier")
	fs.IntVar(&cfg.ParallelDepth, "parallel", cfg.ParallelDepth, "recursion levels whose seven products run concurrently")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print M1..M7 and C11..C22 of the top level")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "output language (en, ru)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log recursion statistics")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) strassenOptions(stats *strassen.Stats) ([]strassen.Option, error) {
	if c.Threshold < 1 {
		return nil, fmt.Errorf("threshold must be >= 1, got %d", c.Threshold)
	}
	if c.ParallelDepth < 0 {
		return nil, fmt.Errorf("parallel depth must be >= 0, got %d", c.ParallelDepth)
	}
	return []strassen.Option{
		strassen.WithThreshold(c.Threshold),
		strassen.WithParallelDepth(c.ParallelDepth),
		strassen.WithStats(stats),
	}, nil
}

// Run executes the multiply command. Prompts and matrices go to out, log
// lines to errOut; in supplies the size and elements unless cfg says otherwise.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if in == nil {
		in = eofReader{}
	}
	logger := log.New(errOut, "", 0)
	p := report.NewPrinter(out, report.ParseLanguage(cfg.Lang))
	rd := fill.NewReader(in)

	var stats strassen.Stats
	opts, err := cfg.strassenOptions(&stats)
	if err != nil {
		return err
	}

	n := cfg.Size
	if n == 0 {
		p.Printf(report.MsgSizePrompt)
		if n, err = rd.Int(); err != nil {
			return fmt.Errorf("read size: %w", err)
		}
	}
	if !matrix.IsPowerOfTwo(n) {
		p.Println(report.MsgNotPowerOfTwo)
		p.Println(report.MsgPadHint)
		return errors.Join(fmt.Errorf("size %d: %w", n, matrix.ErrNotPowerOfTwo), p.Err())
	}

	a, b, err := inputs(cfg, n, rd, p, logger)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	standard, err := matrix.MultiplyStandard(a, b)
	if err != nil {
		return err
	}
	p.Matrix(standard, report.MsgStandardC)

	p.Println(report.MsgStrassenTitle)
	var product *matrix.Dense
	if cfg.Trace {
		var tr *strassen.Trace
		product, tr, err = strassen.MultiplyWithTrace(a, b, opts...)
		if err != nil {
			return err
		}
		p.Trace(tr)
	} else if product, err = strassen.Multiply(a, b, opts...); err != nil {
		return err
	}
	p.Matrix(product, report.MsgStrassenC)

	equal, err := matrix.Equal(standard, product)
	if err != nil {
		return err
	}
	p.Verdict(equal)

	if cfg.Verbose {
		logger.Printf("strassen: %d levels, %d base products, %d scalar multiplications (standard: %d)",
			stats.Levels(), stats.StandardCalls(), stats.ScalarMultiplications(), int64(n)*int64(n)*int64(n))
	}
	return p.Err()
}

// inputs builds A and B either from random digits or from rd.
func inputs(cfg Config, n int, rd *fill.Reader, p *report.Printer, logger *log.Logger) (*matrix.Dense, *matrix.Dense, error) {
	a, err := matrix.Create(n)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.Create(n)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Random {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Printf("random inputs, seed %d", seed)
		rng := rand.New(rand.NewSource(seed))
		if err = fill.Random(a, rng); err != nil {
			return nil, nil, err
		}
		if err = fill.Random(b, rng); err != nil {
			return nil, nil, err
		}
		p.Matrix(a, "A")
		p.Matrix(b, "B")
		return a, b, nil
	}

	p.Println(report.MsgEnterMatrix, "A", n, n)
	if err = rd.Matrix(a); err != nil {
		return nil, nil, fmt.Errorf("read A: %w", err)
	}
	p.Println(report.MsgEnterMatrix, "B", n, n)
	if err = rd.Matrix(b); err != nil {
		return nil, nil, fmt.Errorf("read B: %w", err)
	}
	return a, b, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
