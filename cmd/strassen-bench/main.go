// Package main provides the standard-vs-Strassen benchmark CLI.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/strassen/internal/config"

	benchmarkcmd "github.com/katalvlaran/strassen/internal/cmd/benchmark"
)

func main() {
	if _, err := config.LoadDotEnv(""); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := benchmarkcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := benchmarkcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
