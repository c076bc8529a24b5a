// Package main provides the interactive Strassen multiplication CLI.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/strassen/internal/config"

	multiplycmd "github.com/katalvlaran/strassen/internal/cmd/multiply"
)

func main() {
	if _, err := config.LoadDotEnv(""); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := multiplycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := multiplycmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
