// Package fill populates square matrices for the command-line tools: with
// pseudo-random digits for benchmarking, or from whitespace-separated text as
// typed on a terminal.
//
// The multiplication packages never decide where their inputs come from;
// these helpers are the collaborators that do.
package fill
