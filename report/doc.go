// Package report renders matrices, Strassen traces, verdicts and benchmark
// timings for terminals.
//
// Labels go through golang.org/x/text/message, so the same output can be
// produced in English (the message keys) or Russian. Matrix values are always
// written with plain "%8.6g " cells so the output can be pasted back as input.
package report
