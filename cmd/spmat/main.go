// SPDX-License-Identifier: MIT

// Command spmat drives the sparse engine: identity verification, products
// with trace, synthetic benchmarks and MatrixMarket utilities.
//
// Usage:
//
//	spmat <command> [flags]
//
// Results go to stdout; diagnostics go to stderr as slog records.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

func commands() []command {
	return []command{
		{"psp2p", "check P·S·P == 2·P for two matrices", runPSP},
		{"multrace", "multiply two matrices and print the trace", runMulTrace},
		{"bench", "time products of generated matrices over growing sizes", runBench},
		{"gen", "generate a synthetic sparse matrix and report its density", runGen},
		{"submatrix", "extract the leading block of a matrix", runSubmatrix},
		{"head", "print the first entries of a matrix file", runHead},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		return 2
	}

	for _, c := range commands() {
		if c.name != args[0] {
			continue
		}
		err := c.run(ctx, newEnv(stdout, stderr), args[1:])
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			return 2
		default:
			fmt.Fprintf(stderr, "spmat %s: %v\n", c.name, err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "spmat: unknown command %q\n\n", args[0])
	usage(stderr)

	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: spmat <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'spmat <command> -h' for command flags.")
}
