// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spmat/matrix"
)

// runSubmatrix writes the leading rows×cols block of a matrix.
func runSubmatrix(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("submatrix")
	var (
		in   = fs.String("in", "", "source matrix")
		out  = fs.String("out", "", "destination")
		rows = fs.Int("rows", 20, "block rows")
		cols = fs.Int("cols", 20, "block columns")
	)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "in", "out"); err != nil {
		return err
	}

	m, err := e.loadSparse(ctx, *in, matrix.DefaultThreshold)
	if err != nil {
		return err
	}
	sub, err := matrix.Submatrix(m, *rows, *cols)
	if err != nil {
		return err
	}
	if err = e.storeSparse(ctx, *out, sub, fmt.Sprintf("Generated %dx%d submatrix", *rows, *cols)); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "Submatrix saved to %s\n", *out)

	return nil
}

// runHead prints the first n entries in file order with 1-based indices.
func runHead(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("head")
	var (
		in = fs.String("in", "", "source matrix")
		n  = fs.Int("n", 30, "entries to print")
	)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "in"); err != nil {
		return err
	}

	t, err := e.loadTriplets(ctx, *in)
	if err != nil {
		return err
	}
	head := t.Head(*n)
	fmt.Fprintf(e.stdout, "First %d entries of %s (%d×%d, %d stored):\n", len(head), *in, t.Rows(), t.Cols(), t.Len())
	for _, en := range head {
		fmt.Fprintf(e.stdout, "Row: %d, Col: %d, Value: %g\n", en.Row+1, en.Col+1, en.Value)
	}

	return nil
}
