// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/spmat/matrix"
)

// runMulTrace multiplies A·B from files and prints the trace of the product.
func runMulTrace(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("multrace")
	var (
		kf   kernelFlags
		aURI = fs.String("a", "", "left operand")
		bURI = fs.String("b", "", "right operand")
		out  = fs.String("out", "", "optional destination for the product (.mtx[.zst|.gz|.lz4] or .snap)")
	)
	kf.register(fs)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "a", "b"); err != nil {
		return err
	}
	if err := kf.validate(); err != nil {
		return err
	}

	a, err := e.loadSparse(ctx, *aURI, kf.threshold)
	if err != nil {
		return err
	}
	b, err := e.loadSparse(ctx, *bURI, kf.threshold)
	if err != nil {
		return err
	}

	start := time.Now()
	c, err := kf.multiply(a, b, e.multiplyOptions(ctx, kf.threshold, kf.workers, kf.progress))
	elapsed := time.Since(start)
	if err != nil {
		e.log.LogMultiply(ctx, "A·B", 0, elapsed, err)
		return err
	}
	e.log.LogMultiply(ctx, "A·B", c.NNZ(), elapsed, nil)

	fmt.Fprintf(e.stdout, "Time taken for matrix multiplication :: %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(e.stdout, "Trace of the result matrix :: %g\n", matrix.TraceOf(c))

	if *out != "" {
		return e.storeSparse(ctx, *out, c, "product of "+*aURI+" and "+*bURI)
	}

	return nil
}
