// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/spmat/verify"
)

// runPSP loads P and S and checks P·S·P == factor·P.
func runPSP(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("psp2p")
	var (
		kf      kernelFlags
		pURI    = fs.String("p", "", "P matrix (path, file://, s3://, minio:// or .snap)")
		sURI    = fs.String("s", "", "S matrix")
		tol     = fs.Float64("tol", verify.DefaultTolerance, "absolute per-entry tolerance")
		factor  = fs.Float64("factor", verify.DefaultFactor, "k in P·S·P == k·P")
		ordered = fs.Bool("ordered", false, "element-by-element check over unmerged products")
	)
	kf.register(fs)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, "p", "s"); err != nil {
		return err
	}
	if err := kf.validate(); err != nil {
		return err
	}
	if math.IsNaN(*tol) || math.IsNaN(*factor) || math.IsInf(*factor, 0) {
		return fmt.Errorf("-tol and -factor must be numbers")
	}
	vopts := []verify.Option{
		verify.WithTolerance(*tol),
		verify.WithFactor(*factor),
		verify.WithLogger(e.log.Logger),
	}

	var (
		equal   bool
		size    int
		elapsed time.Duration
	)
	if *ordered {
		p, err := e.loadTriplets(ctx, *pURI)
		if err != nil {
			return err
		}
		s, err := e.loadTriplets(ctx, *sURI)
		if err != nil {
			return err
		}
		r, err := verify.PSPOrdered(p, s, vopts...)
		if err != nil {
			e.log.LogVerify(ctx, false, 0, 0, err)
			return err
		}
		equal, size, elapsed = r.Equal, r.Len, r.Timings.Total()
	} else {
		p, err := e.loadSparse(ctx, *pURI, kf.threshold)
		if err != nil {
			return err
		}
		s, err := e.loadSparse(ctx, *sURI, kf.threshold)
		if err != nil {
			return err
		}
		vopts = append(vopts, verify.WithMultiplyOptions(e.multiplyOptions(ctx, kf.threshold, kf.workers, kf.progress)...))
		r, err := verify.PSP(p, s, vopts...)
		if err != nil {
			e.log.LogVerify(ctx, false, 0, 0, err)
			return err
		}
		equal, size, elapsed = r.Equal, r.NNZ, r.Timings.Total()
	}
	e.log.LogVerify(ctx, equal, size, elapsed, nil)

	k := fmt.Sprintf("%g", *factor)
	if equal {
		fmt.Fprintf(e.stdout, "PSP is equal to %sP!\n", k)
	} else {
		fmt.Fprintf(e.stdout, "PSP is NOT equal to %sP.\n", k)
	}

	return nil
}
