// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/spmat/matrix"
)

// kernelFlags are the multiply knobs shared by psp2p, multrace and bench.
type kernelFlags struct {
	threshold float64
	workers   int
	progress  time.Duration
	scan      bool
}

func (k *kernelFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&k.threshold, "threshold", matrix.DefaultThreshold,
		fmt.Sprintf("drop |v| below this on load and in products (e.g. %g)", matrix.TightThreshold))
	fs.IntVar(&k.workers, "workers", runtime.NumCPU(), "row-sharded multiply workers")
	fs.DurationVar(&k.progress, "progress", matrix.DefaultProgressInterval, "minimum spacing of debug progress records")
	fs.BoolVar(&k.scan, "scan", false, "use the dense-index reference kernel (slow, identical result)")
}

func (k *kernelFlags) validate() error {
	switch {
	case math.IsNaN(k.threshold) || math.IsInf(k.threshold, 0) || k.threshold < 0:
		return fmt.Errorf("-threshold must be finite and >= 0, got %g", k.threshold)
	case k.workers < 1:
		return fmt.Errorf("-workers must be >= 1, got %d", k.workers)
	case k.progress <= 0:
		return fmt.Errorf("-progress must be > 0, got %s", k.progress)
	}

	return nil
}

// multiply runs the selected kernel.
func (k *kernelFlags) multiply(a, b *matrix.Sparse, opts []matrix.Option) (*matrix.Sparse, error) {
	if k.scan {
		return matrix.MultiplyScan(a, b, opts...)
	}

	return matrix.Multiply(a, b, opts...)
}
