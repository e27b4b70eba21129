// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/spmat/builder"
	"github.com/katalvlaran/spmat/matrix"
)

// runBench times A·B for generated n×n operands over growing sizes.
func runBench(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("bench")
	var (
		kf     kernelFlags
		start  = fs.Int("start", 1000, "first dimension")
		step   = fs.Int("step", 1000, "dimension increment")
		count  = fs.Int("count", 10, "number of sizes")
		iters  = fs.Int("iterations", 10, "products per size")
		degree = fs.Int("degree", builder.DefaultDegree, "entries per row, diagonal included")
		seed   = fs.Int64("seed", 1, "generator seed; each size uses an independent stream")
		cache  = fs.String("cache", "", "directory of operand snapshots reused across runs")
	)
	kf.register(fs)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if err := kf.validate(); err != nil {
		return err
	}
	if *start < 1 || *step < 0 || *count < 1 || *iters < 1 || *degree < 1 {
		return errors.New("-start, -count, -iterations and -degree must be >= 1, -step >= 0")
	}
	mopts := e.multiplyOptions(ctx, kf.threshold, kf.workers, kf.progress)

	for s := 0; s < *count; s++ {
		n := *start + s*(*step)
		t0 := time.Now()
		a, b, err := benchOperands(ctx, e, n, *degree, builder.SplitSeed(*seed, uint64(n)), *cache)
		if err != nil {
			return fmt.Errorf("operands %d×%d: %w", n, n, err)
		}
		created := time.Since(t0)
		fmt.Fprintf(e.stdout, "\nFor %d by %d\n", n, n)

		for it := 0; it < *iters; it++ {
			if err = ctx.Err(); err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "\nIteration %d for dimension %d\n", it, n)
			fmt.Fprintf(e.stdout, "Time taken for matrix creation :: %s\n", created.Round(time.Millisecond))

			t1 := time.Now()
			c, err := kf.multiply(a, b, mopts)
			elapsed := time.Since(t1)
			e.log.LogMultiply(ctx, fmt.Sprintf("A·B n=%d it=%d", n, it), nnzOf(c), elapsed, err)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.stdout, "Time taken for matrix multiplication :: %s\n", elapsed.Round(time.Millisecond))
			fmt.Fprintf(e.stdout, "Trace of the result matrix :: %g\n", matrix.Trace(c, n))
		}
	}

	return nil
}

// benchOperands generates a shared-pattern pair, or reloads it from cache.
func benchOperands(ctx context.Context, e *env, n, degree int, seed int64, cache string) (a, b *matrix.Sparse, err error) {
	if cache == "" {
		return builder.RandomSparsePair(n, n, builder.WithSeed(seed), builder.WithDegree(degree))
	}

	base := filepath.Join(cache, fmt.Sprintf("n%d_d%d_s%d", n, degree, seed))
	aPath, bPath := base+"_A"+snapshotExt, base+"_B"+snapshotExt
	if a, err = readSnapshot(aPath); err == nil {
		if b, err = readSnapshot(bPath); err == nil {
			e.log.Debug("operands reloaded", "a", aPath, "b", bPath)
			return a, b, nil
		}
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, nil, err
	}

	if a, b, err = builder.RandomSparsePair(n, n, builder.WithSeed(seed), builder.WithDegree(degree)); err != nil {
		return nil, nil, err
	}
	if err = os.MkdirAll(cache, 0o755); err != nil {
		return nil, nil, err
	}
	if err = e.storeSparse(ctx, aPath, a, ""); err != nil {
		return nil, nil, err
	}
	if err = e.storeSparse(ctx, bPath, b, ""); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func nnzOf(m *matrix.Sparse) int {
	if m == nil {
		return 0
	}
	return m.NNZ()
}
