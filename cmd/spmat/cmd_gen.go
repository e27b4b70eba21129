// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spmat/builder"
	"github.com/katalvlaran/spmat/internal/rusage"
)

// runGen generates one matrix, prints its density and peak RSS, and
// optionally stores it.
func runGen(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("gen")
	var (
		rows   = fs.Int("rows", 1000, "rows")
		cols   = fs.Int("cols", 0, "columns (default rows)")
		degree = fs.Int("degree", builder.DefaultDegree, "entries per row, diagonal included")
		seed   = fs.Int64("seed", 1, "generator seed")
		out    = fs.String("out", "", "optional destination (.mtx[.zst|.gz|.lz4], s3://, minio:// or .snap)")
	)
	if err := e.parse(fs, args); err != nil {
		return err
	}
	if *cols == 0 {
		*cols = *rows
	}
	if *degree < 1 {
		return fmt.Errorf("-degree must be >= 1, got %d", *degree)
	}

	m, err := builder.RandomSparse(*rows, *cols, builder.WithSeed(*seed), builder.WithDegree(*degree))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "Mat.rows :: %d\t Mat.cols :: %d\t noe :: %d\t non-zero (%%) :: %.6f\n",
		m.Rows(), m.Cols(), m.NNZ(), 100*m.Density())

	if rss, err := rusage.PeakRSS(); err == nil {
		fmt.Fprintf(e.stdout, "Peak memory usage :: %s\n", rusage.Bytes(rss))
	} else {
		e.log.Debug("peak rss unavailable", "error", err)
	}

	if *out != "" {
		comment := fmt.Sprintf("random %dx%d, degree %d, seed %d", *rows, *cols, *degree, *seed)
		return e.storeSparse(ctx, *out, m, comment)
	}

	return nil
}
