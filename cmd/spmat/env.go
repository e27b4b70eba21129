// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/spmat/internal/logging"
	"github.com/katalvlaran/spmat/matrix"
	"github.com/katalvlaran/spmat/mtx"
	"github.com/katalvlaran/spmat/snapshot"
	"github.com/katalvlaran/spmat/source"
)

// errUsage marks a flag error already reported by the FlagSet.
var errUsage = errors.New("usage")

// snapshotExt selects the mmap snapshot codec instead of MatrixMarket.
const snapshotExt = ".snap"

// env carries the streams and backends shared by every command.
type env struct {
	stdout, stderr io.Writer
	store          *source.Router
	log            *logging.Logger

	logLevel  string
	logFormat string
}

func newEnv(stdout, stderr io.Writer) *env {
	return &env{
		stdout: stdout,
		stderr: stderr,
		store:  source.NewRouter(),
		log:    logging.NoopLogger(),
	}
}

// flagSet returns a FlagSet carrying the logging flags.
func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("spmat "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVar(&e.logLevel, "log-level", "info", "diagnostic level: debug, info, warn, error")
	fs.StringVar(&e.logFormat, "log-format", "text", "diagnostic format: text or json")

	return fs
}

// parse parses args and builds the logger.
func (e *env) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(e.stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}

	level, err := logging.ParseLevel(e.logLevel)
	if err != nil {
		return err
	}
	switch e.logFormat {
	case "text":
		e.log = logging.NewTextLogger(e.stderr, level).WithOp(strings.TrimPrefix(fs.Name(), "spmat "))
	case "json":
		e.log = logging.NewJSONLogger(e.stderr, level).WithOp(strings.TrimPrefix(fs.Name(), "spmat "))
	default:
		return fmt.Errorf("unknown -log-format %q", e.logFormat)
	}

	return nil
}

// required reports an empty mandatory string flag.
func required(fs *flag.FlagSet, names ...string) error {
	for _, n := range names {
		if fs.Lookup(n).Value.String() == "" {
			return fmt.Errorf("-%s is required", n)
		}
	}

	return nil
}

func isSnapshot(uri string) bool { return strings.HasSuffix(uri, snapshotExt) }

// loadSparse reads a MatrixMarket URI or a local snapshot, dropping |v| < threshold.
func (e *env) loadSparse(ctx context.Context, uri string, threshold float64) (*matrix.Sparse, error) {
	start := time.Now()
	var (
		m   *matrix.Sparse
		err error
	)
	if isSnapshot(uri) {
		m, err = readSnapshot(uri, matrix.WithThreshold(threshold))
	} else {
		m, _, err = mtx.Load(ctx, e.store, uri, mtx.WithThreshold(threshold))
	}
	if err != nil {
		e.log.LogDecode(ctx, uri, 0, 0, 0, 0, err)
		return nil, err
	}
	e.log.LogDecode(ctx, uri, m.Rows(), m.Cols(), m.NNZ(), time.Since(start), nil)

	return m, nil
}

// loadTriplets reads uri keeping file order and duplicates.
func (e *env) loadTriplets(ctx context.Context, uri string) (*matrix.Triplets, error) {
	start := time.Now()
	var (
		t   *matrix.Triplets
		err error
	)
	if isSnapshot(uri) {
		var s *snapshot.Snapshot
		if s, err = snapshot.Open(uri); err == nil {
			t, err = s.Triplets()
			s.Close()
		}
	} else {
		t, _, err = mtx.LoadTriplets(ctx, e.store, uri)
	}
	if err != nil {
		e.log.LogDecode(ctx, uri, 0, 0, 0, 0, err)
		return nil, err
	}
	e.log.LogDecode(ctx, uri, t.Rows(), t.Cols(), t.Len(), time.Since(start), nil)

	return t, nil
}

// storeSparse writes m as a snapshot or a MatrixMarket object.
func (e *env) storeSparse(ctx context.Context, uri string, m *matrix.Sparse, comment string) error {
	var err error
	if isSnapshot(uri) {
		err = snapshot.Write(uri, m)
	} else {
		err = mtx.Store(ctx, e.store, uri, m, mtx.WithComment(comment))
	}
	e.log.LogStore(ctx, uri, m.NNZ(), err)

	return err
}

func readSnapshot(path string, opts ...matrix.Option) (*matrix.Sparse, error) {
	s, err := snapshot.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Sparse(opts...)
}

// multiplyOptions builds the kernel options shared by product commands.
func (e *env) multiplyOptions(ctx context.Context, threshold float64, workers int, progress time.Duration) []matrix.Option {
	return []matrix.Option{
		matrix.WithContext(ctx),
		matrix.WithThreshold(threshold),
		matrix.WithWorkers(workers),
		matrix.WithLogger(e.log.Logger),
		matrix.WithProgressInterval(progress),
	}
}
