// SPDX-License-Identifier: MIT

package mtx

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmat/matrix"
)

const (
	bannerPrefix = "%%MatrixMarket"
	maxLineSize  = 1 << 20 // longest accepted input line
)

// Header is the size line of a MatrixMarket file.
type Header struct {
	Rows   int    // declared rows
	Cols   int    // declared columns
	NNZ    int    // declared entry count (informational unless WithStrictCount)
	Banner string // "%%MatrixMarket ..." line seen before the header, if any
}

// Decode parses r into a *matrix.Sparse.
//
// Comment lines ('%' first) and blank lines are skipped anywhere. The first
// other line is the header; every following line is a 1-based entry. Later
// duplicates overwrite earlier ones. Values with |v| < threshold are dropped
// (WithThreshold); exact zeros are never stored.
//
// Errors: ErrNoHeader, *ParseError (wrapping ErrMalformed or a matrix
// sentinel), ErrCountMismatch under WithStrictCount, or the reader's error.
func Decode(r io.Reader, opts ...Option) (*matrix.Sparse, Header, error) {
	o := gatherOptions(opts...)
	mopts := append([]matrix.Option{matrix.WithThreshold(o.threshold)}, o.matrixOpts...)

	var m *matrix.Sparse
	h, err := scan(r, o,
		func(h Header) (err error) {
			m, err = matrix.NewSparse(h.Rows, h.Cols, mopts...)
			return err
		},
		func(i, j int, v float64) error { return m.Set(i, j, v) },
	)
	if err != nil {
		return nil, h, err
	}

	return m, h, nil
}

// DecodeTriplets parses r into an ordered, unmerged sequence: duplicates and
// explicit zeros are kept as written. Non-finite values are rejected
// (matrix.ErrNaNInf); WithThreshold drops |v| < t.
func DecodeTriplets(r io.Reader, opts ...Option) (*matrix.Triplets, Header, error) {
	o := gatherOptions(opts...)

	var t *matrix.Triplets
	h, err := scan(r, o,
		func(h Header) (err error) {
			t, err = matrix.NewTriplets(h.Rows, h.Cols)
			return err
		},
		func(i, j int, v float64) error {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrix.ErrNaNInf
			}
			return t.Append(i, j, v)
		},
	)
	if err != nil {
		return nil, h, err
	}

	return t, h, nil
}

// scan drives the line parser, reporting the header once and then each entry
// (0-based) to the callbacks.
func scan(r io.Reader, o options, onHeader func(Header) error, onEntry func(i, j int, v float64) error) (Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		h          Header
		haveHeader bool
		line       int
		count      int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '%' {
			if !haveHeader && h.Banner == "" && strings.HasPrefix(trimmed, bannerPrefix) {
				h.Banner = trimmed
			}
			continue
		}

		fields := strings.Fields(trimmed)
		if !haveHeader {
			rows, cols, nnz, err := parseTriple(fields)
			if err != nil {
				return h, &ParseError{Line: line, Text: text, Err: err}
			}
			h.Rows, h.Cols, h.NNZ = rows, cols, nnz
			haveHeader = true
			if err = onHeader(h); err != nil {
				return h, &ParseError{Line: line, Text: text, Err: err}
			}
			continue
		}

		i, j, v, err := parseEntry(fields)
		if err != nil {
			return h, &ParseError{Line: line, Text: text, Err: err}
		}
		count++
		if o.threshold > 0 && math.Abs(v) < o.threshold {
			continue
		}
		if err = onEntry(i, j, v); err != nil {
			return h, &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return h, fmt.Errorf("mtx: read: %w", err)
	}
	if !haveHeader {
		return h, ErrNoHeader
	}
	if o.strictCount && count != h.NNZ {
		return h, fmt.Errorf("%w: header %d, entries %d", ErrCountMismatch, h.NNZ, count)
	}

	return h, nil
}

// parseTriple parses "rows cols nnz" (all >= 0).
func parseTriple(fields []string) (rows, cols, nnz int, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, malformedf("header wants 3 tokens, got %d", len(fields))
	}
	var vals [3]int
	for k, f := range fields {
		n, perr := strconv.Atoi(f)
		if perr != nil || n < 0 {
			return 0, 0, 0, malformedf("header token %q", f)
		}
		vals[k] = n
	}

	return vals[0], vals[1], vals[2], nil
}

// parseEntry parses "row col value" with 1-based indices, returning 0-based ones.
func parseEntry(fields []string) (i, j int, v float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, malformedf("entry wants 3 tokens, got %d", len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil || row < 1 {
		return 0, 0, 0, malformedf("row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil || col < 1 {
		return 0, 0, 0, malformedf("col %q", fields[1])
	}
	v, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, malformedf("value %q", fields[2])
	}

	return row - 1, col - 1, v, nil
}

// Encode writes m in insertion order: banner, comment, header, entries.
func Encode(w io.Writer, m *matrix.Sparse, opts ...Option) error {
	if m == nil {
		return fmt.Errorf("mtx: Encode: %w", matrix.ErrNilMatrix)
	}

	return encode(w, gatherOptions(opts...), m.Rows(), m.Cols(), m.NNZ(), m.Range)
}

// EncodeTriplets writes t entry by entry, duplicates included.
func EncodeTriplets(w io.Writer, t *matrix.Triplets, opts ...Option) error {
	if t == nil {
		return fmt.Errorf("mtx: EncodeTriplets: %w", matrix.ErrNilMatrix)
	}

	return encode(w, gatherOptions(opts...), t.Rows(), t.Cols(), t.Len(), t.Range)
}

func encode(w io.Writer, o options, rows, cols, nnz int, each func(func(matrix.Entry) bool)) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Banner)
	bw.WriteByte('\n')
	if o.comment != "" {
		for _, c := range strings.Split(o.comment, "\n") {
			bw.WriteString("% ")
			bw.WriteString(c)
			bw.WriteByte('\n')
		}
	}
	fmt.Fprintf(bw, "%d %d %d\n", rows, cols, nnz)

	var (
		buf  = make([]byte, 0, 64)
		werr error
	)
	each(func(e matrix.Entry) bool {
		buf = strconv.AppendInt(buf[:0], int64(e.Row)+1, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.Col)+1, 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.Value, 'g', -1, 64)
		buf = append(buf, '\n')
		_, werr = bw.Write(buf)

		return werr == nil
	})
	if werr != nil {
		return fmt.Errorf("mtx: write: %w", werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mtx: write: %w", err)
	}

	return nil
}
