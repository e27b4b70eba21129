// Package mtx_test contains tests for the MatrixMarket codec.
package mtx_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/matrix"
	"github.com/katalvlaran/spmat/mtx"
)

const sample = `%%MatrixMarket matrix coordinate real general
% leading comment
3 3 4
1 1 2.5
% interleaved comment

2 3 -1
3 3 1e-12
1 1 4
`

func TestDecode(t *testing.T) {
	m, h, err := mtx.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, mtx.Header{Rows: 3, Cols: 3, NNZ: 4, Banner: mtx.Banner}, h)
	require.Equal(t, []matrix.Entry{
		{Row: 0, Col: 0, Value: 4}, // overwritten in place
		{Row: 1, Col: 2, Value: -1},
		{Row: 2, Col: 2, Value: 1e-12},
	}, m.Entries())
}

func TestDecodeThreshold(t *testing.T) {
	m, _, err := mtx.Decode(strings.NewReader(sample), mtx.WithThreshold(matrix.TightThreshold))
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
	require.False(t, m.Has(2, 2))
	require.Equal(t, matrix.TightThreshold, m.Threshold()) // later Sets follow the same policy
}

func TestDecodeTriplets(t *testing.T) {
	tr, h, err := mtx.DecodeTriplets(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 4, h.NNZ)
	require.Equal(t, 4, tr.Len()) // duplicates kept
	require.Equal(t, matrix.Entry{Row: 0, Col: 0, Value: 2.5}, tr.Head(1)[0])

	_, _, err = mtx.DecodeTriplets(strings.NewReader("1 1 1\n1 1 inf\n"))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDecodeNoHeader(t *testing.T) {
	for _, in := range []string{"", "% only a comment\n\n", "%%MatrixMarket matrix coordinate real general\n"} {
		_, _, err := mtx.Decode(strings.NewReader(in))
		require.ErrorIs(t, err, mtx.ErrNoHeader, "input %q", in)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"short header", "3 3\n", 1, mtx.ErrMalformed},
		{"negative header", "% c\n3 -3 0\n", 2, mtx.ErrMalformed},
		{"text token", "3 3 1\n1 x 2\n", 2, mtx.ErrMalformed},
		{"zero index", "3 3 1\n0 1 2\n", 2, mtx.ErrMalformed},
		{"extra token", "3 3 1\n1 1 2 9\n", 2, mtx.ErrMalformed},
		{"bad value", "3 3 1\n\n1 1 two\n", 3, mtx.ErrMalformed},
		{"nan value", "3 3 1\n1 1 nan\n", 2, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := mtx.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)

			var pe *mtx.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestDecodeStrictCount(t *testing.T) {
	in := "2 2 3\n1 1 1\n2 2 2\n"
	_, _, err := mtx.Decode(strings.NewReader(in))
	require.NoError(t, err) // informational by default

	_, _, err = mtx.Decode(strings.NewReader(in), mtx.WithStrictCount())
	require.ErrorIs(t, err, mtx.ErrCountMismatch)

	_, _, err = mtx.Decode(strings.NewReader(sample), mtx.WithStrictCount())
	require.NoError(t, err)
}

func TestEncode(t *testing.T) {
	m, _, err := mtx.Decode(strings.NewReader("3 3 2\n1 1 4\n2 3 -1\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mtx.Encode(&buf, m))
	require.Equal(t, mtx.Banner+"\n% generated by spmat\n3 3 2\n1 1 4\n2 3 -1\n", buf.String())

	buf.Reset()
	require.NoError(t, mtx.Encode(&buf, m, mtx.WithComment("")))
	require.Equal(t, mtx.Banner+"\n3 3 2\n1 1 4\n2 3 -1\n", buf.String())

	buf.Reset()
	require.NoError(t, mtx.Encode(&buf, m, mtx.WithComment("a\nb")))
	require.Contains(t, buf.String(), "\n% a\n% b\n")

	require.ErrorIs(t, mtx.Encode(&buf, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, mtx.EncodeTriplets(&buf, nil), matrix.ErrNilMatrix)
}

// TestRoundTrip checks that shortest formatting reproduces every value bit for bit.
func TestRoundTrip(t *testing.T) {
	m, err := matrix.NewSparse(4, 5)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 4, 0.1+0.2))
	require.NoError(t, m.Set(3, 0, -1.0/3))
	require.NoError(t, m.Set(2, 2, 6.02214076e23))
	require.NoError(t, m.Set(1, 3, 5e-324))

	var buf bytes.Buffer
	require.NoError(t, mtx.Encode(&buf, m))

	back, h, err := mtx.Decode(&buf, mtx.WithStrictCount())
	require.NoError(t, err)
	require.Equal(t, 4, h.Rows)
	require.Equal(t, 5, h.Cols)
	require.Equal(t, m.Entries(), back.Entries())
}

func TestEncodeTriplets(t *testing.T) {
	tr, err := matrix.TripletsOf(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 0, Value: 2},
		{Row: 1, Col: 1, Value: 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mtx.EncodeTriplets(&buf, tr, mtx.WithComment("")))
	require.Equal(t, mtx.Banner+"\n2 2 3\n1 1 1\n1 1 2\n2 2 0\n", buf.String())

	back, _, err := mtx.DecodeTriplets(&buf)
	require.NoError(t, err)
	require.Equal(t, tr.Entries(), back.Entries())
}
