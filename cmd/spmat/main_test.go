package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/matrix"
	"github.com/katalvlaran/spmat/mtx"
	"github.com/katalvlaran/spmat/snapshot"
)

// spmat runs the CLI in-process and returns exit code, stdout and stderr.
func spmat(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeMatrix(t *testing.T, dir, name string, m *matrix.Sparse) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, mtx.WriteFile(path, m))

	return path
}

func diag(t *testing.T, d ...float64) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewDiagonal(d)
	require.NoError(t, err)

	return m
}

func traceLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.HasPrefix(l, "Trace") {
			out = append(out, l)
		}
	}
	return out
}

func TestUsage(t *testing.T) {
	code, _, stderr := spmat(t)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "psp2p")

	code, _, stderr = spmat(t, "frobnicate")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, `unknown command "frobnicate"`)

	code, _, _ = spmat(t, "psp2p", "-bogus")
	require.Equal(t, 2, code)

	code, _, _ = spmat(t, "head", "-h")
	require.Equal(t, 0, code)
}

func TestPSP2P(t *testing.T) {
	dir := t.TempDir()
	two := make([]float64, 20)
	one := make([]float64, 20)
	for i := range two {
		two[i], one[i] = 2, 1
	}
	p := writeMatrix(t, dir, "P.mtx", diag(t, two...))
	s := writeMatrix(t, dir, "S.mtx.gz", diag(t, one...))

	code, stdout, stderr := spmat(t, "psp2p", "-p", p, "-s", s)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "PSP is equal to 2P!\n", stdout)
	require.Contains(t, stderr, "identity holds")

	code, stdout, _ = spmat(t, "psp2p", "-p", p, "-s", s, "-ordered", "-log-format", "json")
	require.Equal(t, 0, code)
	require.Equal(t, "PSP is equal to 2P!\n", stdout)

	one[3] = 1 + 1e-3
	bad := writeMatrix(t, dir, "S_bad.mtx", diag(t, one...))
	code, stdout, _ = spmat(t, "psp2p", "-p", p, "-s", bad, "-workers", "2")
	require.Equal(t, 0, code)
	require.Equal(t, "PSP is NOT equal to 2P.\n", stdout)

	snap := filepath.Join(dir, "P.snap")
	require.NoError(t, snapshot.Write(snap, diag(t, two...)))
	code, stdout, _ = spmat(t, "psp2p", "-p", snap, "-s", s)
	require.Equal(t, 0, code)
	require.Equal(t, "PSP is equal to 2P!\n", stdout)
}

func TestPSP2PErrors(t *testing.T) {
	code, _, stderr := spmat(t, "psp2p", "-s", "x.mtx")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "-p is required")

	absent := filepath.Join(t.TempDir(), "absent.mtx")
	code, _, stderr = spmat(t, "psp2p", "-p", absent, "-s", absent)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "level=ERROR")
	require.Contains(t, stderr, "load failed")

	code, _, stderr = spmat(t, "psp2p", "-p", "a", "-s", "b", "-workers", "0")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "-workers")
}

func TestMulTrace(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrix(t, dir, "A.mtx", diag(t, 1, 1, 1))
	b := writeMatrix(t, dir, "B.mtx.lz4", diag(t, 1, 2, 3))
	out := filepath.Join(dir, "C.snap")

	for _, extra := range [][]string{nil, {"-scan"}} {
		args := append([]string{"multrace", "-a", a, "-b", b, "-out", out}, extra...)
		code, stdout, stderr := spmat(t, args...)
		require.Equal(t, 0, code, stderr)
		require.Contains(t, stdout, "Trace of the result matrix :: 6\n")
	}

	s, err := snapshot.Open(out)
	require.NoError(t, err)
	defer s.Close()
	require.Equal(t, 3, s.Len())
}

// TestBenchCache checks that cached operands reproduce the generated run.
func TestBenchCache(t *testing.T) {
	cache := t.TempDir()
	args := []string{"bench", "-start", "20", "-step", "10", "-count", "2", "-iterations", "2", "-cache", cache}

	code, first, stderr := spmat(t, args...)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, first, "For 20 by 20")
	require.Contains(t, first, "For 30 by 30")
	require.Len(t, traceLines(first), 4)

	entries, err := os.ReadDir(cache)
	require.NoError(t, err)
	require.Len(t, entries, 4) // A and B per size

	code, second, _ := spmat(t, args...)
	require.Equal(t, 0, code)
	require.Equal(t, traceLines(first), traceLines(second))

	code, third, _ := spmat(t, "bench", "-start", "20", "-count", "1", "-iterations", "1")
	require.Equal(t, 0, code)
	require.Equal(t, traceLines(first)[0], traceLines(third)[0]) // same seed stream without cache
}

func TestGenAndHead(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "g.mtx.zst")

	code, stdout, stderr := spmat(t, "gen", "-rows", "50", "-degree", "5", "-seed", "3", "-out", out)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "noe :: 250")
	require.Contains(t, stdout, "non-zero (%) :: 10.000000")

	code, stdout, _ = spmat(t, "head", "-in", out, "-n", "3")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[1], "Row: 1, Col: 1, Value: ")) // row 0 starts at its diagonal

	code, _, _ = spmat(t, "gen", "-rows", "5", "-cols", "4")
	require.Equal(t, 1, code) // rows > cols
}

func TestSubmatrix(t *testing.T) {
	dir := t.TempDir()
	in := writeMatrix(t, dir, "I.mtx", diag(t, 1, 2, 3, 4, 5))
	out := filepath.Join(dir, "sub.mtx")

	code, stdout, stderr := spmat(t, "submatrix", "-in", in, "-out", out, "-rows", "2", "-cols", "2")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "Submatrix saved to "+out+"\n", stdout)

	m, h, err := mtx.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, 2, h.Rows)
	require.Equal(t, []matrix.Entry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 2}}, m.Entries())
}
