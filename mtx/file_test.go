package mtx_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/matrix"
	"github.com/katalvlaran/spmat/mtx"
)

func TestCompressionFor(t *testing.T) {
	cases := map[string]mtx.Compression{
		"a.mtx":                  mtx.CompressionNone,
		"a.mtx.zst":              mtx.CompressionZSTD,
		"A.MTX.GZ":               mtx.CompressionGzip,
		"s3://bucket/x/a.lz4":    mtx.CompressionLZ4,
		"minio://b/k.mtx.zstd":   mtx.CompressionZSTD,
		"/tmp/no_extension_here": mtx.CompressionNone,
	}
	for name, want := range cases {
		require.Equal(t, want, mtx.CompressionFor(name), name)
	}
	require.Equal(t, "gzip", mtx.CompressionGzip.String())
}

// TestFileRoundTrip writes and reads back through every compression layer.
func TestFileRoundTrip(t *testing.T) {
	m, err := matrix.NewSparse(30, 30)
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		require.NoError(t, m.Set(i, i, float64(i)+0.5))
		require.NoError(t, m.Set(i, (i*7)%30, -1.25))
	}

	magic := map[string][]byte{
		".zst": {0x28, 0xb5, 0x2f, 0xfd},
		".gz":  {0x1f, 0x8b},
		".lz4": {0x04, 0x22, 0x4d, 0x18},
	}
	dir := t.TempDir()
	for _, ext := range []string{"", ".zst", ".gz", ".lz4"} {
		t.Run("ext"+ext, func(t *testing.T) {
			name := filepath.Join(dir, "m.mtx"+ext)
			require.NoError(t, mtx.WriteFile(name, m))

			raw, err := os.ReadFile(name)
			require.NoError(t, err)
			if want, ok := magic[ext]; ok {
				require.True(t, bytes.HasPrefix(raw, want), "magic for %s", ext)
			} else {
				require.True(t, bytes.HasPrefix(raw, []byte(mtx.Banner)))
			}

			back, h, err := mtx.ReadFile(name, mtx.WithStrictCount())
			require.NoError(t, err)
			require.Equal(t, m.NNZ(), h.NNZ)
			require.Equal(t, m.Entries(), back.Entries())

			tr, _, err := mtx.ReadTripletsFile(name)
			require.NoError(t, err)
			require.Equal(t, m.Entries(), tr.Entries())
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := mtx.ReadFile(filepath.Join(t.TempDir(), "absent.mtx"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// memStore is an in-memory Opener/Creator.
type memStore map[string][]byte

type memWriter struct {
	bytes.Buffer
	store memStore
	key   string
}

func (w *memWriter) Close() error {
	w.store[w.key] = w.Bytes()
	return nil
}

func (s memStore) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	b, ok := s[uri]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s memStore) Create(_ context.Context, uri string) (io.WriteCloser, error) {
	return &memWriter{store: s, key: uri}, nil
}

func TestLoadStore(t *testing.T) {
	m, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	store := memStore{}
	const uri = "mem://bucket/identity.mtx.zst"
	require.NoError(t, mtx.Store(context.Background(), store, uri, m))
	require.Contains(t, store, uri)

	back, h, err := mtx.Load(context.Background(), store, uri)
	require.NoError(t, err)
	require.Equal(t, 5, h.Rows)
	require.Equal(t, m.Entries(), back.Entries())

	tr, _, err := mtx.LoadTriplets(context.Background(), store, uri)
	require.NoError(t, err)
	require.Equal(t, 5, tr.Len())

	_, _, err = mtx.Load(context.Background(), store, "mem://bucket/missing.mtx")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorIs(t, mtx.Store(context.Background(), store, uri, nil), matrix.ErrNilMatrix)
}
