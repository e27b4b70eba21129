package rusage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeakRSS(t *testing.T) {
	n, err := PeakRSS()
	if errors.Is(err, ErrUnsupported) {
		t.Skip(err)
	}
	require.NoError(t, err)
	require.Greater(t, n, int64(1024)) // a Go test binary is larger than 1 KiB
}

func TestBytes(t *testing.T) {
	require.Equal(t, "512 B", Bytes(512))
	require.Equal(t, "1.0 KiB", Bytes(1024))
	require.Equal(t, "1.5 MiB", Bytes(3<<19))
	require.Equal(t, "2.0 GiB", Bytes(2<<30))
}
