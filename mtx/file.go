// SPDX-License-Identifier: MIT

package mtx

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spmat/matrix"
)

// Opener opens a named object for reading (local file, S3 object, ...).
type Opener interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// Creator creates or truncates a named object for writing. The write is
// complete only once Close returns nil.
type Creator interface {
	Create(ctx context.Context, uri string) (io.WriteCloser, error)
}

// ReadFile decodes a local file, decompressing by extension.
func ReadFile(name string, opts ...Option) (*matrix.Sparse, Header, error) {
	return Load(context.Background(), localFS{}, name, opts...)
}

// ReadTripletsFile is ReadFile keeping the unmerged entry sequence.
func ReadTripletsFile(name string, opts ...Option) (*matrix.Triplets, Header, error) {
	return LoadTriplets(context.Background(), localFS{}, name, opts...)
}

// WriteFile encodes m to a local file, compressing by extension.
func WriteFile(name string, m *matrix.Sparse, opts ...Option) error {
	return Store(context.Background(), localFS{}, name, m, opts...)
}

// Load opens uri through o and decodes it.
func Load(ctx context.Context, o Opener, uri string, opts ...Option) (*matrix.Sparse, Header, error) {
	rc, err := openDecompressed(ctx, o, uri)
	if err != nil {
		return nil, Header{}, err
	}
	defer rc.Close()

	m, h, err := Decode(rc, opts...)
	if err != nil {
		return nil, h, fmt.Errorf("mtx: %s: %w", uri, err)
	}

	return m, h, nil
}

// LoadTriplets opens uri through o and decodes it as Triplets.
func LoadTriplets(ctx context.Context, o Opener, uri string, opts ...Option) (*matrix.Triplets, Header, error) {
	rc, err := openDecompressed(ctx, o, uri)
	if err != nil {
		return nil, Header{}, err
	}
	defer rc.Close()

	t, h, err := DecodeTriplets(rc, opts...)
	if err != nil {
		return nil, h, fmt.Errorf("mtx: %s: %w", uri, err)
	}

	return t, h, nil
}

// Store encodes m to uri through c. The object is finalized by Close; its
// error is returned.
func Store(ctx context.Context, c Creator, uri string, m *matrix.Sparse, opts ...Option) (err error) {
	if m == nil {
		return fmt.Errorf("mtx: Store: %w", matrix.ErrNilMatrix)
	}
	wc, err := c.Create(ctx, uri)
	if err != nil {
		return fmt.Errorf("mtx: create %s: %w", uri, err)
	}
	w, err := NewWriter(wc, CompressionFor(uri))
	if err != nil {
		wc.Close()
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("mtx: close %s: %w", uri, cerr)
		}
	}()

	return Encode(w, m, opts...)
}

func openDecompressed(ctx context.Context, o Opener, uri string) (io.ReadCloser, error) {
	src, err := o.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("mtx: open %s: %w", uri, err)
	}
	rc, err := NewReader(src, CompressionFor(uri))
	if err != nil {
		src.Close()
		return nil, err
	}

	return rc, nil
}

// localFS is the plain-path Opener/Creator behind ReadFile and WriteFile.
type localFS struct{}

func (localFS) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (localFS) Create(_ context.Context, name string) (io.WriteCloser, error) {
	return os.Create(name)
}
