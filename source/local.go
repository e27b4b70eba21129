// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local reads and writes plain files; the URI is the path.
type Local struct{}

// Open opens path for reading.
func (Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create truncates or creates path, making parent directories as needed.
func (Local) Create(_ context.Context, path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return os.Create(path)
}
