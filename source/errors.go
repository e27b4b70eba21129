// SPDX-License-Identifier: MIT

package source

import "errors"

var (
	// ErrUnsupportedScheme is returned for a URI scheme with no backend.
	ErrUnsupportedScheme = errors.New("source: unsupported scheme")

	// ErrBadURI is returned when a remote URI lacks a bucket or a key.
	ErrBadURI = errors.New("source: malformed uri")

	// ErrNotFound is returned when a remote object does not exist.
	// Local misses surface as os.ErrNotExist.
	ErrNotFound = errors.New("source: object not found")

	// ErrMissingConfig is returned when a backend cannot be configured from
	// the environment.
	ErrMissingConfig = errors.New("source: missing backend configuration")

	errAlreadyClosed = errors.New("source: writer already closed")
)
