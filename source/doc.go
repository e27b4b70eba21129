// SPDX-License-Identifier: MIT

// Package source resolves matrix locations to readable and writable streams.
//
// Supported locations:
//
//	/path/to/a.mtx, file:///path/to/a.mtx   local filesystem
//	s3://bucket/key.mtx.zst                 AWS S3 (default credential chain)
//	minio://bucket/key.mtx                  MinIO or any S3-compatible endpoint
//
// Router satisfies mtx.Opener and mtx.Creator, so a single value serves both
// directions:
//
//	r := source.NewRouter()
//	m, _, err := mtx.Load(ctx, r, "s3://matrices/P.mtx.zst")
//
// Remote backends are built on first use unless injected with WithS3 or
// WithMinIO. MinIO reads its endpoint and credentials from SPMAT_MINIO_*
// variables (see MinIOFromEnv).
//
// Writes stream through an io.Pipe into a background upload; the object is
// committed only when Close returns nil.
package source
