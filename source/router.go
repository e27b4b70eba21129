// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"io"
	"sync"
)

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithS3 injects the backend for s3:// locations.
func WithS3(s *S3) RouterOption {
	return func(r *Router) { r.s3 = s }
}

// WithMinIO injects the backend for minio:// locations.
func WithMinIO(m *MinIO) RouterOption {
	return func(r *Router) { r.minio = m }
}

// Router dispatches on the URI scheme. It is safe for concurrent use.
type Router struct {
	mu    sync.Mutex
	local Local
	s3    *S3
	minio *MinIO
}

// NewRouter returns a Router; remote backends not injected are built from
// the environment on first use.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Open implements mtx.Opener.
func (r *Router) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := Parse(uri)
	if err != nil {
		return nil, err
	}
	switch loc.Scheme {
	case SchemeS3:
		s, err := r.s3Backend(ctx)
		if err != nil {
			return nil, err
		}
		return s.Open(ctx, loc.Bucket, loc.Key)
	case SchemeMinIO:
		m, err := r.minioBackend()
		if err != nil {
			return nil, err
		}
		return m.Open(ctx, loc.Bucket, loc.Key)
	default:
		return r.local.Open(ctx, loc.Key)
	}
}

// Create implements mtx.Creator.
func (r *Router) Create(ctx context.Context, uri string) (io.WriteCloser, error) {
	loc, err := Parse(uri)
	if err != nil {
		return nil, err
	}
	switch loc.Scheme {
	case SchemeS3:
		s, err := r.s3Backend(ctx)
		if err != nil {
			return nil, err
		}
		return s.Create(ctx, loc.Bucket, loc.Key)
	case SchemeMinIO:
		m, err := r.minioBackend()
		if err != nil {
			return nil, err
		}
		return m.Create(ctx, loc.Bucket, loc.Key)
	default:
		return r.local.Create(ctx, loc.Key)
	}
}

func (r *Router) s3Backend(ctx context.Context) (*S3, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s3 == nil {
		s, err := S3FromDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		r.s3 = s
	}

	return r.s3, nil
}

func (r *Router) minioBackend() (*MinIO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.minio == nil {
		m, err := MinIOFromEnv()
		if err != nil {
			return nil, err
		}
		r.minio = m
	}

	return r.minio, nil
}
