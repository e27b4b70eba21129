// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Environment read by MinIOFromEnv.
const (
	EnvMinIOEndpoint  = "SPMAT_MINIO_ENDPOINT"   // host:port, required
	EnvMinIOAccessKey = "SPMAT_MINIO_ACCESS_KEY" // required
	EnvMinIOSecretKey = "SPMAT_MINIO_SECRET_KEY" // required
	EnvMinIOSecure    = "SPMAT_MINIO_SECURE"     // "true" for HTTPS; default false
	EnvMinIORegion    = "SPMAT_MINIO_REGION"     // optional
)

// MinIO serves bucket/key locations from an S3-compatible endpoint.
type MinIO struct {
	client *minio.Client
}

// NewMinIO wraps an existing client.
func NewMinIO(client *minio.Client) *MinIO {
	return &MinIO{client: client}
}

// MinIOFromEnv builds a client from the SPMAT_MINIO_* variables.
func MinIOFromEnv() (*MinIO, error) {
	endpoint := os.Getenv(EnvMinIOEndpoint)
	access := os.Getenv(EnvMinIOAccessKey)
	secret := os.Getenv(EnvMinIOSecretKey)
	if endpoint == "" || access == "" || secret == "" {
		return nil, fmt.Errorf("%w: set %s, %s and %s",
			ErrMissingConfig, EnvMinIOEndpoint, EnvMinIOAccessKey, EnvMinIOSecretKey)
	}
	secure := false
	if v := os.Getenv(EnvMinIOSecure); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrMissingConfig, EnvMinIOSecure, v)
		}
		secure = b
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: secure,
		Region: os.Getenv(EnvMinIORegion),
	})
	if err != nil {
		return nil, fmt.Errorf("source: minio client: %w", err)
	}

	return NewMinIO(client), nil
}

// Open streams bucket/key. A missing object yields ErrNotFound.
func (s *MinIO) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minioError(err)
	}
	// GetObject is lazy; Stat surfaces a missing key before the first Read.
	if _, err = obj.Stat(); err != nil {
		obj.Close()
		return nil, minioError(err)
	}

	return obj, nil
}

// Create uploads everything written until Close as bucket/key.
func (s *MinIO) Create(ctx context.Context, bucket, key string) (io.WriteCloser, error) {
	return startUpload(func(r io.Reader) error {
		_, err := s.client.PutObject(ctx, bucket, key, r, -1, minio.PutObjectOptions{})
		return err
	}), nil
}

func minioError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound", "NoSuchBucket":
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return err
}
