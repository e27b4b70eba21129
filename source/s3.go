// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Client is the subset of *s3.Client used here: reads plus the multipart
// calls needed by manager.Uploader.
type S3Client interface {
	manager.UploadAPIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// DefaultPartSize is the multipart chunk used for uploads.
const DefaultPartSize = 8 * 1024 * 1024

// S3 serves bucket/key locations from AWS S3.
type S3 struct {
	client   S3Client
	uploader *manager.Uploader
}

// NewS3 wraps client; uploads go through a manager.Uploader.
func NewS3(client S3Client) *S3 {
	return &S3{
		client: client,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = DefaultPartSize
		}),
	}
}

// S3FromDefaultConfig resolves region and credentials through the standard
// AWS chain (environment, shared config, instance role).
func S3FromDefaultConfig(ctx context.Context) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("source: aws config: %w", err)
	}

	return NewS3(s3.NewFromConfig(cfg)), nil
}

// Open streams bucket/key. A missing object yields ErrNotFound.
func (s *S3) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrNotFound, bucket, key)
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrNotFound, bucket, key)
		}
		return nil, err
	}

	return out.Body, nil
}

// Create uploads everything written until Close as bucket/key.
func (s *S3) Create(ctx context.Context, bucket, key string) (io.WriteCloser, error) {
	return startUpload(func(r io.Reader) error {
		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   r,
		})
		return err
	}), nil
}
