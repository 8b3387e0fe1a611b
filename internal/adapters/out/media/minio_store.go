// Package media implements the outbound media store port on MinIO
// compatible object storage. Sketch and design images live in one bucket;
// the rest of the system only ever sees their URLs.
package media

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"greenspace/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore stores revision images in a MinIO bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// Config carries the MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicURL is the externally reachable base URL of the storage, used
	// to build image links. Falls back to the endpoint when empty.
	PublicURL string
}

// NewMinioStore connects to the object storage and ensures the bucket
// exists.
func NewMinioStore(ctx context.Context, cfg Config) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, errs.NewValueIsRequiredError("endpoint")
	}
	if cfg.Bucket == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload stores one image and returns its public URL.
func (s *MinioStore) Upload(
	ctx context.Context,
	objectName string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	if objectName == "" {
		return "", errs.NewValueIsRequiredError("objectName")
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", objectName, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, url.PathEscape(objectName)), nil
}

// Remove deletes a previously uploaded image by object name.
func (s *MinioStore) Remove(ctx context.Context, objectName string) error {
	if objectName == "" {
		return errs.NewValueIsRequiredError("objectName")
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", objectName, err)
	}

	return nil
}
