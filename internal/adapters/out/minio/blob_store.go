// Package minio keeps delivery proofs and refund images in an S3-compatible
// bucket.
package minio

import (
	"context"
	"fmt"
	"time"

	"shipment/internal/core/ports"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// BlobStore implements ports.BlobStorage. References are object keys within
// the bucket.
type BlobStore struct {
	client *minio.Client
	bucket string
}

func NewBlobStore(cfg Config) (*BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client for %s: %w", cfg.Endpoint, err)
	}
	return &BlobStore{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *BlobStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *BlobStore) Store(ctx context.Context, blob ports.Blob) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, blob.Key, blob.Body, blob.Size, minio.PutObjectOptions{
		ContentType: blob.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", blob.Key, err)
	}
	return blob.Key, nil
}

func (s *BlobStore) Delete(ctx context.Context, ref string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", ref, err)
	}
	return nil
}

func (s *BlobStore) PresignedURL(ctx context.Context, ref string, ttl time.Duration) (string, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, ref, minio.StatObjectOptions{}); err != nil {
		return "", fmt.Errorf("stat object %s: %w", ref, err)
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, ref, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %s: %w", ref, err)
	}
	return u.String(), nil
}
