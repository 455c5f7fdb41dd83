// Package storage wraps the S3 object store holding payment proofs and
// promotional media. Keys are namespaced by content class prefix
// (proofs/, videos/, screenshots/) and generated with a UUID so client
// file names never collide.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/iliyamo/investor-portal/internal/config"
)

// Object key prefixes per content class.
const (
	PrefixProofs      = "proofs"
	PrefixVideos      = "videos"
	PrefixScreenshots = "screenshots"
)

// Store is an S3 client bound to one bucket.
type Store struct {
	client *s3.Client
	bucket string
}

// New builds a Store from the application config. It returns an error
// when the S3 settings are incomplete so main can decide whether to run
// without uploads.
func New(ctx context.Context, cfg config.Config) (*Store, error) {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, fmt.Errorf("s3 not configured")
	}
	region := cfg.S3Region
	if region == "" {
		region = "eu-central-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Store{client: s3.NewFromConfig(awsCfg), bucket: cfg.S3Bucket}, nil
}

// NewKey generates an object key under the given prefix, keeping the
// original file extension so content type can be derived later.
func NewKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UTC().Unix(), uuid.NewString(), path.Ext(filename))
}

// Upload stores the object under key. Content type is derived from the
// key's extension.
func (s *Store) Upload(ctx context.Context, key string, body io.Reader) error {
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// Delete removes the object under key. Callers treat a failure here as
// an orphaned blob, not a failed operation: the database row is the
// source of truth and a periodic sweep can reclaim leftovers.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete failed: %w", err)
	}
	return nil
}

// SignedURL returns a presigned GET URL so clients can fetch a private
// object (e.g. an admin reviewing a payment proof).
func (s *Store) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	presigner := s3.NewPresignClient(s.client)
	presigned, err := presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		},
		func(po *s3.PresignOptions) {
			po.Expires = expiry
		},
	)
	if err != nil {
		return "", fmt.Errorf("presign failed: %w", err)
	}
	return presigned.URL, nil
}
