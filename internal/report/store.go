package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/corpac/coba/internal/config"
)

// Store publishes a generated file and returns the URL clients download it
// from.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// NewStore returns an S3Store when storage is configured and a LinkStore
// otherwise.
func NewStore(cfg config.StorageConfig, publicURL string) Store {
	if !cfg.Enabled() {
		return LinkStore{PublicURL: publicURL}
	}
	return NewS3Store(cfg, publicURL)
}

// S3Store uploads files to an S3-compatible bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Store(cfg config.StorageConfig, publicURL string) *S3Store {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})
	return &S3Store{client: client, bucket: cfg.Bucket, publicURL: publicURL}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", key, s.bucket, err)
	}
	return s.publicURL + "/" + key, nil
}

// LinkStore uploads nothing and only derives the public URL.
type LinkStore struct {
	PublicURL string
}

func (l LinkStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	return l.PublicURL + "/" + key, nil
}
