package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	appconfig "planit-api/core/config"
	"planit-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores generated artifacts in an S3 bucket and hands back download links
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) (string, error)
}

type s3Uploader struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewUploader creates an S3-backed uploader from storage configuration
func NewUploader(cfg appconfig.StorageConfig) Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	client := s3.New(opts)
	return &s3Uploader{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
	}
}

// Upload writes the artifact and returns a presigned GET URL valid for 24h
func (u *s3Uploader) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("S3Uploader:Upload", "bucket", u.bucket, "key", key, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	presigned, err := u.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(24*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}

	return presigned.URL, nil
}
