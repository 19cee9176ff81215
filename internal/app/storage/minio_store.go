package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "interview-coach/internal/app/errors"
	"interview-coach/internal/app/model"
)

// MinioAudioStore keeps clips in an S3 compatible bucket and hands out
// presigned download URLs
type MinioAudioStore struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
}

// MinioOptions configures NewMinioAudioStore
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	URLExpiry time.Duration
}

// NewMinioAudioStore connects to MinIO and creates the bucket if it is missing
func NewMinioAudioStore(ctx context.Context, opts MinioOptions) (*MinioAudioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	expiry := opts.URLExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &MinioAudioStore{client: client, bucket: opts.Bucket, urlExpiry: expiry}, nil
}

// Save uploads the clip and returns a presigned GET URL
func (s *MinioAudioStore) Save(ctx context.Context, name string, clip *model.AudioClip) (string, error) {
	key, err := objectKey(name, clip)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(clip.Data), int64(len(clip.Data)), minio.PutObjectOptions{
		ContentType: clip.ContentType,
		UserMetadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, fmt.Errorf("failed to upload audio to MinIO: %w", err))
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.urlExpiry, url.Values{})
	if err != nil {
		return "", apperrors.WithCause(apperrors.ErrSynthesisFailed, fmt.Errorf("failed to generate presigned URL: %w", err))
	}
	return presignedURL.String(), nil
}
