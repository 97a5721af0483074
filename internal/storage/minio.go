package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/radar-speed-sign/video_uploads/internal/config"
	"github.com/radar-speed-sign/video_uploads/internal/model"
	"github.com/sirupsen/logrus"
)

// MinioStore targets an S3-compatible server, used for local runs.
type MinioStore struct {
	client *minio.Client
	log    *logrus.Logger
}

// NewMinioStore connects to MinIO and checks that bucket exists. The bucket
// is provisioned outside this function, so a missing bucket is an error.
func NewMinioStore(ctx context.Context, cfg config.MinioConfig, bucket string, log *logrus.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("[MINIO] :: failed to initialize client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("[MINIO] :: error checking bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("[MINIO] :: bucket %s does not exist", bucket)
	}

	return &MinioStore{client: client, log: log}, nil
}

// PutObject writes obj in a single request.
func (m *MinioStore) PutObject(ctx context.Context, obj model.StoredObject) error {
	info, err := m.client.PutObject(ctx, obj.Bucket, obj.Key, bytes.NewReader(obj.Body), int64(len(obj.Body)), minio.PutObjectOptions{
		ContentType:  obj.ContentType,
		UserMetadata: obj.Metadata,
	})
	if err != nil {
		return fmt.Errorf("[MINIO] :: failed to upload object %s: %w", obj.Key, err)
	}

	m.log.WithFields(logrus.Fields{
		"bucket": obj.Bucket,
		"key":    obj.Key,
		"size":   info.Size,
		"etag":   info.ETag,
	}).Debug("MinIO put complete")
	return nil
}
