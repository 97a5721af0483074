package storage

import (
	"context"
	"fmt"

	"github.com/radar-speed-sign/video_uploads/internal/config"
	"github.com/radar-speed-sign/video_uploads/internal/model"
	"github.com/sirupsen/logrus"
)

// ObjectStore writes a single object to a bucket. Implementations must only
// return nil once the backend has acknowledged the write.
type ObjectStore interface {
	PutObject(ctx context.Context, obj model.StoredObject) error
}

// New builds the store selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig, log *logrus.Logger) (ObjectStore, error) {
	switch cfg.Backend {
	case config.BackendS3, "":
		return NewS3Store(ctx, cfg.S3, log)
	case config.BackendMinio:
		return NewMinioStore(ctx, cfg.Minio, model.BucketName, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
