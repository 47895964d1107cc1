package blob

import (
	"context"
	"fmt"

	"github.com/polkiloo/folioorder/internal/config"
)

// NewFromConfig creates the Store implementation selected by the
// storage backend setting.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.StorageFilesystem:
		return NewFilesystemStore(cfg.UploadDir, cfg.PublicBaseURL)
	case config.StorageS3:
		return NewS3Store(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case config.StorageMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
