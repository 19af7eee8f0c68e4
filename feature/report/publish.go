package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".yaml": "application/yaml",
}

// Publisher uploads written report files to object storage under
// <prefix>/<run id>/<file name>.
type Publisher struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewPublisher creates a publisher for the configured bucket.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{client: client, cfg: cfg, logger: logger}
}

// Prepare makes sure the bucket exists.
func (p *Publisher) Prepare(ctx context.Context) error {
	return storage.EnsureBucket(ctx, p.client, p.cfg.Bucket, p.cfg.Region)
}

// Publish uploads one file and returns its object key.
func (p *Publisher) Publish(ctx context.Context, runID, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	key := storage.ObjectKey(p.cfg.Prefix, runID, filepath.Base(path))
	opts := minio.PutObjectOptions{ContentType: contentTypes[filepath.Ext(path)]}
	if _, err := p.client.PutObject(ctx, p.cfg.Bucket, key, file, info.Size(), opts); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Debug("Published report", zap.String("bucket", p.cfg.Bucket), zap.String("key", key))
	return key, nil
}
