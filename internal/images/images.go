// Package images turns a local image file into a URL an artwork record can
// carry: either a public object-storage URL (uploaded through a presigned
// PUT) or a self-contained data URI when no bucket is configured.
package images

import (
	"context"

	"github.com/gallerie-app/gallerie/internal/config"
	"github.com/gallerie-app/gallerie/internal/logging"
)

// Uploader stores image bytes somewhere reachable and returns the URL to
// reference them by.
type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// NewFromConfig picks the uploader for the configured image storage:
// S3-compatible storage when a bucket is set, inline data URIs otherwise.
func NewFromConfig(cfg *config.Config, log logging.Logger) Uploader {
	if cfg.S3Bucket != "" {
		return NewS3Uploader(cfg, log)
	}
	return &DataURIEncoder{}
}
