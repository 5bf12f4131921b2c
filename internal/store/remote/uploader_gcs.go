package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/storage/gcs"
)

// GCSUploader adapts the GCS client to the Uploader surface.
type GCSUploader struct {
	client *gcs.Client
}

func NewGCSUploader(client *gcs.Client) *GCSUploader {
	return &GCSUploader{client: client}
}

func (u *GCSUploader) Upload(ctx context.Context, bucket, objectName, contentType string, data []byte) (string, error) {
	if bucket == "" {
		bucket = u.client.DefaultBucket()
	}
	return u.client.BucketHandle(bucket).Upload(ctx, objectName, contentType, data)
}
