package feed

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/1ns0mn1a7/seller-apis/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver keeps a copy of each downloaded feed archive in object
// storage, so a bad sync can be traced back to the exact input.
type Archiver struct {
	client storage.Client
	bucket string
	log    *zap.Logger
	now    func() time.Time
}

// NewArchiver creates an archiver writing to the given bucket.
func NewArchiver(client storage.Client, bucket string, log *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		log:    log,
		now:    time.Now,
	}
}

// Store uploads the raw archive under a timestamped object name, creating
// the bucket on first use. Returns the object name.
func (a *Archiver) Store(ctx context.Context, archive []byte) (string, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", fmt.Errorf("check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("create bucket %s: %w", a.bucket, err)
		}
		a.log.Info("archive bucket created", zap.String("bucket", a.bucket))
	}

	object := "feeds/" + a.now().UTC().Format("20060102-150405") + ".zip"
	_, err = a.client.PutObject(ctx, a.bucket, object,
		bytes.NewReader(archive), int64(len(archive)),
		minio.PutObjectOptions{ContentType: "application/zip"},
	)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	return object, nil
}
