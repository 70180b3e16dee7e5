package checks

import (
	"context"
	"fmt"
	"time"

	"tataru/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketReport describes the object storage holding the cache snapshot.
type BucketReport struct {
	Bucket       string    `json:"bucket"`
	Key          string    `json:"key"`
	Exists       bool      `json:"exists"`
	Snapshot     bool      `json:"snapshot"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Status       string    `json:"status"` // "ok", "error"
}

// CheckBucket verifies that the bucket exists and reports the snapshot object.
// A missing snapshot is not an error: the cache starts empty and the first write creates it.
func CheckBucket(ctx context.Context, client storage.Client, bucket, key string) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket, Key: key, Status: "ok"}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		report.Status = "error"
		return report, nil
	}

	info, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return report, nil
		}
		return nil, fmt.Errorf("failed to stat snapshot %s: %w", key, err)
	}
	report.Snapshot = true
	report.Size = info.Size
	report.LastModified = info.LastModified
	return report, nil
}

// FixBucket creates the bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string) error {
	return storage.EnsureBucket(ctx, client, bucket, region)
}
