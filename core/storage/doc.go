// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so that the item cache can be
// persisted as a single JSON document in S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the target bucket (see EnsureBucket).
//   - PutObject: upload content (with size and options).
//   - GetObject: retrieve content as a stream.
//   - StatObject: read object metadata, used by the integrity report.
//
// IsNotFound recognizes missing object and bucket responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "tataru", "")
package storage
