// Package storage provides an abstraction layer for object storage services.
//
// Generated inventory reports can be published to an S3 compatible bucket once
// they are written to disk. The package wraps the MinIO Go client behind a small
// Client interface so the report publisher can be tested with the mock in
// core/storage/mocks.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed (see EnsureBucket).
//   - PutObject: Uploads a report file.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
