// Package storage provides an abstraction layer for object storage.
//
// It wraps the MinIO Go client behind a small interface covering the
// operations the application needs: the bucket holds the workout and recipe
// catalog documents (JSON) and their media assets (videos, images).
// The abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface makes storage interactions mockable for unit tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: verifies access to the target bucket.
//   - MakeBucket: creates a new bucket if needed.
//   - PutObject: uploads content.
//   - GetObject: retrieves content as a stream.
//   - ListObjects: lists objects (supports prefix/recursive).
//   - RemoveObject: deletes a single object.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
