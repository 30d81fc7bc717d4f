// Package blobstore provides guarded object storage with local filesystem and
// S3 backends behind a single Storage interface.
//
// Every operation checks its parameter contracts before touching the backend:
// object keys cannot be blank and cannot climb out of the store with "..",
// streams passed to Put cannot be nil, and backend configuration (base
// directory, bucket, region) is validated at construction time. Violated
// contracts surface as guard errors, so callers can distinguish a misused API
// from a backend failure with errors.Is.
//
// # Architecture
//
// The package is built around the Storage interface which provides a
// consistent API for:
//   - Streaming objects in with Put and out with Open
//   - Deleting single objects and whole prefixes
//   - Checking object existence
//   - Listing entries under a prefix
//   - Generating public URLs
//
// Two implementations are provided:
//   - Local: for filesystem-based storage rooted at a base directory
//   - S3: for AWS S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// # Usage
//
//	import "github.com/guardkit/guardkit/pkg/blobstore"
//
//	store, err := blobstore.NewLocal("/var/uploads", "/files/")
//	if err != nil {
//		return err
//	}
//
//	obj, err := store.Put(ctx, "avatars/user123.jpg", r)
//	if err != nil {
//		return err
//	}
//
//	url := store.URL(obj.Key)
//
// Using S3 storage:
//
//	store, err := blobstore.NewS3(ctx, blobstore.S3Config{
//		Bucket:      "my-bucket",
//		Region:      "us-east-1",
//		AccessKeyID: "key",
//		SecretKey:   "secret",
//	})
//	if err != nil {
//		return err
//	}
//
//	// Same Storage interface methods work with S3
//	obj, err := store.Put(ctx, "uploads/document.pdf", r)
//
// # Content Types
//
// Put detects the content type from the first 512 bytes of the stream using
// http.DetectContentType, so a renamed extension cannot spoof the stored
// type. The consumed bytes are replayed, the caller's reader is streamed
// through without buffering the whole object.
//
// # Error Handling
//
// Parameter contract violations carry guard.ErrMissingValue or
// guard.ErrInvalidArgument; blank and traversing keys additionally match
// ErrInvalidKey. Backend failures map to package sentinels:
//
//	obj, err := store.Put(ctx, key, r)
//	if errors.Is(err, blobstore.ErrInvalidKey) {
//		// Key is blank or contains ".."
//	} else if errors.Is(err, blobstore.ErrObjectNotFound) {
//		// Object does not exist
//	}
//
// S3 API errors are classified into the same sentinels:
//   - NoSuchKey -> ErrObjectNotFound
//   - NoSuchBucket -> ErrBucketNotFound
//   - AccessDenied -> ErrAccessDenied
//   - SlowDown, ServiceUnavailable -> ErrServiceUnavailable
//
// # Performance Considerations
//
//   - Object content is streamed during uploads to minimize memory usage
//   - Both backends support configurable upload timeouts
//   - Prefix deletion on S3 paginates the listing and batches deletions at
//     the S3 limit of 1000 objects per request
//   - Content type detection reads only the first 512 bytes
package blobstore
