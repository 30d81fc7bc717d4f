package blobstore

import "errors"

var (
	// Key contract errors
	ErrInvalidKey = errors.New("invalid object key") // Rejects blank keys and ".." traversal

	// Store errors
	ErrObjectNotFound = errors.New("object not found")
	ErrPrefixNotFound = errors.New("prefix not found")
	ErrNotDirectory   = errors.New("path is not a directory")
	ErrIsDirectory    = errors.New("path is a directory")

	// I/O operation errors - wrapped with context for debugging
	ErrFailedToOpenObject      = errors.New("failed to open object")
	ErrFailedToReadObject      = errors.New("failed to read object")
	ErrFailedToWriteObject     = errors.New("failed to write object")
	ErrFailedToCreateObject    = errors.New("failed to create object")
	ErrFailedToDeleteObject    = errors.New("failed to delete object")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToDeleteDirectory = errors.New("failed to delete directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrFailedToStatPath        = errors.New("failed to stat path")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// S3-specific errors for proper error classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable") // Used for throttling and retries
	ErrInvalidObjectState = errors.New("invalid object state")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	// Configuration errors
	ErrPaginatorNil       = errors.New("paginator factory returned nil") // Testing support
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
