package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Object describes a stored blob.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// Entry represents an object or common prefix in a listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage interface for different backends.
type Storage interface {
	// Put streams r into the store under key and returns object metadata.
	Put(ctx context.Context, key string, r io.Reader) (*Object, error)
	// Open returns a reader for the object stored under key.
	// The caller owns the returned reader and must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a single object.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object stored under the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error
	// Exists checks if an object exists.
	Exists(ctx context.Context, key string) bool
	// List returns the entries directly under prefix (non-recursive).
	// An empty prefix lists the store root.
	List(ctx context.Context, prefix string) ([]Entry, error)
	// URL returns the public URL for an object.
	URL(key string) string
}

// cleanKey enforces the object key contract shared by all backends: a key
// cannot be blank and cannot climb out of the store with "..". The leading
// slash is stripped so "/a/b" and "a/b" address the same object.
func cleanKey(key, name string) (string, error) {
	k, err := guard.NotNilNotEmpty(&key, name)
	if err != nil {
		return "", err
	}
	k = strings.TrimPrefix(k, "/")
	if strings.TrimSpace(k) == "" || strings.Contains(k, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return k, nil
}

// cleanPrefix is cleanKey for listing prefixes, where an empty value means
// the store root. DeletePrefix keeps the strict cleanKey contract instead:
// wiping everything under the root must be an explicit backend decision,
// never a blank-argument default.
func cleanPrefix(prefix, name string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", nil
	}
	return cleanKey(prefix, name)
}

// sniffContentType reads up to the first 512 bytes from r to detect the
// content type from magic bytes rather than trusting the key extension, and
// returns a reader that replays the consumed bytes.
func sniffContentType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToReadObject, err)
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
