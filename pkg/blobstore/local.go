package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/guardkit/guardkit/pkg/guard"
)

// Local implements Storage for the local filesystem.
// All operations are confined to baseDir to prevent path traversal attacks.
// Safe for concurrent use with proper file locking by the OS.
type Local struct {
	baseDir       string        // Absolute path - all objects stored within this directory
	baseURL       string        // URL prefix for serving objects (e.g., "/files/")
	uploadTimeout time.Duration // Optional timeout to prevent hanging uploads
}

// LocalOption defines a function that configures Local.
type LocalOption func(*Local)

// WithLocalUploadTimeout sets the timeout for Put operations.
// If not set, relies on context deadline from caller.
func WithLocalUploadTimeout(timeout time.Duration) LocalOption {
	return func(s *Local) {
		s.uploadTimeout = timeout
	}
}

// NewLocal creates a filesystem-backed store rooted at baseDir.
// baseDir is resolved to an absolute path and created if it doesn't exist.
// baseURL is used for generating public URLs (e.g., "/files/").
func NewLocal(baseDir, baseURL string, opts ...LocalOption) (*Local, error) {
	if _, err := guard.NotNilNotEmpty(&baseDir, "baseDir"); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	// Must resolve to an absolute path so the traversal check below has a
	// stable root to compare against.
	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &Local{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Put streams r into a file under key. Uses buffered I/O with context
// cancellation support to handle large objects efficiently while allowing
// early termination. Cleans up partial files on errors.
func (s *Local) Put(ctx context.Context, key string, r io.Reader) (*Object, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if _, err := guard.NotNil(r, "r"); err != nil {
		return nil, err
	}
	key, err := cleanKey(key, "key")
	if err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	fileDir := filepath.Dir(absPath)
	if err = os.MkdirAll(fileDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	contentType, src, err := sniffContentType(r)
	if err != nil {
		return nil, err
	}

	// Create with restrictive permissions (644 = rw-r--r--)
	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateObject, err)
	}
	defer func() { _ = dst.Close() }()

	// Manual buffered copy with context checking - allows cancellation during large uploads
	written := int64(0)
	buf := make([]byte, 32*1024) // 32KB balances memory usage and syscall overhead
	for {
		select {
		case <-ctx.Done():
			_ = dst.Close()
			_ = os.Remove(absPath) // Clean up partial file
			return nil, ctx.Err()
		default:
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := dst.Write(buf[:n])
			if writeErr != nil {
				_ = dst.Close()
				_ = os.Remove(absPath)
				return nil, fmt.Errorf("%w: %v", ErrFailedToWriteObject, writeErr)
			}
			written += int64(nw)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = dst.Close()
			_ = os.Remove(absPath)
			return nil, fmt.Errorf("%w: %v", ErrFailedToReadObject, readErr)
		}
	}

	return &Object{
		Key:         key,
		Size:        written, // Actual bytes written, not what the caller claimed
		ContentType: contentType,
	}, nil
}

// Open returns a reader for the object stored under key.
func (s *Local) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	key, err := cleanKey(key, "key")
	if err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenObject, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, key)
	}

	return f, nil
}

// Delete removes a single object.
// Verifies the target is a file, not a directory, to prevent accidental data loss.
func (s *Local) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	key, err := cleanKey(key, "key")
	if err != nil {
		return err
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	// Safety check - prevent accidental directory deletion
	if info.IsDir() {
		return fmt.Errorf("%w: %s, use DeletePrefix instead", ErrIsDirectory, key)
	}

	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteObject, err)
	}

	return nil
}

// DeletePrefix recursively removes the directory named by prefix and all its
// contents. Verifies the target is a directory to prevent accidental file
// deletion.
func (s *Local) DeletePrefix(ctx context.Context, prefix string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	prefix, err := cleanKey(prefix, "prefix")
	if err != nil {
		return err
	}

	absPath, err := s.resolvePath(prefix)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPrefixNotFound, prefix)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	// Safety check - ensure we're deleting a directory
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, prefix)
	}

	if err := os.RemoveAll(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteDirectory, err)
	}

	return nil
}

// Exists checks if an object or directory exists.
// Returns false for invalid keys or on context cancellation.
func (s *Local) Exists(ctx context.Context, key string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	key, err := cleanKey(key, "key")
	if err != nil {
		return false
	}

	absPath, err := s.resolvePath(key)
	if err != nil {
		return false
	}

	_, err = os.Stat(absPath)
	return err == nil
}

// List returns all entries directly under prefix (non-recursive). An empty
// prefix lists the store root. Checks context cancellation periodically
// during iteration to handle large directories.
func (s *Local) List(ctx context.Context, prefix string) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	prefix, err := cleanPrefix(prefix, "prefix")
	if err != nil {
		return nil, err
	}

	absPath := s.baseDir
	if prefix != "" {
		absPath, err = s.resolvePath(prefix)
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPrefixNotFound, prefix)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, prefix)
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		// Allow cancellation during large directory listings
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		entryAbsPath := filepath.Join(absPath, dirEntry.Name())
		entryRelPath, err := filepath.Rel(s.baseDir, entryAbsPath)
		if err != nil {
			entryRelPath = filepath.Join(prefix, dirEntry.Name())
		}

		info, err := dirEntry.Info()
		if err != nil {
			continue // Skip entries we can't read
		}

		entry := Entry{
			Name:  dirEntry.Name(),
			Path:  filepath.ToSlash(entryRelPath),
			IsDir: dirEntry.IsDir(),
			Size:  0,
		}

		if !dirEntry.IsDir() {
			entry.Size = info.Size()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// URL returns the public URL for an object.
func (s *Local) URL(key string) string {
	key = filepath.Clean(key)

	// Convert backslashes to forward slashes for URLs
	key = filepath.ToSlash(key)

	if strings.HasPrefix(key, "/") {
		return key
	}

	return s.baseURL + key
}

// resolvePath validates and resolves a key within the base directory.
// All resolved paths must stay within baseDir bounds, checked via string
// prefix after making the joined path absolute.
func (s *Local) resolvePath(key string) (string, error) {
	key = filepath.Clean(key)
	absPath := filepath.Join(s.baseDir, key)

	absPath, err := filepath.Abs(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}

	return absPath, nil
}
