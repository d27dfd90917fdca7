// Package storage provides the path-keyed file store backing gallery
// uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ObjectStore stores and removes file objects keyed by relative path.
type ObjectStore interface {
	// Save writes an object and returns its public URL.
	Save(ctx context.Context, objectPath string, r io.Reader) (string, error)
	// Remove deletes an object. Removing a missing object is an error the
	// caller may treat as best-effort.
	Remove(ctx context.Context, objectPath string) error
	// URL returns the public URL for an object path.
	URL(objectPath string) string
}

// LocalStore is an ObjectStore backed by a local directory.
type LocalStore struct {
	root    string // Root directory holding objects.
	baseURL string // URL prefix mapped to the root directory.
}

// NewLocalStore constructs a LocalStore rooted at dir.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: empty directory")
	}
	if errMkdir := os.MkdirAll(dir, 0o755); errMkdir != nil {
		return nil, fmt.Errorf("storage: create root: %w", errMkdir)
	}
	return &LocalStore{root: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// cleanPath normalizes an object path and rejects traversal outside the root.
func cleanPath(objectPath string) (string, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if trimmed == "" {
		return "", fmt.Errorf("storage: empty object path")
	}
	cleaned := path.Clean(trimmed)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("storage: invalid object path %q", objectPath)
	}
	return cleaned, nil
}

// Save writes an object under the root directory and returns its URL.
func (s *LocalStore) Save(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	cleaned, errClean := cleanPath(objectPath)
	if errClean != nil {
		return "", errClean
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if errMkdir := os.MkdirAll(filepath.Dir(target), 0o755); errMkdir != nil {
		return "", fmt.Errorf("storage: create directory: %w", errMkdir)
	}

	f, errCreate := os.Create(target)
	if errCreate != nil {
		return "", fmt.Errorf("storage: create object: %w", errCreate)
	}
	if _, errCopy := io.Copy(f, r); errCopy != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("storage: write object: %w", errCopy)
	}
	if errClose := f.Close(); errClose != nil {
		return "", fmt.Errorf("storage: close object: %w", errClose)
	}
	return s.URL(cleaned), nil
}

// Remove deletes an object from the root directory.
func (s *LocalStore) Remove(ctx context.Context, objectPath string) error {
	cleaned, errClean := cleanPath(objectPath)
	if errClean != nil {
		return errClean
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if errRemove := os.Remove(filepath.Join(s.root, filepath.FromSlash(cleaned))); errRemove != nil {
		return fmt.Errorf("storage: remove object: %w", errRemove)
	}
	return nil
}

// URL returns the public URL for an object path.
func (s *LocalStore) URL(objectPath string) string {
	cleaned, errClean := cleanPath(objectPath)
	if errClean != nil {
		return s.baseURL
	}
	return s.baseURL + "/" + cleaned
}
