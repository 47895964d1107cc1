package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilesystemStore keeps attachment bytes as files under a root
// directory, one subdirectory per order. Writes go through a temp file
// in the destination directory followed by a rename, so a partially
// written file is never visible under its final name.
type FilesystemStore struct {
	root    string
	baseURL string
}

// NewFilesystemStore creates the root directory if needed. When
// baseURL is non-empty, stored references are absolute URLs built from
// it; otherwise the reference is the key itself.
func NewFilesystemStore(root, baseURL string) (*FilesystemStore, error) {
	if root == "" {
		return nil, fmt.Errorf("filesystem store requires an upload directory")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FilesystemStore{root: root, baseURL: baseURL}, nil
}

// Put writes data under key and returns its stored reference.
func (s *FilesystemStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest := filepath.Join(s.root, filepath.FromSlash(key))
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create order dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("rename temp file: %w", err)
	}
	committed = true

	return s.reference(key), nil
}

func (s *FilesystemStore) reference(key string) string {
	if s.baseURL == "" {
		return key
	}
	return s.baseURL + "/" + key
}

var _ Store = (*FilesystemStore)(nil)
