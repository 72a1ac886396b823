package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FilesystemStore keeps blobs as plain files under a root directory. Blob
// keys use forward slashes regardless of the host OS.
type FilesystemStore struct {
	root string
}

func NewFilesystemStore(root string) *FilesystemStore {
	return &FilesystemStore{root: root}
}

func (s *FilesystemStore) List(ctx context.Context, prefix string) ([]string, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	dir := filepath.Join(s.root, filepath.FromSlash(prefix))
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list blob prefix %s: %w", prefix, err)
	}

	var objects, prefixes []string
	for _, entry := range entries {
		key := path.Join(prefix, entry.Name())
		if entry.IsDir() {
			prefixes = append(prefixes, key)
		} else {
			objects = append(objects, key)
		}
	}
	return objects, prefixes, nil
}

func (s *FilesystemStore) Delete(ctx context.Context, object string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(s.root, filepath.FromSlash(object))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", object, err)
	}

	// Drop directories left empty by the delete so the tree does not
	// accumulate husks of offboarded tenants.
	dir := filepath.Dir(full)
	for strings.HasPrefix(dir, s.root) && dir != s.root {
		if err := os.Remove(dir); err != nil {
			break
		}
		dir = filepath.Dir(dir)
	}
	return nil
}

func joinPrefix(base string, id uint) string {
	return fmt.Sprintf("%s/%d", base, id)
}
