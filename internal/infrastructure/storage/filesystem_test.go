package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBlob(t *testing.T, root, key string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(key))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("blob"), 0o644))
}

func TestFilesystemStore_ListSeparatesObjectsAndPrefixes(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)
	ctx := context.Background()

	writeBlob(t, root, "companies/1/logo.png")
	writeBlob(t, root, "companies/1/reports/january.pdf")

	objects, prefixes, err := store.List(ctx, "companies/1")
	require.NoError(t, err)
	assert.Equal(t, []string{"companies/1/logo.png"}, objects)
	assert.Equal(t, []string{"companies/1/reports"}, prefixes)
}

func TestFilesystemStore_ListMissingPrefix(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())

	objects, prefixes, err := store.List(context.Background(), "companies/404")
	require.NoError(t, err)
	assert.Empty(t, objects)
	assert.Empty(t, prefixes)
}

func TestFilesystemStore_DeleteMissingObjectIsNoop(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())
	require.NoError(t, store.Delete(context.Background(), "companies/1/void.txt"))
}

func TestDeleteTree_RemovesWholeCompanySubtree(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)
	ctx := context.Background()

	writeBlob(t, root, "companies/1/logo.png")
	writeBlob(t, root, "companies/1/reports/january.pdf")
	writeBlob(t, root, "companies/1/reports/archive/2023.pdf")
	writeBlob(t, root, "companies/2/logo.png")

	deleted, errs := DeleteTree(ctx, store, CompanyPrefix(1))
	require.Empty(t, errs)
	assert.Equal(t, int64(3), deleted)

	// The neighbouring tenant's tree is untouched.
	remaining, err := CountTree(ctx, store, CompanyPrefix(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	gone, err := CountTree(ctx, store, CompanyPrefix(1))
	require.NoError(t, err)
	assert.Zero(t, gone)

	// Empty directories do not linger after the walk.
	_, err = os.Stat(filepath.Join(root, "companies", "1"))
	assert.True(t, os.IsNotExist(err))
}

// undeletableStore refuses to delete selected objects, standing in for a
// bucket with a permission hole in the middle of a tenant's tree.
type undeletableStore struct {
	BlobStore
	stuck map[string]bool
}

func (s *undeletableStore) Delete(ctx context.Context, object string) error {
	if s.stuck[object] {
		return fmt.Errorf("access denied: %s", object)
	}
	return s.BlobStore.Delete(ctx, object)
}

func TestDeleteTree_ContinuesPastFailedDeletes(t *testing.T) {
	root := t.TempDir()
	store := &undeletableStore{
		BlobStore: NewFilesystemStore(root),
		stuck:     map[string]bool{"companies/9/a.jpg": true},
	}
	ctx := context.Background()

	writeBlob(t, root, "companies/9/a.jpg")
	writeBlob(t, root, "companies/9/b.jpg")
	writeBlob(t, root, "companies/9/reports/c.pdf")

	deleted, errs := DeleteTree(ctx, store, CompanyPrefix(9))

	// The stuck object fails on its own; its siblings and the sub-prefix
	// behind it are still removed.
	assert.Equal(t, int64(2), deleted)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "a.jpg")

	remaining, err := CountTree(ctx, store, CompanyPrefix(9))
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}

func TestCountTree_DoesNotModify(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)
	ctx := context.Background()

	writeBlob(t, root, "companies/3/a.txt")
	writeBlob(t, root, "companies/3/sub/b.txt")

	count, err := CountTree(ctx, store, CompanyPrefix(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	again, err := CountTree(ctx, store, CompanyPrefix(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), again)
}
