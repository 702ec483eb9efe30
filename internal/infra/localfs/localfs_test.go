package localfs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jmarhee/rs-archive-subdir/internal/interfaces/infra"
)

func setupTestStorage(t *testing.T) (infra.ArchiveStorage, string) {
	root := t.TempDir()
	return New(zaptest.NewLogger(t), root), root
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestLocalFS_CreateCommit(t *testing.T) {
	storage, root := setupTestStorage(t)
	ctx := context.Background()

	pending, err := storage.Create(ctx, "backup-1.tar.gz")
	require.NoError(t, err)

	names := listDir(t, root)
	require.Len(t, names, 1)
	assert.True(t, strings.HasPrefix(names[0], ".backup-"))
	assert.True(t, strings.HasSuffix(names[0], ".tmp"))

	_, err = pending.Write([]byte("payload"))
	require.NoError(t, err)

	stored, err := pending.Commit()
	require.NoError(t, err)
	assert.Equal(t, "backup-1.tar.gz", stored.Name)
	assert.Equal(t, filepath.Join(root, "backup-1.tar.gz"), stored.Path)
	assert.Equal(t, int64(7), stored.Size)
	assert.True(t, stored.Regular)

	assert.Equal(t, []string{"backup-1.tar.gz"}, listDir(t, root))

	info, err := os.Stat(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), stored.Size)
	assert.True(t, info.ModTime().Equal(stored.ModTime))

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = pending.Write([]byte("late"))
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestLocalFS_Abort(t *testing.T) {
	storage, root := setupTestStorage(t)
	ctx := context.Background()

	pending, err := storage.Create(ctx, "backup-2.tar.gz")
	require.NoError(t, err)
	_, err = pending.Write([]byte("partial"))
	require.NoError(t, err)

	require.NoError(t, pending.Abort())
	assert.Empty(t, listDir(t, root))

	_, err = pending.Commit()
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestLocalFS_CommitDoesNotOverwrite(t *testing.T) {
	storage, root := setupTestStorage(t)
	ctx := context.Background()

	existing := filepath.Join(root, "backup-3.tar.gz")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	pending, err := storage.Create(ctx, "backup-3.tar.gz")
	require.NoError(t, err)
	_, err = pending.Write([]byte("new"))
	require.NoError(t, err)

	_, err = pending.Commit()
	assert.ErrorIs(t, err, ErrFileExists)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.Equal(t, []string{"backup-3.tar.gz"}, listDir(t, root))
}

func TestLocalFS_CreateMissingRoot(t *testing.T) {
	storage := New(zaptest.NewLogger(t), filepath.Join(t.TempDir(), "absent"))

	_, err := storage.Create(context.Background(), "backup-4.tar.gz")

	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestLocalFS_InvalidNames(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx := context.Background()

	_, err := storage.Create(ctx, "")
	assert.ErrorIs(t, err, ErrNameEmpty)

	_, err = storage.Stat(ctx, "../escape.gz")
	assert.ErrorIs(t, err, ErrNameInvalid)

	err = storage.Remove(ctx, "sub/file.gz")
	assert.ErrorIs(t, err, ErrNameInvalid)
}

func TestLocalFS_ListStatRemove(t *testing.T) {
	storage, root := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.gz"), []byte("a"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "deep.gz"), []byte("d"), 0644))

	names, err := storage.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.gz", "nested"}, names)

	file, err := storage.Stat(ctx, "a.gz")
	require.NoError(t, err)
	assert.True(t, file.Regular)
	assert.Equal(t, int64(1), file.Size)

	dir, err := storage.Stat(ctx, "nested")
	require.NoError(t, err)
	assert.False(t, dir.Regular)

	require.NoError(t, storage.Remove(ctx, "a.gz"))
	_, err = storage.Stat(ctx, "a.gz")
	assert.ErrorIs(t, err, ErrFileNotFound)

	err = storage.Remove(ctx, "a.gz")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalFS_ListMissingRoot(t *testing.T) {
	storage := New(zaptest.NewLogger(t), filepath.Join(t.TempDir(), "absent"))

	_, err := storage.List(context.Background())

	assert.ErrorIs(t, err, ErrReadDirFailed)
}

func TestLocalFS_ContextCancelled(t *testing.T) {
	storage, _ := setupTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.List(ctx)
	assert.ErrorIs(t, err, ErrContextDone)

	_, err = storage.Create(ctx, "backup-5.tar.gz")
	assert.ErrorIs(t, err, ErrContextDone)
}
