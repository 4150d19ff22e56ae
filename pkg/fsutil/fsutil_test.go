package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/fsutil"
)

func memFS(t *testing.T, files map[string]string) *fsutil.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	return fsutil.New(mem)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/suite/a.robot": "*** Test Cases ***\n"})

	content, info, err := fsys.ReadFile(ctx, "/suite/a.robot")
	require.NoError(t, err)
	assert.Equal(t, "*** Test Cases ***\n", string(content))
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "/suite/a.robot", info.Path)

	_, _, err = fsys.ReadFile(ctx, "/suite/missing.robot")
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = fsys.ReadFile(ctx, "/suite")
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = fsys.ReadFile(canceled, "/suite/a.robot")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/a.robot": "one\n"})

	_, info, err := fsys.ReadFile(ctx, "/a.robot")
	require.NoError(t, err)

	modified, err := fsys.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	require.NoError(t, afero.WriteFile(fsys.Afero(), "/a.robot", []byte("changed\n"), 0o644))
	modified, err = fsys.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	require.NoError(t, fsys.Afero().Remove("/a.robot"))
	modified, err = fsys.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified, "a deleted file counts as modified")

	_, err = fsys.CheckModified(ctx, nil)
	assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/dir/a.robot": "old\n"})

	require.NoError(t, fsys.WriteAtomic(ctx, "/dir/a.robot", []byte("new\n"), 0o600))

	got, err := afero.ReadFile(fsys.Afero(), "/dir/a.robot")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))

	stat, err := fsys.Afero().Stat("/dir/a.robot")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	entries, err := afero.ReadDir(fsys.Afero(), "/dir")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestWriteAtomicOnDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.robot")

	fsys := fsutil.OS()
	require.NoError(t, fsys.WriteAtomic(context.Background(), path, []byte("Log    x\n"), 0))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Log    x\n", string(got))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/a.robot": "same\n"})

	written, err := fsys.WriteAtomicIfChanged(ctx, "/a.robot", []byte("same\n"), 0)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = fsys.WriteAtomicIfChanged(ctx, "/a.robot", []byte("different\n"), 0)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fsys.WriteAtomicIfChanged(ctx, "/new.robot", []byte("x\n"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestBackups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/a.robot": "original\n"})
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	assert.Equal(t, "/a.robot.robotxt.bak", fsutil.BackupPath("/a.robot", fsutil.BackupModeSidecar))
	assert.Empty(t, fsutil.BackupPath("/a.robot", fsutil.BackupModeNone))

	created, err := fsys.CreateBackup(ctx, "/a.robot", cfg)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fsys.BackupExists("/a.robot", fsutil.BackupModeSidecar))

	require.NoError(t, fsys.WriteAtomic(ctx, "/a.robot", []byte("rewritten\n"), 0))

	created, err = fsys.CreateBackup(ctx, "/a.robot", cfg)
	require.NoError(t, err)
	assert.False(t, created, "an existing backup is kept")

	restored, err := fsys.RestoreBackup(ctx, "/a.robot", fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := afero.ReadFile(fsys.Afero(), "/a.robot")
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(got))

	removed, err := fsys.RemoveBackup("/a.robot", fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fsys.RemoveBackup("/a.robot", fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, removed)

	restored, err = fsys.RestoreBackup(ctx, "/a.robot", fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestCreateBackupDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fsys := memFS(t, map[string]string{"/a.robot": "x\n"})

	for _, cfg := range []fsutil.BackupConfig{
		fsutil.DefaultBackupConfig(),
		{Enabled: true, Mode: fsutil.BackupModeNone},
	} {
		created, err := fsys.CreateBackup(ctx, "/a.robot", cfg)
		require.NoError(t, err)
		assert.False(t, created)
	}

	created, err := fsys.CreateBackup(ctx, "/missing.robot", fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar})
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, errors.Is(err, fsutil.ErrNotFound))
}
