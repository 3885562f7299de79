package backup

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const container = "ui-datacollections_assets_all.bundle"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, fs.Join("bundles", container), []byte("v1"), 0o644))
	return NewManager(fs, "bundles")
}

func TestCreateOriginal_OneShot(t *testing.T) {
	mgr := newTestManager(t)

	target, created, err := mgr.CreateOriginal(container)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, target, mgr.Original(container))

	// The container changes; a second call must not clobber the original.
	require.NoError(t, util.WriteFile(mgr.fs, mgr.fs.Join("bundles", container), []byte("v2"), 0o644))
	_, created, err = mgr.CreateOriginal(container)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := util.ReadFile(mgr.fs, mgr.Original(container))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestCreateOriginal_MissingContainer(t *testing.T) {
	mgr := NewManager(memfs.New(), "bundles")
	_, _, err := mgr.CreateOriginal(container)
	assert.Error(t, err)
}

func TestCreateAndList(t *testing.T) {
	mgr := newTestManager(t)

	first, err := mgr.Create(container, time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := mgr.Create(container, time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	backups, err := mgr.List(container)
	require.NoError(t, err)
	assert.Len(t, backups, 2)

	// An unrelated container has no backups; the prefix filter excludes ours.
	other, err := mgr.List("ui-styles_assets_default.bundle")
	require.NoError(t, err)
	assert.Empty(t, other)

	latest, err := mgr.Latest(container)
	require.NoError(t, err)
	assert.NotEmpty(t, latest)
}

func TestList_NoBackupDir(t *testing.T) {
	mgr := newTestManager(t)
	backups, err := mgr.List(container)
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestRestoreOriginal(t *testing.T) {
	mgr := newTestManager(t)
	_, _, err := mgr.CreateOriginal(container)
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(mgr.fs, mgr.fs.Join("bundles", container), []byte("edited"), 0o644))
	require.NoError(t, mgr.RestoreOriginal(container))

	data, err := util.ReadFile(mgr.fs, mgr.fs.Join("bundles", container))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestRestoreOriginal_WithoutOriginal(t *testing.T) {
	mgr := newTestManager(t)
	assert.Error(t, mgr.RestoreOriginal(container))
}

func TestRestore_NamedBackup(t *testing.T) {
	mgr := newTestManager(t)
	_, err := mgr.Create(container, time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, util.WriteFile(mgr.fs, mgr.fs.Join("bundles", container), []byte("edited"), 0o644))

	// Restore takes the backup's file name, not its full path.
	backups, err := mgr.List(container)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	require.NoError(t, mgr.Restore(backups[0], container))

	data, err := util.ReadFile(mgr.fs, mgr.fs.Join("bundles", container))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}
