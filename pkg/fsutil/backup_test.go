package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.ts.ngpatch.bak", fsutil.BackupPath("a.ts", fsutil.BackupModeSidecar))
	assert.Equal(t, "a.ts.ngpatch.bak", fsutil.BackupPath("a.ts", "unknown"))
	assert.Empty(t, fsutil.BackupPath("a.ts", fsutil.BackupModeNone))
}

func TestDefaultBackupConfig(t *testing.T) {
	t.Parallel()

	cfg := fsutil.DefaultBackupConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, fsutil.BackupModeSidecar, cfg.Mode)
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	enabled := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("creates once", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "tslint.json")
		require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

		created, err := fsutil.CreateBackup(ctx, path, enabled)
		require.NoError(t, err)
		assert.True(t, created)

		require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
		created, err = fsutil.CreateBackup(ctx, path, enabled)
		require.NoError(t, err)
		assert.False(t, created)

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(got))
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "tslint.json")
		require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

		for _, cfg := range []fsutil.BackupConfig{
			fsutil.DefaultBackupConfig(),
			{Enabled: true, Mode: fsutil.BackupModeNone},
		} {
			created, err := fsutil.CreateBackup(ctx, path, cfg)
			require.NoError(t, err)
			assert.False(t, created)
		}
		assert.NoFileExists(t, path+fsutil.BackupSuffix)
	})

	t.Run("missing original", func(t *testing.T) {
		t.Parallel()

		created, err := fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "none.json"), enabled)
		require.NoError(t, err)
		assert.False(t, created)
	})
}
