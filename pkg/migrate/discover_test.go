package migrate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/migrate"
)

func TestDiscoverLintConfigs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{
		"tslint.json",
		"src/tslint.json",
		"projects/admin/tslint.json",
		"projects/admin/src/app/app.module.ts",
		"node_modules/codelyzer/tslint.json",
		".angular/cache/tslint.json",
		"dist/app/tslint.json",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	got, err := migrate.DiscoverLintConfigs(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"projects/admin/tslint.json", "src/tslint.json", "tslint.json"}, got)
}

func TestDiscoverLintConfigsCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := migrate.DiscoverLintConfigs(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}
