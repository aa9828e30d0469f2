package ngast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/parser/typescript"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

func parse(t *testing.T, content string) *srcast.SourceFile {
	t.Helper()

	file, err := typescript.New().Parse(context.Background(), "app.module.ts", []byte(content))
	require.NoError(t, err)
	require.False(t, file.HasErrors, "fixture must be valid TypeScript")
	return file
}

func apply(t *testing.T, file *srcast.SourceFile, edits []fix.TextEdit) string {
	t.Helper()

	out, err := fix.NewRecorder(file.Path, file.Content).Apply(edits...).Result()
	require.NoError(t, err)
	return string(out)
}
