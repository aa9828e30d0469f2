package jsonedit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/fix"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

func parse(t *testing.T, content string) *srcast.SourceFile {
	t.Helper()

	file, err := jsonast.New().Parse(context.Background(), "test.json", []byte(content))
	require.NoError(t, err)
	return file
}

// apply applies edits and checks that the result is still valid JSON.
func apply(t *testing.T, file *srcast.SourceFile, edits []fix.TextEdit) string {
	t.Helper()

	out, err := fix.NewRecorder(file.Path, file.Content).Apply(edits...).Result()
	require.NoError(t, err)

	_, err = jsonast.New().Parse(context.Background(), file.Path, out)
	require.NoError(t, err, "result must stay valid JSON:\n%s", out)
	return string(out)
}
