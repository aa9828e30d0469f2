package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/parser"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/parser/typescript"
)

func TestForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		wantLang string
		wantErr  bool
	}{
		{"ts", "src/app/app.module.ts", "export class A {}", typescript.Language, false},
		{"upper case ext", "MAIN.TS", "", typescript.Language, false},
		{"tsx", "src/app/view.tsx", "export const View = () => <div className=\"x\">{name}</div>;", typescript.Language, false},
		{"json", "angular.json", "{}", jsonast.Language, false},
		{"detected json", ".angular-cli", `{"apps": []}`, jsonast.Language, false},
		{"unsupported", "README", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := parser.ForPath(tt.path, []byte(tt.content))
			if tt.wantErr {
				require.ErrorIs(t, err, parser.ErrUnsupportedLanguage)
				return
			}
			require.NoError(t, err)

			file, err := p.Parse(context.Background(), tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, file.Language)
			assert.Equal(t, tt.path, file.Path)
			assert.False(t, file.HasErrors)
		})
	}
}

func TestParse_WrapsParserErrors(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse(context.Background(), "bad.json", []byte("{"))
	require.Error(t, err)

	var syntaxErr *jsonast.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, err.Error(), "parse bad.json")
}
