package locate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/parser/typescript"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

const appModule = `import { BrowserModule } from '@angular/platform-browser';
import { NgModule as Module, Component } from '@angular/core';
import * as core from '@angular/core';
import Default from './default';

@Module({
  declarations: [AppComponent],
  imports: [BrowserModule],
  'providers': []
})
export class AppModule {}

@core.NgModule({ exports: [] })
export class SharedModule {}

@Component({ selector: 'app' })
export class AppComponent {}
`

func parseTS(t *testing.T, content string) *srcast.SourceFile {
	t.Helper()

	file, err := typescript.New().Parse(context.Background(), "app.module.ts", []byte(content))
	require.NoError(t, err)
	return file
}

func parseJSON(t *testing.T, content string) *srcast.SourceFile {
	t.Helper()

	file, err := jsonast.New().Parse(context.Background(), "package.json", []byte(content))
	require.NoError(t, err)
	return file
}

func TestFindNodes(t *testing.T) {
	t.Parallel()

	file := parseTS(t, appModule)

	tests := []struct {
		name  string
		kind  srcast.Kind
		limit int
		want  int
	}{
		{name: "all imports", kind: srcast.KindImportStatement, limit: 0, want: 4},
		{name: "limited", kind: srcast.KindImportStatement, limit: 2, want: 2},
		{name: "decorators", kind: srcast.KindDecorator, limit: -1, want: 3},
		{name: "absent kind", kind: srcast.KindNull, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, locate.FindNodes(file.Root, tt.kind, tt.limit), tt.want)
		})
	}
}

func TestFindNodeOfKind(t *testing.T) {
	t.Parallel()

	file := parseTS(t, appModule)

	id := locate.FindNodeOfKind(file.Root, srcast.KindIdentifier, "AppComponent")
	require.NotNil(t, id)
	assert.Equal(t, "AppComponent", id.Text())

	assert.Nil(t, locate.FindNodeOfKind(file.Root, srcast.KindIdentifier, "Missing"))
	assert.NotNil(t, locate.FindNodeOfKind(file.Root, srcast.KindClassDeclaration, ""))
}

func TestFindPropertyByName(t *testing.T) {
	t.Parallel()

	file := parseTS(t, appModule)
	objects := locate.DecoratorMetadata(file, "NgModule", "@angular/core")
	require.NotEmpty(t, objects)

	value := locate.FindPropertyByName(objects[0], "imports")
	require.NotNil(t, value)
	assert.Equal(t, "[BrowserModule]", value.Text())

	quoted := locate.FindPropertyByName(objects[0], "providers")
	require.NotNil(t, quoted)
	assert.Equal(t, "[]", quoted.Text())

	assert.Nil(t, locate.FindPropertyByName(objects[0], "exports"))
	assert.Nil(t, locate.FindPropertyByName(nil, "imports"))
}

func TestFindPropertyByName_JSON(t *testing.T) {
	t.Parallel()

	file := parseJSON(t, `{"dependencies": {"rxjs": "~7.8.0"}, "name": "demo"}`)

	deps := locate.FindPropertyByName(file.Root.FirstChild, "dependencies")
	require.NotNil(t, deps)
	assert.Equal(t, srcast.KindObject, deps.Kind)

	name := locate.FindPropertyByName(file.Root.FirstChild, "name")
	require.NotNil(t, name)
	assert.Equal(t, `"demo"`, name.Text())

	assert.Equal(t, []string{"rxjs"}, keys(deps))
}

func keys(object *srcast.Node) []string {
	var out []string
	for _, pair := range locate.Elements(object) {
		if key, ok := locate.PropertyKey(pair); ok {
			out = append(out, key)
		}
	}
	return out
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: `'a'`, want: "a"},
		{in: `"b"`, want: "b"},
		{in: "`c`", want: "c"},
		{in: `'d"`, want: `'d"`},
		{in: `x`, want: "x"},
		{in: ``, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, locate.Unquote(tt.in), tt.in)
	}
}
