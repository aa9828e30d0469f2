package ngast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/ngast"
)

func TestInsertImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		symbol string
		module string
		want   string
	}{
		{
			name:   "after last import",
			source: "import { A } from 'a';\nimport { B } from 'b';\n\nexport class C {}\n",
			symbol: "Foo",
			module: "./foo",
			want:   "import { A } from 'a';\nimport { B } from 'b';\nimport { Foo } from './foo';\n\nexport class C {}\n",
		},
		{
			name:   "no imports",
			source: "export const a = 1;\n",
			symbol: "X",
			module: "./x",
			want:   "import { X } from './x';\nexport const a = 1;\n",
		},
		{
			name:   "below license header",
			source: "/* license */\n@Component({})\nexport class C {}\n",
			symbol: "X",
			module: "./x",
			want:   "/* license */\nimport { X } from './x';\n@Component({})\nexport class C {}\n",
		},
		{
			name:   "below line comment header",
			source: "// Copyright\n// Example\n\nexport const a = 1;\n",
			symbol: "X",
			module: "./x",
			want:   "// Copyright\n// Example\nimport { X } from './x';\n\nexport const a = 1;\n",
		},
		{
			name:   "above doc comment of first statement",
			source: "/** The root module. */\nexport class C {}\n",
			symbol: "X",
			module: "./x",
			want:   "import { X } from './x';\n/** The root module. */\nexport class C {}\n",
		},
		{
			name:   "empty file",
			source: "",
			symbol: "X",
			module: "./x",
			want:   "import { X } from './x';\n",
		},
		{
			name:   "after use strict",
			source: "'use strict';\nconst a = 1;\n",
			symbol: "X",
			module: "./x",
			want:   "'use strict';\nimport { X } from './x';\nconst a = 1;\n",
		},
		{
			name:   "last import without newline",
			source: "import { A } from 'a';",
			symbol: "X",
			module: "./x",
			want:   "import { A } from 'a';\nimport { X } from './x';",
		},
		{
			name:   "crlf line endings",
			source: "import { A } from 'a';\r\n\r\nexport class C {}\r\n",
			symbol: "X",
			module: "./x",
			want:   "import { A } from 'a';\r\nimport { X } from './x';\r\n\r\nexport class C {}\r\n",
		},
		{
			name:   "extends named import from same module",
			source: "import { NgModule } from '@angular/core';\n",
			symbol: "Component",
			module: "@angular/core",
			want:   "import { NgModule, Component } from '@angular/core';\n",
		},
		{
			name:   "extends named import with trailing comma",
			source: "import {\n  A,\n} from 'a';\n",
			symbol: "B",
			module: "a",
			want:   "import {\n  A,\n  B,\n} from 'a';\n",
		},
		{
			name:   "adds named clause to default import",
			source: "import Foo from './foo';\n",
			symbol: "Bar",
			module: "./foo",
			want:   "import Foo, { Bar } from './foo';\n",
		},
		{
			name:   "already imported",
			source: "import { Foo } from './foo';\n",
			symbol: "Foo",
			module: "./foo",
			want:   "import { Foo } from './foo';\n",
		},
		{
			name:   "namespace import covers module",
			source: "import * as core from '@angular/core';\n",
			symbol: "NgModule",
			module: "@angular/core",
			want:   "import * as core from '@angular/core';\n",
		},
		{
			name:   "same name from another module",
			source: "import { Foo } from './bar';\n",
			symbol: "Foo",
			module: "./foo",
			want:   "import { Foo } from './bar';\nimport { Foo } from './foo';\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := parse(t, tt.source)
			got := apply(t, file, ngast.InsertImport(file, tt.symbol, tt.module))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertImport_Quote(t *testing.T) {
	t.Parallel()

	planner := &ngast.Planner{Quote: `"`}
	file := parse(t, "const a = 1;\n")

	got := apply(t, file, planner.InsertImport(file, "X", "./x"))
	assert.Equal(t, "import { X } from \"./x\";\nconst a = 1;\n", got)
}

func TestInsertImport_SecondCallIsNoop(t *testing.T) {
	t.Parallel()

	file := parse(t, "import { A } from 'a';\n\nexport class C {}\n")
	assert.False(t, locate.IsIdentifierImported(file, "Foo", "./foo"))

	once := apply(t, file, ngast.InsertImport(file, "Foo", "./foo"))

	reparsed := parse(t, once)
	assert.True(t, locate.IsIdentifierImported(reparsed, "Foo", "./foo"))
	assert.Empty(t, ngast.InsertImport(reparsed, "Foo", "./foo"))
}
