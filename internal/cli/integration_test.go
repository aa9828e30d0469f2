package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/internal/cli"
)

const appModule = `import { BrowserModule } from '@angular/platform-browser';
import { NgModule } from '@angular/core';
import { AppComponent } from './app.component';

@NgModule({
  declarations: [
    AppComponent
  ],
  imports: [
    BrowserModule
  ],
  providers: [],
  bootstrap: [AppComponent]
})
export class AppModule { }
`

const tslint = `{
  "rules": {
    "import-blacklist": [
      true,
      "rxjs",
      "lodash"
    ],
    "quotemark": [true, "single"]
  }
}
`

// workspace writes files under a fresh root and an empty config file so
// that user or project configuration on the machine cannot leak in.
func workspace(t *testing.T, files map[string]string) (string, string) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := filepath.Join(t.TempDir(), "ngpatch.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("color: never\n"), 0o644))
	return root, cfg
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(content)
}

func TestIntegration_AddExport(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"src/app/app.module.ts": appModule})

	res := run(t, "", "--config", cfg, "--root", root,
		"add-export", "src/app/app.module.ts", "FooComponent", "./foo.component")
	require.NoError(t, res.err, res.stderr)

	got := readFile(t, root, "src/app/app.module.ts")
	assert.Contains(t, got, "import { FooComponent } from './foo.component';\n\n@NgModule")
	assert.Contains(t, got, "  bootstrap: [AppComponent],\n  exports: [FooComponent]\n})")
	assert.Contains(t, res.stdout, "1 file updated")
}

func TestIntegration_AddToModuleIsIdempotent(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"app.module.ts": appModule})

	args := []string{"--config", cfg, "--root", root,
		"add-to-module", "--property", "imports", "app.module.ts", "HttpClientModule", "@angular/common/http"}

	require.NoError(t, run(t, "", args...).err)
	first := readFile(t, root, "app.module.ts")
	assert.Contains(t, first, "    BrowserModule,\n    HttpClientModule\n  ],")
	assert.Contains(t, first, "import { HttpClientModule } from '@angular/common/http';")

	res := run(t, "", args...)
	require.NoError(t, res.err)
	assert.Equal(t, first, readFile(t, root, "app.module.ts"))
	assert.Contains(t, res.stdout, "No changes")
}

func TestIntegration_DryRunPrintsDiff(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"app.module.ts": appModule})

	res := run(t, "", "--config", cfg, "--root", root, "--dry-run",
		"add-entry-component", "app.module.ts", "DialogComponent", "./dialog.component")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, appModule, readFile(t, root, "app.module.ts"))
	assert.Contains(t, res.stdout, "diff --git a/app.module.ts b/app.module.ts")
	assert.Contains(t, res.stdout, "+  entryComponents: [DialogComponent]")
	assert.Contains(t, res.stdout, "+import { DialogComponent } from './dialog.component';")
	assert.Contains(t, res.stdout, "Dry run: 1 file updated (nothing written)")
}

func TestIntegration_QuoteFlag(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"main.ts": "import { enableProdMode } from '@angular/core';\n\nenableProdMode();\n"})

	res := run(t, "", "--config", cfg, "--root", root, "--quote", "double",
		"add-import", "main.ts", "environment", "./environments/environment")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t,
		"import { enableProdMode } from '@angular/core';\n"+
			"import { environment } from \"./environments/environment\";\n\nenableProdMode();\n",
		readFile(t, root, "main.ts"))
}

func TestIntegration_JSONRemoveAndAppend(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"tslint.json": tslint})

	res := run(t, "", "--config", cfg, "--root", root,
		"json-remove", "tslint.json", "rules", "import-blacklist", "--value", "rxjs")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "tslint.json"), "[\n      true,\n      \"lodash\"\n    ],")

	res = run(t, "", "--config", cfg, "--root", root,
		"json-append", "tslint.json", "rules", "import-blacklist", "--value", `"rxjs"`, "--unique")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "tslint.json"), "[\n      true,\n      \"lodash\",\n      \"rxjs\"\n    ],")

	res = run(t, "", "--config", cfg, "--root", root,
		"json-append", "tslint.json", "rules", "import-blacklist", "--value", `"rxjs"`, "--unique")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No changes")
}

func TestIntegration_JSONAppendProperty(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"tslint.json": tslint})

	res := run(t, "", "--config", cfg, "--root", root,
		"json-append", "tslint.json", "rules", "--key", "no-console", "--value", "true")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "tslint.json"),
		"    \"quotemark\": [true, \"single\"],\n    \"no-console\": true\n  }")

	res = run(t, "", "--config", cfg, "--root", root,
		"json-append", "tslint.json", "rules", "--key", "no-console", "--value", "false", "--overwrite")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "tslint.json"), "\"no-console\": false\n")
}

func TestIntegration_AddDependency(t *testing.T) {
	t.Parallel()

	pkg := "{\n  \"name\": \"app\",\n  \"dependencies\": {\n    \"@angular/core\": \"^17.0.0\",\n    \"rxjs\": \"~7.8.0\"\n  }\n}\n"
	root, cfg := workspace(t, map[string]string{"package.json": pkg})

	res := run(t, "", "--config", cfg, "--root", root, "add-dependency", "@angular/cdk", "^17.0.0")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "package.json"),
		"    \"@angular/cdk\": \"^17.0.0\",\n    \"@angular/core\": \"^17.0.0\",")

	res = run(t, "", "--config", cfg, "--root", root, "add-dependency", "--dev", "typescript", "~5.2.0")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, readFile(t, root, "package.json"), "\"devDependencies\": {\n    \"typescript\": \"~5.2.0\"\n  }")
}

func TestIntegration_MigrateLint(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{
		"tslint.json":     tslint,
		"src/tslint.json": "{\n  \"extends\": \"../tslint.json\"\n}\n",
	})

	res := run(t, "", "--config", cfg, "--root", root, "--debug", "migrate-lint")
	require.NoError(t, res.err, res.stderr)

	assert.NotContains(t, readFile(t, root, "tslint.json"), "rxjs")
	assert.Contains(t, res.stderr, "no import-blacklist rule")
	assert.Contains(t, res.stdout, "1 file updated")
}

func TestIntegration_MigrateLintAll(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{
		"tslint.json":                  tslint,
		"projects/admin/tslint.json":   tslint,
		"node_modules/pkg/tslint.json": tslint,
	})

	res := run(t, "", "--config", cfg, "--root", root, "migrate-lint", "--all")
	require.NoError(t, res.err, res.stderr)

	assert.NotContains(t, readFile(t, root, "tslint.json"), "rxjs")
	assert.NotContains(t, readFile(t, root, "projects/admin/tslint.json"), "rxjs")
	assert.Equal(t, tslint, readFile(t, root, "node_modules/pkg/tslint.json"))
	assert.Contains(t, res.stdout, "2 files updated")
}

func TestIntegration_BackupsFlag(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{"tslint.json": tslint})

	res := run(t, "", "--config", cfg, "--root", root, "--backups", "migrate-lint", "--yes")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, tslint, readFile(t, root, "tslint.json.ngpatch.bak"))
}

func TestIntegration_ExitCodes(t *testing.T) {
	t.Parallel()

	root, cfg := workspace(t, map[string]string{
		"plain.ts":    "export const x = 1;\n",
		"broken.ts":   "export class {\n",
		"broken.json": "{\"a\": }",
		"tslint.json": tslint,
	})

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing file", []string{"add-import", "nope.ts", "A", "./a"}, cli.ExitNoInput},
		{"no decorator", []string{"add-to-module", "plain.ts", "A", "./a"}, cli.ExitDataError},
		{"syntax errors", []string{"add-import", "broken.ts", "A", "./a"}, cli.ExitDataError},
		{"invalid json", []string{"json-remove", "broken.json", "a", "--value", "x"}, cli.ExitDataError},
		{"missing json path", []string{"json-remove", "tslint.json", "nope", "--value", "x"}, cli.ExitDataError},
		{"invalid value", []string{"json-append", "tslint.json", "rules", "--value", "{"}, cli.ExitInvalidUsage},
		{"unknown property", []string{"add-to-module", "-p", "schemas", "plain.ts", "A"}, cli.ExitInvalidUsage},
		{"bad quote", []string{"--quote", "backtick", "add-import", "plain.ts", "A", "./a"}, cli.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := run(t, "", append([]string{"--config", cfg, "--root", root}, tt.args...)...)
			require.Error(t, res.err)
			assert.Equal(t, tt.want, cli.ExitCode(res.err), res.err.Error())
		})
	}

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitAborted, cli.ExitCode(cli.ErrAborted))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(errors.New("boom")))
}

func TestIntegration_ConfigInitAndShow(t *testing.T) {
	t.Parallel()

	_, cfg := workspace(t, nil)
	output := filepath.Join(t.TempDir(), ".ngpatch.yml")

	res := run(t, "", "config", "init", "--output", output)
	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, output)

	res = run(t, "", "config", "init", "--output", output)
	require.Error(t, res.err)

	res = run(t, "", "--config", cfg, "--quote", "double", "config", "show")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "quote: double")
	assert.Contains(t, res.stdout, "# from "+cfg)

	res = run(t, "", "config", "env")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "NGPATCH_QUOTE")
}
