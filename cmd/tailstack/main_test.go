package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `version: "1.0"
theme:
  spacing:
    4: 1rem
    8: 2rem
  colors:
    black: '#000'
variants:
  textColor: [responsive, hover, group-hover]
purge:
  content:
    - ./assets/*.html
    - ./src/**/*.cljs
output: dist/utilities.css
`

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// setupProject writes a config plus content files and pins the environment
// so host settings do not leak into the build.
func setupProject(t *testing.T, config string) string {
	t.Helper()

	t.Setenv("NODE_ENV", "development")
	t.Setenv("TAILSTACK_LOG_LEVEL", "info")
	t.Setenv("TAILSTACK_LOG_FORMAT", "json")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "app"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "index.html"),
		[]byte(`<div id="app" class="stack-my-4"></div>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app", "core.cljs"),
		[]byte(`[:div {:class "stack-border-y md:w-full group-hover:text-black"}]`), 0o644))

	path := filepath.Join(dir, "tailstack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	return path
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-01-15"

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "tailstack 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-01-15")
}

func TestBuildWritesFullSheetToStdout(t *testing.T) {
	path := setupProject(t, testConfig)

	stdout, stderr, err := executeCommand("build", "-c", path, "-o", "-", "--no-purge")
	require.NoError(t, err)

	require.Contains(t, stdout, ".stack-my-4 > * + * {\n  margin-top: 1rem;\n}\n")
	require.Contains(t, stdout, ".stack-my-8 > * + * {\n  margin-top: 2rem;\n}\n")
	require.Contains(t, stdout, ".stack-px-4 > * + * {\n  padding-left: 1rem;\n}\n")
	require.Contains(t, stdout, ".stack-border-y > * + * {\n  border-top-width: 1px;\n}\n")
	require.Contains(t, stdout, ".stack-border-x-2 > * + * {\n  border-left-width: 2px;\n}\n")
	require.Contains(t, stdout, ".group:hover .group-hover\\:text-black {\n  color: #000;\n}\n")
	require.Contains(t, stdout, "@media (min-width: 640px) {\n")
	require.Contains(t, stdout, "  .sm\\:stack-my-4 > * + * {\n    margin-top: 1rem;\n  }\n")

	require.Less(t, strings.Index(stdout, ".stack-my-4 "), strings.Index(stdout, ".stack-border-y "))
	require.Contains(t, stderr, `"message":"stylesheet built"`)
	require.Contains(t, stderr, `"purged":0`)
}

func TestBuildPurgesAgainstContent(t *testing.T) {
	path := setupProject(t, testConfig)

	stdout, stderr, err := executeCommand("build", "-c", path, "--purge")
	require.NoError(t, err)

	out := filepath.Join(filepath.Dir(path), "dist", "utilities.css")
	require.Contains(t, stdout, "Wrote 4 rules")
	require.Contains(t, stdout, out)
	require.Contains(t, stderr, `"rules":4`)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	css := string(data)

	require.Contains(t, css, ".stack-my-4 > * + *")
	require.Contains(t, css, ".stack-border-y > * + *")
	require.Contains(t, css, ".group:hover .group-hover\\:text-black")
	require.Contains(t, css, "@media (min-width: 768px) {\n  .md\\:w-full {\n    width: 100%;\n  }\n}\n")
	require.NotContains(t, css, ".stack-my-8")
	require.NotContains(t, css, "640px")
}

func TestBuildPurgesInProduction(t *testing.T) {
	path := setupProject(t, testConfig)
	t.Setenv("NODE_ENV", "production")

	stdout, _, err := executeCommand("build", "-c", path, "-o", "-")
	require.NoError(t, err)
	require.Contains(t, stdout, ".stack-my-4 > * + *")
	require.NotContains(t, stdout, ".stack-my-8")
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	path := setupProject(t, "version: \"1.0\"\nvariants:\n  padding: [wiggle]\n")

	_, _, err := executeCommand("build", "-c", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
	require.Contains(t, err.Error(), `unknown variant "wiggle"`)
}

func TestBuildRequiresExistingConfig(t *testing.T) {
	_, _, err := executeCommand("build", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")

	_, _, err = executeCommand("build")
	require.Error(t, err)
	require.Contains(t, err.Error(), "config")
}

func TestBuildRejectsConflictingPurgeFlags(t *testing.T) {
	path := setupProject(t, testConfig)

	_, _, err := executeCommand("build", "-c", path, "--purge", "--no-purge")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be combined")
}

func TestListCommandFiltersFamily(t *testing.T) {
	path := setupProject(t, testConfig)

	stdout, _, err := executeCommand("list", "-c", path, "--family", "borderWidth")
	require.NoError(t, err)

	require.Contains(t, stdout, "CLASS")
	require.Contains(t, stdout, "stack-border-y")
	require.Contains(t, stdout, "border-top-width: 1px;")
	require.Contains(t, stdout, "lg:stack-border-x-8")
	require.NotContains(t, stdout, "stack-my-4")
}

func TestListCommandJSON(t *testing.T) {
	path := setupProject(t, testConfig)

	stdout, _, err := executeCommand("list", "-c", path, "--family", "padding", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	// 4 templates x 2 modifiers, base plus four screens.
	require.Equal(t, 40, payload.Count)
	require.Len(t, payload.Utilities, 40)
	require.Equal(t, "stack-my-4", payload.Utilities[0].Class)
	require.Equal(t, ".stack-my-4 > * + *", payload.Utilities[0].Selector)
	require.Equal(t, map[string]string{"margin-top": "1rem"}, payload.Utilities[0].Declaration)
}

func TestExtractCommandReadsFiles(t *testing.T) {
	path := setupProject(t, testConfig)
	content := filepath.Join(filepath.Dir(path), "src", "app", "core.cljs")

	stdout, _, err := executeCommand("extract", content)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Contains(t, lines, "stack-border-y")
	require.Contains(t, lines, "md:w-full")
	require.Contains(t, lines, "group-hover:text-black")
	require.Contains(t, lines, "div")
}

func TestExtractCommandReadsStdin(t *testing.T) {
	setupProject(t, testConfig)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(`<p class="stack-py-2 stack-py-2">`))
	root.SetArgs([]string{"extract"})

	require.NoError(t, root.Execute())
	require.Equal(t, "class\np\nstack-py-2\n", stdout.String())
}

func TestExtractCommandRejectsBadPattern(t *testing.T) {
	setupProject(t, testConfig)

	_, _, err := executeCommand("extract", "--pattern", "[")
	require.Error(t, err)
	require.Contains(t, err.Error(), "compiling pattern")
}

func TestBuildCheckDetectsStaleOutput(t *testing.T) {
	path := setupProject(t, testConfig)
	out := filepath.Join(filepath.Dir(path), "dist", "utilities.css")

	_, _, err := executeCommand("build", "-c", path, "--purge", "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of date")

	_, _, err = executeCommand("build", "-c", path, "--purge")
	require.NoError(t, err)

	stdout, _, err := executeCommand("build", "-c", path, "--purge", "--check")
	require.NoError(t, err)
	require.Contains(t, stdout, "Up to date: "+out)

	stdout, _, err = executeCommand("build", "-c", path, "--no-purge", "--check")
	require.Error(t, err)
	require.Contains(t, stdout, "+.stack-my-8 > * + * {")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotContains(t, string(data), ".stack-my-8", "check must not rewrite the file")
}
