package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fatih/color"
	"github.com/gentem/gentem/cli/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() templates.TemplateEngine {
	return templates.NewEngine(fstest.MapFS{
		"kit/readme.md.tmpl": {Data: []byte("# {{ .project_name }}\n")},
		"kit/init.py.tmpl":   {Data: []byte("__version__ = \"{{ .version }}\"\n")},
		"kit/broken.tmpl":    {Data: []byte("{{ if .x }}")},
	})
}

var testSpecs = []FileSpec{
	{Template: "kit/readme.md", Destination: "README.md"},
	{Template: "kit/init.py", Destination: "src/{{ .package_name }}/__init__.py"},
}

var testCtx = templates.Context{
	"project_name": "demo",
	"package_name": "demo",
	"version":      "0.1.0",
}

func TestWriteCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	writer := Writer{Engine: newTestEngine()}

	results, err := writer.Write(dir, testSpecs, testCtx)
	require.NoError(t, err)
	assert.Equal(t, []Result{
		{Path: "README.md", Status: StatusCreated},
		{Path: "src/demo/__init__.py", Status: StatusCreated},
	}, results)

	content, err := os.ReadFile(filepath.Join(dir, "src", "demo", "__init__.py"))
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"0.1.0\"\n", string(content))
}

func TestWriteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("custom\n"), 0o644))

	writer := Writer{Engine: newTestEngine()}
	results, err := writer.Write(dir, testSpecs, testCtx)
	require.NoError(t, err)
	assert.Equal(t, StatusExists, results[0].Status)
	assert.Equal(t, StatusCreated, results[1].Status)
	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(content))

	writer.Force = true
	results, err = writer.Write(dir, testSpecs, testCtx)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, results[0].Status)
	assert.Equal(t, StatusUpdated, results[1].Status)
	content, err = os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "# demo\n", string(content))
}

func TestWriteDryRun(t *testing.T) {
	dir := t.TempDir()
	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("custom\n"), 0o644))

	writer := Writer{Engine: newTestEngine(), DryRun: true}
	results, err := writer.Write(dir, testSpecs, testCtx)
	require.NoError(t, err)
	assert.Equal(t, []Result{
		{Path: "README.md", Status: StatusExists},
		{Path: "src/demo/__init__.py", Status: StatusWouldCreate},
	}, results)

	var diff bytes.Buffer
	writer.Force = true
	writer.DiffWriter = &diff
	results, err = writer.Write(dir, testSpecs, testCtx)
	require.NoError(t, err)
	assert.Equal(t, StatusWouldUpdate, results[0].Status)
	assert.Equal(t, StatusWouldCreate, results[1].Status)
	assert.Contains(t, diff.String(), "--- a/README.md")
	assert.Contains(t, diff.String(), "-custom")
	assert.Contains(t, diff.String(), "+# demo")

	assert.NoDirExists(t, filepath.Join(dir, "src"))
	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(content))
}

func TestWriteStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	specs := []FileSpec{
		{Template: "kit/readme.md", Destination: "README.md"},
		{Template: "kit/missing", Destination: "missing.txt"},
		{Template: "kit/init.py", Destination: "init.py"},
	}

	writer := Writer{Engine: newTestEngine()}
	results, err := writer.Write(dir, specs, testCtx)
	require.Error(t, err)
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.Equal(t, []Result{{Path: "README.md", Status: StatusCreated}}, results)
	assert.FileExists(t, filepath.Join(dir, "README.md"))
	assert.NoFileExists(t, filepath.Join(dir, "missing.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "init.py"))
}

func TestWriteDryRunMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	specs := []FileSpec{
		{Template: "kit/readme.md", Destination: "README.md"},
		{Template: "kit/missing.txt", Destination: "missing.txt"},
	}

	writer := Writer{Engine: newTestEngine(), DryRun: true}
	results, err := writer.Write(dir, specs, testCtx)
	require.Error(t, err)
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "kit/missing.txt")
	assert.Equal(t, []Result{{Path: "README.md", Status: StatusWouldCreate}}, results)
	assert.NoFileExists(t, filepath.Join(dir, "README.md"))
}

func TestWriteMalformedTemplate(t *testing.T) {
	dir := t.TempDir()
	writer := Writer{Engine: newTestEngine()}
	_, err := writer.Write(dir, []FileSpec{{Template: "kit/broken", Destination: "b.txt"}},
		testCtx)
	var renderError *templates.RenderError
	require.ErrorAs(t, err, &renderError)
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
}

func TestWriteRejectsOutsideDestination(t *testing.T) {
	dir := t.TempDir()
	writer := Writer{Engine: newTestEngine()}
	for _, destination := range []string{"../escape.txt", "/abs/path.txt", "{{ .up }}/x"} {
		_, err := writer.Write(dir, []FileSpec{
			{Template: "kit/readme.md", Destination: destination},
		}, templates.Context{"up": ".."})
		assert.ErrorContains(t, err, "outside of the project directory", destination)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "created", StatusCreated.String())
	assert.Equal(t, "updated", StatusUpdated.String())
	assert.Equal(t, "exists", StatusExists.String())
	assert.Equal(t, "would create", StatusWouldCreate.String())
	assert.Equal(t, "would update", StatusWouldUpdate.String())
	assert.Equal(t, "Status(42)", Status(42).String())
}

func TestPrintResults(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	PrintResults(&out, []Result{
		{Path: "Dockerfile", Status: StatusCreated},
		{Path: ".dockerignore", Status: StatusUpdated},
		{Path: "docker-compose.yml", Status: StatusExists},
		{Path: "mkdocs.yml", Status: StatusWouldCreate},
	})
	assert.Equal(t, "  ✓ Created: Dockerfile\n"+
		"  ✓ Updated: .dockerignore\n"+
		"  ? docker-compose.yml (exists, use --force to overwrite)\n"+
		"  - mkdocs.yml (would create)\n", out.String())
}

func TestPrintPlan(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	PrintPlan(&out, []Result{
		{Path: "Dockerfile", Status: StatusWouldCreate},
		{Path: "README.md", Status: StatusWouldUpdate},
	})
	assert.Contains(t, out.String(), "FILE")
	assert.Contains(t, out.String(), "Dockerfile")
	assert.Contains(t, out.String(), "would update")
}

func TestSummary(t *testing.T) {
	counts := Summary([]Result{
		{Path: "a", Status: StatusCreated},
		{Path: "b", Status: StatusCreated},
		{Path: "c", Status: StatusExists},
	})
	assert.Equal(t, map[Status]int{StatusCreated: 2, StatusExists: 1}, counts)
}

func TestUnifiedDiff(t *testing.T) {
	diff, err := UnifiedDiff("a\nb\n", "a\nc\n", "file.txt")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/file.txt\n+++ b/file.txt\n")
	assert.Contains(t, diff, "-b\n+c\n")

	diff, err = UnifiedDiff("same\n", "same\n", "file.txt")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
