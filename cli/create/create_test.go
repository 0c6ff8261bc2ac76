package create

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/fatih/color"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/util"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			relPath, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(relPath))
		}
		return nil
	})
	require.NoError(t, err)
	slices.Sort(files)
	return files
}

func TestCreateLibrary(t *testing.T) {
	color.NoColor = true
	workDir := t.TempDir()
	var out bytes.Buffer
	createCtx := create_ctx.CreateCtx{
		ProjectName:      "my_app",
		Author:           "Jane Doe",
		License:          "mit",
		WorkDir:          workDir,
		GeneratorVersion: "1.0.0",
		Writer:           &out,
	}
	require.NoError(t, Run(&createCtx))

	projectPath := filepath.Join(workDir, "my_app")
	assert.Equal(t, []string{
		".gentemrc",
		".gitignore",
		"LICENSE",
		"README.md",
		"pyproject.toml",
		"src/my_app/__init__.py",
		"src/my_app/core.py",
		"tests/test_my_app.py",
	}, listFiles(t, projectPath))

	license, err := os.ReadFile(filepath.Join(projectPath, "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(license), "MIT License")
	assert.Contains(t, string(license), "Jane Doe")

	manifest, err := os.ReadFile(filepath.Join(projectPath, "pyproject.toml"))
	require.NoError(t, err)
	var pyproject struct {
		Project struct {
			Name string
		}
	}
	require.NoError(t, toml.Unmarshal(manifest, &pyproject))
	assert.Equal(t, "my-app", pyproject.Project.Name)

	assert.Contains(t, out.String(), "Created: pyproject.toml")
	assert.Contains(t, out.String(), "Next steps:")
	assert.Contains(t, out.String(), "pytest")

	// The created project is recognized by add.
	ctx, err := project.InferContext(projectPath)
	require.NoError(t, err)
	assert.Equal(t, "my_app", ctx["package_name"])
	assert.Equal(t, "my-app", ctx["project_slug"])
	assert.Equal(t, project.TypeLibrary, ctx["project_type"])
}

func TestCreateWithoutLicense(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName: "tool",
		ProjectType: "script",
		WorkDir:     workDir,
	}
	require.NoError(t, Run(&createCtx))

	files := listFiles(t, filepath.Join(workDir, "tool"))
	assert.NotContains(t, files, "LICENSE")
	assert.Contains(t, files, "main.py")
}

func TestCreateFastapiWithDatabase(t *testing.T) {
	color.NoColor = true
	workDir := t.TempDir()
	var out bytes.Buffer
	createCtx := create_ctx.CreateCtx{
		ProjectName: "api",
		ProjectType: project.TypeFastapi,
		DbType:      "postgresql",
		AsyncMode:   true,
		WorkDir:     workDir,
		Writer:      &out,
	}
	require.NoError(t, Run(&createCtx))

	files := listFiles(t, filepath.Join(workDir, "api"))
	assert.Contains(t, files, "app/db.py")
	assert.Contains(t, files, "app/main.py")
	assert.Contains(t, files, ".env.example")
	assert.Contains(t, out.String(), "uvicorn app.main:app --reload")

	ctx, err := project.InferContext(filepath.Join(workDir, "api"))
	require.NoError(t, err)
	assert.Equal(t, project.TypeFastapi, ctx["project_type"])
}

func TestCreateFastapiWithoutDatabase(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName: "api",
		ProjectType: project.TypeFastapi,
		WorkDir:     workDir,
	}
	require.NoError(t, Run(&createCtx))
	assert.NotContains(t, listFiles(t, filepath.Join(workDir, "api")), "app/db.py")
}

func TestCreateInvalidName(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{ProjectName: "my-app", WorkDir: workDir}

	err := Run(&createCtx)
	require.Error(t, err)
	var validationError *util.ValidationError
	assert.ErrorAs(t, err, &validationError)
	assert.NoDirExists(t, filepath.Join(workDir, "my-app"))
}

func TestCreateDryRun(t *testing.T) {
	color.NoColor = true
	workDir := t.TempDir()
	var out bytes.Buffer
	createCtx := create_ctx.CreateCtx{
		ProjectName: "my_app",
		WorkDir:     workDir,
		DryRun:      true,
		Writer:      &out,
	}
	require.NoError(t, Run(&createCtx))

	assert.NoDirExists(t, filepath.Join(workDir, "my_app"))
	assert.Contains(t, out.String(), "DRY RUN")
	assert.Contains(t, out.String(), "src/my_app/core.py")
	assert.NotContains(t, out.String(), "Next steps:")
}

func TestCreateRollbackOnRenderError(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName: "my_app",
		WorkDir:     workDir,
		Engine:      templates.NewEngine(fstest.MapFS{}),
	}

	err := Run(&createCtx)
	require.Error(t, err)
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.NoDirExists(t, filepath.Join(workDir, "my_app"))
}

func TestCreateVarsOverrideDefaults(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName: "my_app",
		WorkDir:     workDir,
		VarsFromCli: []string{"description=Overridden"},
	}
	require.NoError(t, Run(&createCtx))

	readme, err := os.ReadFile(filepath.Join(workDir, "my_app", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "Overridden")
}
