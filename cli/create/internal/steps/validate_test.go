package steps

import (
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptionsNormalizes(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName: "my_app",
		ProjectType: "CLI",
		License:     "MIT",
		WorkDir:     workDir,
	}
	templateCtx := NewTemplateContext()

	require.NoError(t, ValidateOptions{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, project.TypeCli, createCtx.ProjectType)
	assert.Equal(t, "mit", createCtx.License)
	assert.Equal(t, filepath.Join(workDir, "my_app"), templateCtx.ProjectPath)
}

func TestValidateOptionsDefaults(t *testing.T) {
	destination := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		ProjectName:    "svc",
		WorkDir:        "/unused",
		DestinationDir: destination,
	}
	templateCtx := NewTemplateContext()

	require.NoError(t, ValidateOptions{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, project.DefaultType, createCtx.ProjectType)
	assert.Equal(t, project.NoLicense, createCtx.License)
	assert.Equal(t, filepath.Join(destination, "svc"), templateCtx.ProjectPath)
}

func TestValidateOptionsFastapi(t *testing.T) {
	createCtx := create_ctx.CreateCtx{
		ProjectName: "api",
		ProjectType: project.TypeFastapi,
		DbType:      "postgresql",
		WorkDir:     t.TempDir(),
	}
	templateCtx := NewTemplateContext()

	require.NoError(t, ValidateOptions{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, project.TypeFastapi, createCtx.ProjectType)
	assert.Equal(t, project.DbAsyncpg, createCtx.DbType)
}

func TestValidateOptionsErrors(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "taken"), 0o755))

	testCases := []struct {
		name      string
		createCtx create_ctx.CreateCtx
		errText   string
	}{
		{"bad name", create_ctx.CreateCtx{ProjectName: "my-app"},
			"is not a valid Python project name"},
		{"reserved name", create_ctx.CreateCtx{ProjectName: "import"},
			"is a Python reserved word"},
		{"bad type", create_ctx.CreateCtx{ProjectName: "app", ProjectType: "web"},
			"invalid project type"},
		{"bad license", create_ctx.CreateCtx{ProjectName: "app", License: "wtfpl"},
			"invalid license type"},
		{"bad db", create_ctx.CreateCtx{ProjectName: "app", ProjectType: "fastapi",
			DbType: "mysql"}, "invalid database type"},
		{"existing dir", create_ctx.CreateCtx{ProjectName: "taken"}, "already exists"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			createCtx := tc.createCtx
			createCtx.WorkDir = workDir
			templateCtx := NewTemplateContext()
			err := ValidateOptions{}.Run(&createCtx, &templateCtx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
			var validationError *util.ValidationError
			assert.ErrorAs(t, err, &validationError)
		})
	}
}

func TestValidateOptionsExistingDirDryRun(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "taken"), 0o755))

	createCtx := create_ctx.CreateCtx{ProjectName: "taken", WorkDir: workDir, DryRun: true}
	templateCtx := NewTemplateContext()
	assert.NoError(t, ValidateOptions{}.Run(&createCtx, &templateCtx))
}
