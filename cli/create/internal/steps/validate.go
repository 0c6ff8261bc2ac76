package steps

import (
	"path/filepath"

	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
)

// ValidateOptions represents user input validation step.
type ValidateOptions struct{}

// Run validates and normalizes project options. Nothing is written to disk.
func (ValidateOptions) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if err := project.ValidateProjectName(createCtx.ProjectName); err != nil {
		return err
	}

	var err error
	if createCtx.ProjectType == "" {
		createCtx.ProjectType = project.DefaultType
	}
	if createCtx.ProjectType != project.TypeFastapi {
		if createCtx.ProjectType, err = project.NormalizeType(createCtx.ProjectType); err != nil {
			return err
		}
	}
	if createCtx.License, err = project.NormalizeLicense(createCtx.License); err != nil {
		return err
	}
	if createCtx.DbType, err = project.NormalizeDbType(createCtx.DbType); err != nil {
		return err
	}

	templateCtx.ProjectPath = projectPath(createCtx)
	return project.ValidateOutputPath(templateCtx.ProjectPath, createCtx.DryRun)
}

// projectPath returns a path of the project directory.
func projectPath(createCtx *create_ctx.CreateCtx) string {
	baseDir := createCtx.DestinationDir
	if baseDir == "" {
		baseDir = createCtx.WorkDir
	}
	return filepath.Join(baseDir, createCtx.ProjectName)
}
