package steps

import (
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
)

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct{}

// Run sets predefined variables values.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	vars := project.NewContext(project.Options{
		Name:             createCtx.ProjectName,
		Type:             createCtx.ProjectType,
		Author:           createCtx.Author,
		Email:            createCtx.Email,
		Description:      createCtx.Description,
		PythonVersion:    createCtx.PythonVersion,
		License:          createCtx.License,
		AsyncMode:        createCtx.AsyncMode,
		DbType:           createCtx.DbType,
		GeneratorVersion: createCtx.GeneratorVersion,
	})
	for name, value := range vars {
		templateCtx.Vars[name] = value
	}
	return nil
}
