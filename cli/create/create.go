// Package create creates new projects from built-in layouts.
package create

import (
	"io"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/create/internal/layout"
	"github.com/gentem/gentem/cli/create/internal/steps"
)

// rollbackOnErr removes the project directory created by the failed run.
func rollbackOnErr(templateCtx *steps.TemplateCtx) {
	if templateCtx.IsDirCreated && templateCtx.ProjectPath != "" {
		log.Debugf("Removing %s", templateCtx.ProjectPath)
		os.RemoveAll(templateCtx.ProjectPath)
	}
	templateCtx.IsDirCreated = false
}

// Run creates a project. Options are validated before anything is written. If
// rendering fails, the created project directory is removed.
func Run(createCtx *create_ctx.CreateCtx) error {
	writer := createCtx.Writer
	if writer == nil {
		writer = io.Discard
	}

	stepsChain := []steps.Step{
		steps.ValidateOptions{},
		steps.SetPredefinedVariables{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.SelectLayout{},
		steps.CreateProjectDirectory{},
		steps.RenderTemplate{Writer: writer},
		steps.PrintFollowUpMessage{Message: layout.FollowUpMessage, Writer: writer},
	}

	templateCtx := steps.NewTemplateContext()
	if createCtx.Engine != nil {
		templateCtx.Engine = createCtx.Engine
	}
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			rollbackOnErr(&templateCtx)
			return err
		}
	}

	return nil
}
