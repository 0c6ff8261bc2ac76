package steps

import (
	"fmt"
	"io"

	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/scaffold"
)

// RenderTemplate represents project files render step.
type RenderTemplate struct {
	// Writer receives per-file statuses.
	Writer io.Writer
}

// Run renders selected files into the project directory.
func (renderTemplate RenderTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	writer := scaffold.Writer{
		Engine: templateCtx.Engine,
		DryRun: createCtx.DryRun,
	}
	var err error
	templateCtx.Results, err = writer.Write(templateCtx.ProjectPath, templateCtx.Files,
		templateCtx.Vars)
	if renderTemplate.Writer != nil {
		if createCtx.DryRun {
			fmt.Fprintln(renderTemplate.Writer, "DRY RUN - no files will be created")
			scaffold.PrintPlan(renderTemplate.Writer, templateCtx.Results)
		} else {
			scaffold.PrintResults(renderTemplate.Writer, templateCtx.Results)
		}
	}
	if err != nil {
		return fmt.Errorf("project instantiation error: %w", err)
	}
	return nil
}
