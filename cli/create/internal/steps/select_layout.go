package steps

import (
	"fmt"

	"github.com/apex/log"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/create/internal/layout"
)

// SelectLayout represents a step choosing project files.
type SelectLayout struct{}

// Run selects files to render for the project type.
func (SelectLayout) Run(createCtx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !layout.HasLayout(createCtx.ProjectType) {
		return fmt.Errorf("no layout for %s projects", createCtx.ProjectType)
	}
	templateCtx.Files = layout.Files(createCtx.ProjectType, templateCtx.Vars)
	log.Debugf("Selected %d files for %s project", len(templateCtx.Files),
		createCtx.ProjectType)
	return nil
}
