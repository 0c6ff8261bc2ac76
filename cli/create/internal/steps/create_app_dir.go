package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/gentem/gentem/cli/create/context"
)

// CreateProjectDirectory represents project directory creation step.
type CreateProjectDirectory struct{}

// Run creates target project directory. Dry run only reports the directory.
func (CreateProjectDirectory) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if templateCtx.ProjectPath == "" {
		return fmt.Errorf("project directory is not set")
	}
	if createCtx.DryRun {
		log.Infof("Project would be created in %s", templateCtx.ProjectPath)
		return nil
	}

	if err := os.Mkdir(templateCtx.ProjectPath, 0o755); err != nil {
		return fmt.Errorf("error creating project directory %s: %w",
			templateCtx.ProjectPath, err)
	}
	templateCtx.IsDirCreated = true
	log.Infof("Creating %s project in %s", createCtx.ProjectType, templateCtx.ProjectPath)
	return nil
}
