package steps

import (
	"github.com/gentem/gentem/cli/scaffold"
	"github.com/gentem/gentem/cli/templates"
)

// TemplateCtx contains an information required for project rendering.
type TemplateCtx struct {
	// ProjectPath is a path to project directory. Project files are instantiated in
	// this directory.
	ProjectPath string
	// IsDirCreated is true if the project directory is created by the create chain.
	IsDirCreated bool
	// Vars is a set of variables to be used for template rendering.
	Vars templates.Context
	// Files is the list of files to render.
	Files []scaffold.FileSpec
	// Results are statuses of rendered files.
	Results []scaffold.Result
	// Engine is a template engine to use for template rendering.
	Engine templates.TemplateEngine
}

// NewTemplateContext creates new project template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(templates.Context)
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
