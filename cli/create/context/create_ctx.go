package create_ctx

import (
	"io"

	"github.com/gentem/gentem/cli/templates"
)

// CreateCtx contains information for creating projects from templates.
type CreateCtx struct {
	// ProjectName is a name of the project to create.
	ProjectName string
	// ProjectType is a type of the project: library, cli, script or fastapi.
	ProjectType string
	// Author is a project author name.
	Author string
	// Email is a project author e-mail.
	Email string
	// Description is a short project description.
	Description string
	// License is a license key. Empty or "none" disables license file.
	License string
	// PythonVersion is the minimal supported Python version.
	PythonVersion string
	// AsyncMode enables async handlers in fastapi projects.
	AsyncMode bool
	// DbType is a database backend of fastapi projects.
	DbType string
	// WorkDir is gentem launch working directory.
	WorkDir string
	// DestinationDir is the path where a project will be created. WorkDir is used
	// if not set.
	DestinationDir string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// VarsFile is a file with variables definitions.
	VarsFile string
	// DryRun disables file system modifications.
	DryRun bool
	// GeneratorVersion is a version of gentem stored into the project marker.
	GeneratorVersion string
	// Engine renders templates. The default engine is used if not set.
	Engine templates.TemplateEngine
	// Writer receives the report and follow-up message.
	Writer io.Writer
}
