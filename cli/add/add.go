// Package add augments an existing project with optional modules.
package add

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/scaffold"
	"github.com/gentem/gentem/cli/templates"
)

// AddCtx contains information for adding modules to a project.
type AddCtx struct {
	// Modules are module types to add, in order.
	Modules []string
	// ProjectPath is a path to the existing project.
	ProjectPath string
	// DryRun disables file system modifications. Intended actions are reported.
	DryRun bool
	// Force enables overwriting of existing files.
	Force bool
	// Verbose enables diffs of files a dry run would overwrite.
	Verbose bool
	// Engine renders templates. The default engine is used if not set.
	Engine templates.TemplateEngine
	// Writer receives the report. Required.
	Writer io.Writer
}

// ModuleReport is an outcome of a single module processing.
type ModuleReport struct {
	Module  string
	Results []scaffold.Result
	// NextSteps are rendered follow-up commands. Empty for dry run and failed modules.
	NextSteps []string
	Err       error
}

// Run adds modules to the project. All module names and the project path are
// validated before any file is touched. A failed module does not prevent processing
// of the following ones, errors are joined into the returned error.
func Run(addCtx AddCtx) ([]ModuleReport, error) {
	modules := make([]string, 0, len(addCtx.Modules))
	for _, module := range addCtx.Modules {
		normalized, err := ValidateModuleType(module)
		if err != nil {
			return nil, err
		}
		modules = append(modules, normalized)
	}

	ctx, err := project.InferContext(addCtx.ProjectPath)
	if err != nil {
		return nil, err
	}
	projectType := ctx["project_type"].(string)
	log.Debugf("Project path: %s", addCtx.ProjectPath)
	log.Debugf("Project type: %s", projectType)
	log.Debugf("Project name: %s", ctx["project_name"])

	engine := addCtx.Engine
	if engine == nil {
		engine = templates.NewDefaultEngine()
	}
	writer := scaffold.Writer{
		Engine: engine,
		Force:  addCtx.Force,
		DryRun: addCtx.DryRun,
	}
	if addCtx.DryRun && addCtx.Verbose {
		writer.DiffWriter = addCtx.Writer
	}

	reports := make([]ModuleReport, 0, len(modules))
	var errs []error
	for i, module := range modules {
		if i > 0 {
			fmt.Fprintln(addCtx.Writer)
		}
		report := addModule(addCtx, writer, module, ctx)
		if report.Err != nil {
			errs = append(errs, fmt.Errorf("failed to add %s module: %w", module, report.Err))
		}
		reports = append(reports, report)
	}
	return reports, errors.Join(errs...)
}

func addModule(addCtx AddCtx, writer scaffold.Writer, module string,
	ctx templates.Context,
) ModuleReport {
	report := ModuleReport{Module: module}
	projectType := ctx["project_type"].(string)
	specs := SelectTemplates(module, projectType)
	if len(specs) == 0 {
		report.Err = fmt.Errorf("no templates found for module type: %s", module)
		return report
	}
	log.Debugf("Module %s templates: %v", module, specs)

	absPath, err := filepath.Abs(addCtx.ProjectPath)
	if err != nil {
		absPath = addCtx.ProjectPath
	}
	log.Infof("Adding %s module to %s (type: %s, version: %s)", module,
		filepath.Base(absPath), projectType, ctx["version"])

	report.Results, report.Err = writer.Write(addCtx.ProjectPath, specs, ctx)
	summary := scaffold.Summary(report.Results)
	log.Debugf("Module %s: %d created, %d updated, %d skipped", module,
		summary[scaffold.StatusCreated], summary[scaffold.StatusUpdated],
		summary[scaffold.StatusExists])
	if addCtx.DryRun {
		fmt.Fprintln(addCtx.Writer, "DRY RUN - no files will be created")
		scaffold.PrintPlan(addCtx.Writer, report.Results)
	} else {
		scaffold.PrintResults(addCtx.Writer, report.Results)
	}
	if report.Err != nil || addCtx.DryRun {
		return report
	}

	fmt.Fprintf(addCtx.Writer, "\n%s module added successfully!\n", module)
	for _, step := range NextSteps(module) {
		rendered, err := writer.Engine.RenderText(step, ctx)
		if err != nil {
			log.Debugf("Failed to render next step %q: %s", step, err)
			rendered = step
		}
		report.NextSteps = append(report.NextSteps, rendered)
	}
	if len(report.NextSteps) > 0 {
		fmt.Fprintln(addCtx.Writer, "\nNext steps:")
		for _, step := range report.NextSteps {
			fmt.Fprintf(addCtx.Writer, "  %s\n", step)
		}
	}
	return report
}
