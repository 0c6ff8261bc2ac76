// Package scaffold writes rendered templates into a project directory.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/util"
)

// FileSpec binds a template to the file it is rendered into.
type FileSpec struct {
	// Template is a template name in the template store.
	Template string
	// Destination is a path relative to the target directory. It may contain template
	// actions, e.g. "src/{{ .package_name }}/__init__.py".
	Destination string
}

// Status is an outcome of a single file processing.
type Status int

const (
	// StatusCreated is reported for a newly written file.
	StatusCreated Status = iota
	// StatusUpdated is reported for an overwritten file.
	StatusUpdated
	// StatusExists is reported for an existing file that is skipped.
	StatusExists
	// StatusWouldCreate is reported by dry run for a file to be created.
	StatusWouldCreate
	// StatusWouldUpdate is reported by dry run for a file to be overwritten.
	StatusWouldUpdate
)

// String returns a status name.
func (status Status) String() string {
	switch status {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusExists:
		return "exists"
	case StatusWouldCreate:
		return "would create"
	case StatusWouldUpdate:
		return "would update"
	}
	return fmt.Sprintf("Status(%d)", int(status))
}

// Result is a processed file.
type Result struct {
	// Path is the rendered destination relative to the target directory.
	Path   string
	Status Status
}

// Writer renders file specs into a target directory.
type Writer struct {
	// Engine is used to render templates and destination paths.
	Engine templates.TemplateEngine
	// Force enables overwriting of existing files.
	Force bool
	// DryRun disables any file system modifications.
	DryRun bool
	// DiffWriter receives unified diffs of files a dry run would overwrite. Optional.
	DiffWriter io.Writer
}

// destination renders the destination path of spec and checks it stays inside dir.
func (writer Writer) destination(spec FileSpec, ctx templates.Context) (string, error) {
	relPath, err := writer.Engine.RenderText(spec.Destination, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render destination %q: %w", spec.Destination, err)
	}
	relPath = filepath.Clean(filepath.FromSlash(relPath))
	if !filepath.IsLocal(relPath) {
		return "", fmt.Errorf("destination %q is outside of the project directory", relPath)
	}
	return relPath, nil
}

// Write processes specs in order. An existing destination is skipped unless Force is
// set. A dry run fails on a missing template the same way a real run does. The first failure stops processing: files written before it are kept and
// returned together with the error.
func (writer Writer) Write(dir string, specs []FileSpec,
	ctx templates.Context,
) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		relPath, err := writer.destination(spec, ctx)
		if err != nil {
			return results, err
		}
		dstPath := filepath.Join(dir, relPath)

		exists, err := util.FileExists(dstPath)
		if err != nil {
			return results, fmt.Errorf("failed to check %s: %w", dstPath, err)
		}

		var status Status
		switch {
		case exists && !writer.Force:
			status = StatusExists
			log.Debugf("Skipping existing %s", dstPath)
		case writer.DryRun && !writer.Engine.HasTemplate(spec.Template):
			return results, fmt.Errorf("%w: %s", templates.ErrTemplateNotFound, spec.Template)
		case writer.DryRun && exists:
			status = StatusWouldUpdate
			if writer.DiffWriter != nil {
				if err = writer.writeDiff(spec.Template, ctx, dstPath, relPath); err != nil {
					return results, err
				}
			}
		case writer.DryRun:
			status = StatusWouldCreate
		default:
			log.Debugf("Rendering %s into %s", spec.Template, dstPath)
			if err = writer.Engine.RenderToFile(spec.Template, ctx, dstPath); err != nil {
				return results, err
			}
			status = StatusCreated
			if exists {
				status = StatusUpdated
			}
		}
		results = append(results, Result{Path: filepath.ToSlash(relPath), Status: status})
	}
	return results, nil
}

// writeDiff prints a unified diff between the existing file and the rendered template.
func (writer Writer) writeDiff(templateName string, ctx templates.Context,
	dstPath, relPath string,
) error {
	rendered, err := writer.Engine.Render(templateName, ctx)
	if err != nil {
		return err
	}
	current, err := os.ReadFile(dstPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dstPath, err)
	}
	diff, err := UnifiedDiff(string(current), rendered, filepath.ToSlash(relPath))
	if err != nil {
		return err
	}
	_, err = io.WriteString(writer.DiffWriter, diff)
	return err
}
