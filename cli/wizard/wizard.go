// Package wizard implements interactive project creation.
package wizard

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/config"
	"github.com/gentem/gentem/cli/create"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/util"
)

// DefaultProjectName is used when prompts are skipped.
const DefaultProjectName = "my_project"

const (
	defaultDescription = "A new Python project"
	noDatabase         = "none"
)

// UserPrompt describes a single value requested from the user.
type UserPrompt struct {
	// Prompt is a label shown to the user.
	Prompt string
	// Var is a name of the collected variable.
	Var string
	// Default is used if the user input is empty. Empty default makes the value
	// required.
	Default string
	// Re is a regular expression the value must match. Optional.
	Re string
}

// Preset is a named project type shortcut.
type Preset struct {
	Name        string
	ProjectType string
}

// Presets lists known presets.
var Presets = []Preset{
	{Name: "minimal", ProjectType: project.TypeLibrary},
	{Name: "cli-tool", ProjectType: project.TypeCli},
	{Name: "fastapi", ProjectType: project.TypeFastapi},
}

var projectTypes = []string{
	project.TypeLibrary, project.TypeCli, project.TypeScript, project.TypeFastapi,
}

// PresetNames returns names of known presets.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for _, preset := range Presets {
		names = append(names, preset.Name)
	}
	return names
}

// presetType returns a project type of the preset. Empty name means no preset.
func presetType(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	for _, preset := range Presets {
		if strings.EqualFold(preset.Name, name) {
			return preset.ProjectType, nil
		}
	}
	return "", util.NewValidationError("invalid preset: %q. Valid options are: %s",
		name, strings.Join(PresetNames(), ", "))
}

// WizardCtx contains information for the interactive project creation.
type WizardCtx struct {
	// SkipPrompts disables prompts, defaults are used for all values.
	SkipPrompts bool
	// Preset is a preset name. The project type is asked if not set.
	Preset string
	// DryRun disables file system modifications.
	DryRun bool
	// WorkDir is a directory the project is created in.
	WorkDir string
	// Defaults are values proposed to the user.
	Defaults config.DefaultsOpts
	// GeneratorVersion is a version of gentem stored into the project marker.
	GeneratorVersion string
	// Reader is used to get user input. Prompts are skipped if not set.
	Reader Reader
	// Writer receives hints and the creation report.
	Writer io.Writer
	// Engine renders templates. The default engine is used if not set.
	Engine templates.TemplateEngine
}

// collector asks the user for values.
type collector struct {
	reader Reader
	silent bool
	out    io.Writer
}

// collectVar asks for the prompt value until it matches the expression. In silent
// mode the default value is used.
func (c collector) collectVar(prompt UserPrompt, vars map[string]string) error {
	for {
		var input string
		if c.silent {
			if prompt.Default == "" {
				return util.NewValidationError("%s variable value is not set", prompt.Var)
			}
			input = prompt.Default
		} else {
			line, err := c.reader.readLine(prompt.Prompt, prompt.Default)
			if err != nil {
				return err
			}
			input = line
			if input == "" {
				input = prompt.Default
			}
			if input == "" {
				fmt.Fprintln(c.out, "Please enter a value.")
				continue
			}
		}

		if prompt.Re != "" {
			matched, err := regexp.MatchString(prompt.Re, input)
			if err != nil {
				return fmt.Errorf("failed to validate user input: %s", err)
			}
			if !matched {
				if c.silent {
					return util.NewValidationError("invalid format of %s variable", prompt.Var)
				}
				fmt.Fprintln(c.out, "Invalid format. Try again.")
				continue
			}
		}
		vars[prompt.Var] = input
		return nil
	}
}

// chooseItem asks to select one of items. In silent mode the default item is used.
func (c collector) chooseItem(label string, items []string, defaultItem string) (string,
	error,
) {
	defaultIndex := max(slices.Index(items, defaultItem), 0)
	if c.silent {
		return items[defaultIndex], nil
	}
	index, err := c.reader.selectItem(label, items, defaultIndex)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("invalid selection %d for %s", index, label)
	}
	return items[index], nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// Run collects project options and creates the project.
func Run(wizardCtx WizardCtx) error {
	projectType, err := presetType(wizardCtx.Preset)
	if err != nil {
		return err
	}

	out := wizardCtx.Writer
	if out == nil {
		out = io.Discard
	}
	c := collector{
		reader: wizardCtx.Reader,
		silent: wizardCtx.SkipPrompts || wizardCtx.Reader == nil,
		out:    out,
	}
	if !c.silent {
		fmt.Fprintln(out, "Creating a new Python project. Press Enter to accept defaults.")
	}

	vars := map[string]string{}
	if err = c.collectVar(UserPrompt{
		Prompt:  "Project name",
		Var:     "project_name",
		Default: DefaultProjectName,
		Re:      `^[a-zA-Z_][a-zA-Z0-9_]*$`,
	}, vars); err != nil {
		return err
	}
	if projectType == "" {
		if projectType, err = c.chooseItem("Project type", projectTypes,
			project.DefaultType); err != nil {
			return err
		}
	}

	prompts := []UserPrompt{
		{
			Prompt:  "Author",
			Var:     "author",
			Default: firstNonEmpty(wizardCtx.Defaults.Author, project.DefaultAuthor),
		},
		{
			Prompt: "Email",
			Var:    "email",
			Default: firstNonEmpty(wizardCtx.Defaults.Email,
				project.DefaultEmail(vars["project_name"])),
			Re: `^[^@\s]+@[^@\s]+$`,
		},
		{
			Prompt:  "Description",
			Var:     "description",
			Default: defaultDescription,
		},
	}
	for _, prompt := range prompts {
		if err = c.collectVar(prompt, vars); err != nil {
			return err
		}
	}

	defaultLicense, err := project.NormalizeLicense(wizardCtx.Defaults.License)
	if err != nil || wizardCtx.Defaults.License == "" {
		defaultLicense = project.DefaultLicense
	}
	license, err := c.chooseItem("License", project.LicenseKeys(), defaultLicense)
	if err != nil {
		return err
	}

	createCtx := create_ctx.CreateCtx{
		ProjectName:      vars["project_name"],
		ProjectType:      projectType,
		Author:           vars["author"],
		Email:            vars["email"],
		Description:      vars["description"],
		License:          license,
		PythonVersion:    wizardCtx.Defaults.PythonVersion,
		WorkDir:          wizardCtx.WorkDir,
		DryRun:           wizardCtx.DryRun,
		GeneratorVersion: wizardCtx.GeneratorVersion,
		Engine:           wizardCtx.Engine,
		Writer:           out,
	}

	if projectType == project.TypeFastapi {
		if err = c.collectVar(UserPrompt{
			Prompt:  "Use async handlers (yes/no)",
			Var:     "async_mode",
			Default: "no",
			Re:      `^(?i:y|yes|n|no)$`,
		}, vars); err != nil {
			return err
		}
		createCtx.AsyncMode = strings.HasPrefix(strings.ToLower(vars["async_mode"]), "y")

		dbType, err := c.chooseItem("Database",
			[]string{noDatabase, project.DbAsyncpg, project.DbSqlite}, noDatabase)
		if err != nil {
			return err
		}
		if dbType != noDatabase {
			createCtx.DbType = dbType
		}
	}

	log.Debugf("Wizard options: name=%s type=%s license=%s", createCtx.ProjectName,
		createCtx.ProjectType, createCtx.License)
	return create.Run(&createCtx)
}
