package cmd

import (
	"github.com/gentem/gentem/cli/version"
	"github.com/gentem/gentem/cli/wizard"
	"github.com/spf13/cobra"
)

var (
	skipPrompts bool
	preset      string
	initDryRun  bool

	// newReader is replaced in tests.
	newReader = wizard.NewReader
)

// NewInitCmd creates a new interactive project wizard command.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create a new project interactively",
		Long: `Create a new project interactively.

Presets:
	minimal: a library project.
	cli-tool: a command line tool project.
	fastapi: a FastAPI service project.`,
		Example: `
# Create a FastAPI project using default values.

    $ gentem init --preset fastapi --skip-prompts`,
		Args: cobra.NoArgs,
		Run:  RunModuleFunc(internalInitModule),
	}

	initCmd.Flags().BoolVarP(&skipPrompts, "skip-prompts", "s", false,
		"Skip prompts and use default values")
	initCmd.Flags().StringVarP(&preset, "preset", "p", "",
		"Preset to use: minimal, cli-tool or fastapi")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false,
		"Preview the project structure without creating files")

	initCmd.RegisterFlagCompletionFunc("preset", cobra.FixedCompletions(
		wizard.PresetNames(), cobra.ShellCompDirectiveNoFileComp))

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmd *cobra.Command, args []string) error {
	wizardCtx := wizard.WizardCtx{
		SkipPrompts:      skipPrompts,
		Preset:           preset,
		DryRun:           initDryRun,
		WorkDir:          workDir(),
		Defaults:         configDefaults(),
		GeneratorVersion: version.GeneratorVersion(),
		Writer:           cmd.OutOrStdout(),
		Engine:           getEngine(),
	}
	if !skipPrompts {
		wizardCtx.Reader = newReader()
	}
	return wizard.Run(wizardCtx)
}
