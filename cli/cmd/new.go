package cmd

import (
	"github.com/gentem/gentem/cli/config"
	"github.com/gentem/gentem/cli/create"
	create_ctx "github.com/gentem/gentem/cli/create/context"
	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/version"
	"github.com/spf13/cobra"
)

// projectOpts are options shared by project creation commands.
type projectOpts struct {
	author        string
	email         string
	description   string
	license       string
	pythonVersion string
	dstPath       string
	dryRun        bool
}

var (
	newOpts     projectOpts
	projectType string
	varsFromCli *[]string
	varsFile    string
)

// NewNewCmd creates a new project command.
func NewNewCmd() *cobra.Command {
	var newCmd = &cobra.Command{
		Use:   "new <PROJECT_NAME> [flags]",
		Short: "Create a new Python project",
		Long: `Create a new Python project.

Project types:
	library: an installable package with src layout (default).
	cli: a command line tool with a console script entry point.
	script: a single module script.`,
		Example: `
# Create a library project with MIT license.

    $ gentem new my_lib -l mit

# Preview files of a command line tool project.

    $ gentem new my_tool -t cli --dry-run`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               RunModuleFunc(internalNewModule),
	}

	newCmd.Flags().StringVarP(&projectType, "type", "t", project.DefaultType,
		"Project type: library, cli or script")
	addProjectFlags(newCmd, &newOpts)
	newCmd.Flags().StringVarP(&newOpts.license, "license", "l", "",
		"License: mit, apache, gpl, bsd or none (default: config or mit)")
	newCmd.Flags().StringVar(&newOpts.pythonVersion, "python-version", "",
		"Minimal supported Python version")
	varsFromCli = newCmd.Flags().StringArray("var", []string{},
		"Variable definition. Usage: --var var_name=value")
	newCmd.Flags().StringVar(&varsFile, "vars-file", "", "Variables definition file path")

	newCmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(
		[]string{project.TypeLibrary, project.TypeCli, project.TypeScript},
		cobra.ShellCompDirectiveNoFileComp))
	newCmd.RegisterFlagCompletionFunc("license", cobra.FixedCompletions(
		project.LicenseKeys(), cobra.ShellCompDirectiveNoFileComp))

	return newCmd
}

// addProjectFlags adds flags shared by project creation commands.
func addProjectFlags(cmd *cobra.Command, opts *projectOpts) {
	cmd.Flags().StringVarP(&opts.author, "author", "a", "", "Author name")
	cmd.Flags().StringVarP(&opts.email, "email", "e", "", "Author e-mail")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "",
		"Project description")
	cmd.Flags().StringVar(&opts.dstPath, "dst", "",
		"Path to the directory where a project will be created")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"Preview the project structure without creating files")
}

// configDefaults returns defaults of gentem.yaml.
func configDefaults() config.DefaultsOpts {
	if cmdCtx.Cli.Opts == nil || cmdCtx.Cli.Opts.Defaults == nil {
		return config.DefaultsOpts{}
	}
	return *cmdCtx.Cli.Opts.Defaults
}

// newCreateCtx fills a create context from flags. Config defaults are used for
// options not set in command line.
func newCreateCtx(cmd *cobra.Command, name string, opts projectOpts) create_ctx.CreateCtx {
	defaults := configDefaults()
	createCtx := create_ctx.CreateCtx{
		ProjectName:      name,
		Author:           opts.author,
		Email:            opts.email,
		Description:      opts.description,
		License:          opts.license,
		PythonVersion:    opts.pythonVersion,
		WorkDir:          workDir(),
		DestinationDir:   opts.dstPath,
		DryRun:           opts.dryRun,
		GeneratorVersion: version.GeneratorVersion(),
		Engine:           getEngine(),
		Writer:           cmd.OutOrStdout(),
	}
	if createCtx.Author == "" {
		createCtx.Author = defaults.Author
	}
	if createCtx.Email == "" {
		createCtx.Email = defaults.Email
	}
	if createCtx.License == "" {
		createCtx.License = defaults.License
	}
	if createCtx.PythonVersion == "" {
		createCtx.PythonVersion = defaults.PythonVersion
	}
	return createCtx
}

// internalNewModule is a default new module.
func internalNewModule(cmd *cobra.Command, args []string) error {
	// fastapi projects are created by the fastapi command.
	normalizedType, err := project.NormalizeType(projectType)
	if err != nil {
		return err
	}
	createCtx := newCreateCtx(cmd, args[0], newOpts)
	if createCtx.License == "" {
		createCtx.License = project.DefaultLicense
	}
	createCtx.ProjectType = normalizedType
	createCtx.VarsFromCli = *varsFromCli
	createCtx.VarsFile = varsFile
	return create.Run(&createCtx)
}
