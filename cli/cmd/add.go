package cmd

import (
	"path/filepath"
	"slices"

	"github.com/gentem/gentem/cli/add"
	"github.com/spf13/cobra"
)

var (
	addProjectPath string
	addDryRun      bool
	addForce       bool
)

// NewAddCmd creates a new add command.
func NewAddCmd() *cobra.Command {
	var addCmd = &cobra.Command{
		Use:   "add <MODULE>... [flags]",
		Short: "Add modules to an existing project",
		Long: `Add modules to an existing project.

Modules:
	docker: Dockerfile, .dockerignore and docker-compose.yml.
	docs: MkDocs documentation.
	testing: pytest configuration and sample tests.
	logging: logging configuration.
	database: Alembic migrations.
	ci: GitHub Actions workflow.
	precommit: pre-commit hooks.
	poetry: Poetry project manifest.`,
		Example: `
# Add Docker and CI support to the project in the current directory.

    $ gentem add docker ci

# Preview overwriting of existing files with diffs.

    $ gentem add docker -p ./my_lib --force --dry-run -v`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: addValidArgsFunction,
		Run:               RunModuleFunc(internalAddModule),
	}

	addCmd.Flags().StringVarP(&addProjectPath, "path", "p", ".",
		"Project directory path")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false,
		"Preview changes without creating files")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false,
		"Overwrite existing files")

	return addCmd
}

// addValidArgsFunction returns module names not given yet.
func addValidArgsFunction(_ *cobra.Command, args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	modules := make([]string, 0, len(add.ModuleNames))
	for _, module := range add.ModuleNames {
		if !slices.Contains(args, module) {
			modules = append(modules, module)
		}
	}
	return modules, cobra.ShellCompDirectiveNoFileComp
}

// internalAddModule is a default add module.
func internalAddModule(cmd *cobra.Command, args []string) error {
	projectPath := addProjectPath
	if !filepath.IsAbs(projectPath) {
		projectPath = filepath.Join(workDir(), projectPath)
	}
	_, err := add.Run(add.AddCtx{
		Modules:     args,
		ProjectPath: projectPath,
		DryRun:      addDryRun,
		Force:       addForce,
		Verbose:     cmdCtx.Cli.Verbose,
		Engine:      getEngine(),
		Writer:      cmd.OutOrStdout(),
	})
	return err
}
