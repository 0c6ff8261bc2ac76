package cmd

import (
	"github.com/gentem/gentem/cli/create"
	"github.com/gentem/gentem/cli/project"
	"github.com/spf13/cobra"
)

var (
	fastapiOpts projectOpts
	asyncMode   bool
	dbType      string
)

// NewFastapiCmd creates a new FastAPI project command.
func NewFastapiCmd() *cobra.Command {
	var fastapiCmd = &cobra.Command{
		Use:   "fastapi <PROJECT_NAME> [flags]",
		Short: "Create a new FastAPI project",
		Example: `
# Create an async FastAPI service with a PostgreSQL database.

    $ gentem fastapi my_api --async --db postgres`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               RunModuleFunc(internalFastapiModule),
	}

	fastapiCmd.Flags().BoolVar(&asyncMode, "async", false, "Use async handlers")
	fastapiCmd.Flags().StringVar(&dbType, "db", "",
		"Database backend: asyncpg, sqlite, postgres or postgresql")
	addProjectFlags(fastapiCmd, &fastapiOpts)

	fastapiCmd.RegisterFlagCompletionFunc("db", cobra.FixedCompletions(
		[]string{project.DbAsyncpg, project.DbSqlite, "postgres", "postgresql"},
		cobra.ShellCompDirectiveNoFileComp))

	return fastapiCmd
}

// internalFastapiModule is a default fastapi module.
func internalFastapiModule(cmd *cobra.Command, args []string) error {
	createCtx := newCreateCtx(cmd, args[0], fastapiOpts)
	createCtx.ProjectType = project.TypeFastapi
	createCtx.AsyncMode = asyncMode
	createCtx.DbType = dbType
	return create.Run(&createCtx)
}
