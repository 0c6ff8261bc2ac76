package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/gentem/gentem/cli/cmdcontext"
	"github.com/gentem/gentem/cli/configure"
	"github.com/gentem/gentem/cli/util"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command
)

// configureCli applies global flags and loads gentem configuration.
func configureCli(cmd *cobra.Command, args []string) {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	util.HandleCmdErr(cmd, configure.Cli(&cmdCtx))
}

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	cmdCtx = cmdcontext.CmdCtx{}
	rootCmd := &cobra.Command{
		Use:   "gentem",
		Short: "Python project generator",
		Long:  "Utility for generating Python projects and adding modules to existing ones",
		Example: `$ gentem new my_lib -l mit
  $ gentem fastapi my_api --async --db sqlite
  $ gentem add docker ci -p ./my_lib`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRun: configureCli,
		SilenceErrors:    true,
		SilenceUsage:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "v",
		false, "Show verbose output")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewNewCmd(),
		NewFastapiCmd(),
		NewInitCmd(),
		NewAddCmd(),
		NewTemplatesCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command. Command line parsing errors are reported as invalid input.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		util.HandleCmdErr(rootCmd, util.WrapValidationError(err, "%s", err))
	}
}

// InitRoot initializes the root command.
func InitRoot() {
	rootCmd = NewCmdRoot()
}
