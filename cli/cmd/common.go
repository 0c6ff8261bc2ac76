package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/templates/builtin_templates"
	"github.com/gentem/gentem/cli/util"
	"github.com/spf13/cobra"
)

// internalModule is a command implementation.
type internalModule func(cmd *cobra.Command, args []string) error

// RunModuleFunc returns a cobra Run function calling the module implementation and
// handling its error.
func RunModuleFunc(module internalModule) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		util.HandleCmdErr(cmd, module(cmd, args))
	}
}

// getEngine returns a template engine configured by gentem.yaml. Nil is returned if
// the default engine should be used.
func getEngine() templates.TemplateEngine {
	opts := cmdCtx.Cli.Opts
	if opts == nil || (opts.TemplatesDir == "" && !opts.Autoescape) {
		return nil
	}

	mode := templates.AutoescapeNone
	if opts.Autoescape {
		mode = templates.AutoescapeHTML
	}
	if opts.TemplatesDir != "" {
		log.Debugf("Using templates from %s", opts.TemplatesDir)
		return templates.NewEngine(os.DirFS(opts.TemplatesDir), templates.WithAutoescape(mode))
	}
	return templates.NewEngine(builtin_templates.FS(), templates.WithAutoescape(mode))
}

// workDir returns gentem launch directory.
func workDir() string {
	if cmdCtx.Cli.WorkDir != "" {
		return cmdCtx.Cli.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
