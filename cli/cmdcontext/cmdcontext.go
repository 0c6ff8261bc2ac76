package cmdcontext

import "github.com/gentem/gentem/cli/config"

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting gentem and some other
	// parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting gentem and some other
// parameters.
type CliCtx struct {
	// Path to gentem config (gentem.yaml). Empty if there is no config.
	ConfigPath string
	// ConfigDir is gentem configuration file directory.
	// And current working directory, if there is no config.
	ConfigDir string
	// WorkDir is gentem launch working directory.
	WorkDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
	// Opts are options loaded from the config.
	Opts *config.CliOpts
}
