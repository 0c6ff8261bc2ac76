package config

// Config used to store all information from the gentem.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"gentem" yaml:"gentem"`
}

// CliOpts stores gentem configuration.
// Filled in when parsing the gentem.yaml configuration file.
//
// gentem.yaml file format:
// gentem:
//   defaults:
//     author: string
//     email: string
//     license: mit|apache|gpl|bsd|none
//     python_version: string
//   templates_dir: path
//   autoescape: bool

// DefaultsOpts stores values used when the matching command line option is not set.
type DefaultsOpts struct {
	// Author is a project author name.
	Author string `mapstructure:"author" yaml:"author"`
	// Email is a project author e-mail.
	Email string `mapstructure:"email" yaml:"email"`
	// License is a license key of new projects.
	License string `mapstructure:"license" yaml:"license"`
	// PythonVersion is the minimal supported Python version of new projects.
	PythonVersion string `mapstructure:"python_version" yaml:"python_version"`
}

// CliOpts is used to store gentem options.
type CliOpts struct {
	// Defaults are project defaults.
	Defaults *DefaultsOpts `mapstructure:"defaults" yaml:"defaults"`
	// TemplatesDir is a directory with templates replacing the built-in ones.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// Autoescape enables HTML escaping of values in .html, .htm and .xml files.
	Autoescape bool `mapstructure:"autoescape" yaml:"autoescape"`
}
