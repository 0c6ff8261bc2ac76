// Package configure locates and loads gentem configuration.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/cmdcontext"
	"github.com/gentem/gentem/cli/config"
	"github.com/gentem/gentem/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigName is a name of gentem configuration file.
	ConfigName = "gentem.yaml"

	cliName           = "gentem"
	configHomeEnvName = "XDG_CONFIG_HOME"
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Defaults: &config.DefaultsOpts{},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to
// configDir. If filePath is empty, defaultDirName is appended to configDir.
func adjustPathWithConfigLocation(filePath, configDir string,
	defaultDirName string,
) (string, error) {
	if filePath == "" {
		if defaultDirName == "" {
			return "", nil
		}
		return filepath.Abs(filepath.Join(configDir, defaultDirName))
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves paths of the config relative to its directory.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error
	if cliOpts.Defaults == nil {
		cliOpts.Defaults = &config.DefaultsOpts{}
	}
	if cliOpts.TemplatesDir, err = adjustPathWithConfigLocation(cliOpts.TemplatesDir,
		configDir, ""); err != nil {
		return err
	}
	return nil
}

// decodeConfig decodes raw YAML data into the config. Unknown keys are rejected.
func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns gentem options from the config file located at configPath.
// Defaults are returned if configPath is empty.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	if configPath == "" {
		return GetDefaultCliOpts(), nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gentem configuration: %s", err)
	}
	cfg := config.Config{CliConfig: GetDefaultCliOpts()}
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gentem configuration: %s", err)
	}
	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse gentem configuration: missing %s section",
			cliName)
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, err
	}
	if err = updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return nil, err
	}
	return cfg.CliConfig, nil
}

// getConfigPath looks for the gentem configuration file. Tries to locate it in
// following order:
// 1) workDir/gentem.yaml;
// 2) $XDG_CONFIG_HOME/gentem/gentem.yaml (if $XDG_CONFIG_HOME is not set,
// uses $HOME/.config).
// Empty path is returned if there is no config.
func getConfigPath(workDir string) (string, error) {
	configPath, err := util.GetYamlFileName(filepath.Join(workDir, ConfigName), false)
	if err != nil || configPath != "" {
		return configPath, err
	}

	xdgConfigHome := os.Getenv(configHomeEnvName)
	if xdgConfigHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Debugf("Home directory is not detected: %s", err)
			return "", nil
		}
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}
	return util.GetYamlFileName(filepath.Join(xdgConfigHome, cliName, ConfigName), false)
}

// Cli performs initial CLI configuration: locates and loads the config file.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	var err error
	if cmdCtx.Cli.WorkDir == "" {
		if cmdCtx.Cli.WorkDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to detect current directory: %s", err)
		}
	}

	if cmdCtx.Cli.ConfigPath != "" {
		configPath, err := util.GetYamlFileName(cmdCtx.Cli.ConfigPath, true)
		if err != nil {
			return util.NewValidationError("specified path to the configuration file "+
				"is invalid: %s", cmdCtx.Cli.ConfigPath)
		}
		cmdCtx.Cli.ConfigPath = configPath
	} else if cmdCtx.Cli.ConfigPath, err = getConfigPath(cmdCtx.Cli.WorkDir); err != nil {
		return err
	}

	if cmdCtx.Cli.ConfigPath != "" {
		if cmdCtx.Cli.ConfigPath, err = filepath.Abs(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("cannot determine config file path: %s", err)
		}
		cmdCtx.Cli.ConfigDir = filepath.Dir(cmdCtx.Cli.ConfigPath)
		log.Debugf("Using configuration %s", cmdCtx.Cli.ConfigPath)
	} else {
		cmdCtx.Cli.ConfigDir = cmdCtx.Cli.WorkDir
	}

	cmdCtx.Cli.Opts, err = GetCliOpts(cmdCtx.Cli.ConfigPath)
	return err
}
