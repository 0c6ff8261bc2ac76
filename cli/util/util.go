package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// ValidationExitCode is the process exit status used when user input is rejected.
const ValidationExitCode = 2

// VersionFunc is a type of function that return
// string with current gentem version.
type VersionFunc func(bool, bool) string

// GetFileContentBytes returns file content as a bytes slice.
func GetFileContentBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileContent, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

// GetFileContent returns file content as a string.
func GetFileContent(path string) (string, error) {
	fileContentBytes, err := GetFileContentBytes(path)
	if err != nil {
		return "", err
	}

	return string(fileContentBytes), nil
}

// InternalError shows error information, version of gentem and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of gentem.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// ParseYAML parse yaml file at specified path.
func ParseYAML(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// GetYamlFileName finds a YAML file by name with either .yaml or .yml extension. If
// mustExist is false and nothing is found, an empty name is returned.
func GetYamlFileName(fileName string, mustExist bool) (string, error) {
	fileBaseName := fileName
	switch filepath.Ext(fileName) {
	case ".yaml", ".yml", ".":
		fileBaseName = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	case "":
	default:
		return "", fmt.Errorf("provided file %q has no .yaml/.yml extension", fileName)
	}

	foundYamlFiles := []string{}
	for _, ext := range []string{".yaml", ".yml"} {
		if IsRegularFile(fileBaseName + ext) {
			foundYamlFiles = append(foundYamlFiles, fileBaseName+ext)
		}
	}
	switch {
	case len(foundYamlFiles) > 1:
		return "", fmt.Errorf("more than one YAML files are found:\n%s\nAmbiguous selection",
			strings.Join(foundYamlFiles, ", "))
	case len(foundYamlFiles) == 1:
		return foundYamlFiles[0], nil
	case !mustExist:
		return "", nil
	}
	return "", os.ErrNotExist
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file exists
// and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// FileExists reports whether anything exists at path. Errors other than "not exist"
// are returned to the caller.
func FileExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RelativeToCurrentWorkingDir returns a path relative to current working dir.
// In case of error, fullpath is returned.
func RelativeToCurrentWorkingDir(fullpath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(cwd, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

// exit is replaced in tests.
var exit = os.Exit

// HandleCmdErr handles an error returned by command implementation.
// A ValidationError terminates the process with ValidationExitCode, any other
// error with 1. Only the error message is printed.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err != nil {
		var validationError *ValidationError
		if errors.As(err, &validationError) {
			log.Errorf("%s: %s", cmd.CommandPath(), validationError.Error())
			exit(ValidationExitCode)
			return
		}
		if errors.Is(err, ErrCmdAbort) {
			exit(1)
			return
		}
		log.Error(err.Error())
		exit(1)
	}
}
