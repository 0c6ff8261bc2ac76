package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/gentem/gentem/cli/util"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var reservedWords = []string{
	"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
	"elif", "else", "except", "finally", "for", "from", "global", "if", "import", "in",
	"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try", "while",
	"with", "yield", "True", "False", "None",
}

var (
	newProjectTypes = []string{TypeLibrary, TypeCli, TypeScript}
	dbTypes         = []string{DbAsyncpg, DbSqlite, "postgres", "postgresql"}
)

// ValidateProjectName checks the name is a Python identifier and not a reserved word.
func ValidateProjectName(name string) error {
	if name == "" {
		return util.NewValidationError("project name cannot be empty")
	}
	if !identifierRe.MatchString(name) {
		return util.NewValidationError("%q is not a valid Python project name. Use only "+
			"letters, numbers and underscores, starting with a letter or underscore", name)
	}
	if slices.Contains(reservedWords, name) ||
		slices.Contains(reservedWords, strings.ToLower(name)) {
		return util.NewValidationError(
			"%q is a Python reserved word and cannot be used as a project name", name)
	}
	return nil
}

// NormalizeLicense validates the license key and returns its canonical form.
// An empty key and "none" disable the license file.
func NormalizeLicense(license string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(license))
	if normalized == "" || normalized == NoLicense {
		return NoLicense, nil
	}
	if _, found := Licenses[normalized]; !found {
		return "", util.NewValidationError("invalid license type: %q. Valid options are: %s",
			license, strings.Join(LicenseKeys(), ", "))
	}
	return normalized, nil
}

// LicenseKeys returns sorted license keys accepted by NormalizeLicense.
func LicenseKeys() []string {
	keys := []string{NoLicense}
	for key := range Licenses {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// NormalizeType validates the type of a new project.
func NormalizeType(projectType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(projectType))
	if !slices.Contains(newProjectTypes, normalized) {
		return "", util.NewValidationError("invalid project type: %q. Valid options are: %s",
			projectType, strings.Join(newProjectTypes, ", "))
	}
	return normalized, nil
}

// NormalizeDbType validates the database backend. Postgres aliases are mapped to
// asyncpg. An empty value means no database.
func NormalizeDbType(dbType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(dbType))
	if normalized == "" {
		return "", nil
	}
	if !slices.Contains(dbTypes, normalized) {
		return "", util.NewValidationError("invalid database type: %q. Valid options are: "+
			"%s or empty for none", dbType, strings.Join(dbTypes, ", "))
	}
	if normalized == "postgres" || normalized == "postgresql" {
		normalized = DbAsyncpg
	}
	return normalized, nil
}

// ValidateOutputPath checks the new project directory does not exist yet. Existing
// directories are allowed in dry run mode.
func ValidateOutputPath(path string, dryRun bool) error {
	exists, err := util.FileExists(path)
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", path, err)
	}
	if exists && !dryRun {
		return util.NewValidationError("directory %q already exists. Please choose a "+
			"different project name or remove the existing directory", path)
	}
	return nil
}

// ValidateProjectPath checks the path is a directory of an existing project: it must
// contain a manifest, a setup script or a gentem marker.
func ValidateProjectPath(path string) error {
	exists, err := util.FileExists(path)
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", path, err)
	}
	if !exists {
		return util.WrapValidationError(ErrInvalidProjectPath,
			"project path does not exist: %q", path)
	}
	if !util.IsDir(path) {
		return util.WrapValidationError(ErrInvalidProjectPath,
			"project path is not a directory: %q", path)
	}
	for _, marker := range []string{ManifestName, SetupScriptName, MarkerName} {
		if util.IsRegularFile(filepath.Join(path, marker)) {
			return nil
		}
	}
	return util.WrapValidationError(ErrInvalidProjectPath,
		"%q does not appear to be a valid project directory. Expected %s, %s or %s",
		path, ManifestName, SetupScriptName, MarkerName)
}
