// Package project describes generated Python projects: project types, licenses,
// the template context of a new project and the context inferred from an existing one.
package project

import "errors"

// Project types.
const (
	TypeLibrary = "library"
	TypeCli     = "cli"
	TypeScript  = "script"
	TypeFastapi = "fastapi"
	// TypeGeneric is assigned to existing projects of unknown shape.
	TypeGeneric = "generic"
)

// Project marker files.
const (
	ManifestName    = "pyproject.toml"
	SetupScriptName = "setup.py"
	MarkerName      = ".gentemrc"
)

// Default values of the template context.
const (
	DefaultAuthor        = "Gentem User"
	DefaultVersion       = "0.1.0"
	DefaultPythonVersion = "3.10"
	DefaultLicense       = "mit"
	DefaultType          = TypeLibrary
)

// Database backends of fastapi projects.
const (
	DbAsyncpg = "asyncpg"
	DbSqlite  = "sqlite"
)

// knownPythonVersions are interpreter versions generated projects are tested against.
var knownPythonVersions = []string{"3.8", "3.9", "3.10", "3.11", "3.12"}

// ErrInvalidProjectPath is reported when a path does not point to a project directory.
var ErrInvalidProjectPath = errors.New("invalid project path")

// License describes a license a new project can be distributed under.
type License struct {
	// Title is a human readable license name.
	Title string
	// Template is a name of the license text template.
	Template string
}

// Licenses maps license keys accepted by the command line to license descriptions.
var Licenses = map[string]License{
	"mit":    {Title: "MIT", Template: "base/license_mit"},
	"apache": {Title: "Apache-2.0", Template: "base/license_apache"},
	"gpl":    {Title: "GPL-3.0", Template: "base/license_gpl"},
	"bsd":    {Title: "BSD-3-Clause", Template: "base/license_bsd"},
}

// NoLicense disables license file generation.
const NoLicense = "none"
