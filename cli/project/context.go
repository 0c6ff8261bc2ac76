package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/util"
	"github.com/hashicorp/go-version"
)

// now is replaced in tests.
var now = time.Now

// Options are user choices a new project context is built from.
type Options struct {
	// Name is the project name. It must be a valid Python identifier.
	Name string
	// Type is the project type.
	Type string
	Author        string
	Email         string
	Description   string
	Version       string
	PythonVersion string
	// License is a key of Licenses or NoLicense.
	License string
	// AsyncMode enables async handlers in fastapi projects.
	AsyncMode bool
	// DbType is a database backend of fastapi projects. Empty for none.
	DbType string
	// GeneratorVersion is stored into the project marker.
	GeneratorVersion string
}

// DefaultEmail returns a placeholder e-mail derived from the project name.
func DefaultEmail(name string) string {
	return fmt.Sprintf("user@%s.dev", strings.ToLower(name))
}

// nameVars returns variables derived from the project name.
func nameVars(name string) templates.Context {
	return templates.Context{
		"project_name": name,
		"project_slug": util.Slugify(name),
		"package_name": util.PackageName(name),
		"class_name":   util.ClassName(name),
	}
}

// PythonVersions returns known Python versions satisfying ">= minimum". If none of the
// known versions does, the minimum itself is returned.
func PythonVersions(minimum string) []string {
	constraint, err := version.NewConstraint(">= " + minimum)
	if err != nil {
		log.Debugf("Unable to parse python version %q: %s", minimum, err)
		return PythonVersions(DefaultPythonVersion)
	}

	versions := []string{}
	for _, known := range knownPythonVersions {
		if constraint.Check(version.Must(version.NewVersion(known))) {
			versions = append(versions, known)
		}
	}
	if len(versions) == 0 {
		versions = append(versions, minimum)
	}
	return versions
}

// NewContext builds a template context of a new project. Empty options are replaced
// with defaults.
func NewContext(opts Options) templates.Context {
	ctx := nameVars(opts.Name)

	projectType := opts.Type
	if projectType == "" {
		projectType = DefaultType
	}
	author := opts.Author
	if author == "" {
		author = DefaultAuthor
	}
	email := opts.Email
	if email == "" {
		email = DefaultEmail(opts.Name)
	}
	projectVersion := opts.Version
	if projectVersion == "" {
		projectVersion = DefaultVersion
	}
	pythonVersion := opts.PythonVersion
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}
	license := opts.License
	if license == "" {
		license = NoLicense
	}

	current := now()
	ctx["project_type"] = projectType
	ctx["author"] = author
	ctx["email"] = email
	ctx["description"] = opts.Description
	ctx["version"] = projectVersion
	ctx["python_version"] = pythonVersion
	ctx["python_versions"] = PythonVersions(pythonVersion)
	ctx["license"] = license
	ctx["license_type"] = Licenses[license].Title
	ctx["year"] = current.Year()
	ctx["month"] = current.Month().String()
	ctx["library_enabled"] = projectType == TypeLibrary
	ctx["cli_enabled"] = projectType == TypeCli
	ctx["script_enabled"] = projectType == TypeScript
	ctx["async_mode"] = opts.AsyncMode
	ctx["has_database"] = opts.DbType != ""
	ctx["db_type"] = opts.DbType
	ctx["generator_version"] = opts.GeneratorVersion
	return ctx
}
