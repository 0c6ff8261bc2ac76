// Package layout describes files of newly created projects.
package layout

import (
	"text/template"

	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/scaffold"
	"github.com/gentem/gentem/cli/templates"
)

// entry is a layout file. The file is rendered only if the when variable is truthy.
type entry struct {
	spec scaffold.FileSpec
	when string
}

var commonFiles = []entry{
	{spec: scaffold.FileSpec{Template: "base/gitignore.tmpl", Destination: ".gitignore"}},
	{spec: scaffold.FileSpec{Template: "base/README.md.tmpl", Destination: "README.md"}},
}

var markerFile = entry{
	spec: scaffold.FileSpec{Template: "base/gentemrc.tmpl", Destination: project.MarkerName},
}

var layouts = map[string][]entry{
	project.TypeLibrary: {
		{spec: scaffold.FileSpec{Template: "library/pyproject.toml.tmpl",
			Destination: "pyproject.toml"}},
		{spec: scaffold.FileSpec{Template: "library/src/__init__.py.tmpl",
			Destination: "src/{{ .package_name }}/__init__.py"}},
		{spec: scaffold.FileSpec{Template: "library/src/core.py.tmpl",
			Destination: "src/{{ .package_name }}/core.py"}},
		{spec: scaffold.FileSpec{Template: "library/tests/test_package.py.tmpl",
			Destination: "tests/test_{{ .package_name }}.py"}},
	},
	project.TypeCli: {
		{spec: scaffold.FileSpec{Template: "cli/pyproject.toml.tmpl",
			Destination: "pyproject.toml"}},
		{spec: scaffold.FileSpec{Template: "cli/src/__init__.py.tmpl",
			Destination: "src/{{ .package_name }}/__init__.py"}},
		{spec: scaffold.FileSpec{Template: "cli/src/main.py.tmpl",
			Destination: "src/{{ .package_name }}/main.py"}},
		{spec: scaffold.FileSpec{Template: "cli/src/cli.py.tmpl",
			Destination: "src/{{ .package_name }}/cli.py"}},
		{spec: scaffold.FileSpec{Template: "cli/tests/test_cli.py.tmpl",
			Destination: "tests/test_cli.py"}},
	},
	project.TypeScript: {
		{spec: scaffold.FileSpec{Template: "script/pyproject.toml.tmpl",
			Destination: "pyproject.toml"}},
		{spec: scaffold.FileSpec{Template: "script/main.py.tmpl", Destination: "main.py"}},
		{spec: scaffold.FileSpec{Template: "script/tests/test_main.py.tmpl",
			Destination: "tests/test_main.py"}},
	},
	project.TypeFastapi: {
		{spec: scaffold.FileSpec{Template: "fastapi/pyproject.toml.tmpl",
			Destination: "pyproject.toml"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/__init__.py.tmpl",
			Destination: "app/__init__.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/main.py.tmpl",
			Destination: "app/main.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/core/__init__.py.tmpl",
			Destination: "app/core/__init__.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/core/config.py.tmpl",
			Destination: "app/core/config.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/api/__init__.py.tmpl",
			Destination: "app/api/__init__.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/api/routes.py.tmpl",
			Destination: "app/api/routes.py"}},
		{spec: scaffold.FileSpec{Template: "fastapi/app/db.py.tmpl",
			Destination: "app/db.py"}, when: "has_database"},
		{spec: scaffold.FileSpec{Template: "fastapi/env.example.tmpl",
			Destination: ".env.example"}},
		{spec: scaffold.FileSpec{Template: "fastapi/tests/test_api.py.tmpl",
			Destination: "tests/test_api.py"}},
	},
}

// FollowUpMessage is printed after a project is created.
const FollowUpMessage = `Next steps:
  cd {{ cwdRelative .project_path }}
  python -m venv .venv && source .venv/bin/activate
  pip install -e ".[dev]"
  {{ if eq .project_type "fastapi" }}uvicorn app.main:app --reload{{ else }}pytest{{ end }}`

// HasLayout returns true if projects of the type can be created.
func HasLayout(projectType string) bool {
	_, found := layouts[projectType]
	return found
}

// Files returns files of a new project in rendering order. The license file is added
// for licenses other than none.
func Files(projectType string, vars templates.Context) []scaffold.FileSpec {
	typeFiles, found := layouts[projectType]
	if !found {
		return []scaffold.FileSpec{}
	}

	entries := make([]entry, 0, len(commonFiles)+len(typeFiles)+2)
	entries = append(entries, commonFiles...)
	if license, found := project.Licenses[toString(vars["license"])]; found {
		entries = append(entries, entry{spec: scaffold.FileSpec{
			Template:    license.Template + templates.TemplateExt,
			Destination: "LICENSE",
		}})
	}
	entries = append(entries, typeFiles...)
	entries = append(entries, markerFile)

	files := make([]scaffold.FileSpec, 0, len(entries))
	for _, fileEntry := range entries {
		if fileEntry.when != "" {
			if truth, ok := template.IsTrue(vars[fileEntry.when]); !ok || !truth {
				continue
			}
		}
		files = append(files, fileEntry.spec)
	}
	return files
}

func toString(value any) string {
	if str, ok := value.(string); ok {
		return str
	}
	return ""
}
