package add

import (
	"slices"
	"strings"

	"github.com/gentem/gentem/cli/project"
	"github.com/gentem/gentem/cli/scaffold"
	"github.com/gentem/gentem/cli/util"
)

// Module types.
const (
	ModuleDocker    = "docker"
	ModuleDocs      = "docs"
	ModuleTesting   = "testing"
	ModuleLogging   = "logging"
	ModuleDatabase  = "database"
	ModuleCi        = "ci"
	ModulePrecommit = "precommit"
	ModulePoetry    = "poetry"
)

// ModuleNames lists supported module types.
var ModuleNames = []string{
	ModuleDocker, ModuleDocs, ModuleTesting, ModuleLogging, ModuleDatabase, ModuleCi,
	ModulePrecommit, ModulePoetry,
}

// anyProjectType matches project types without a dedicated table row.
const anyProjectType = "*"

type moduleKey struct {
	module      string
	projectType string
}

var moduleTemplates = map[moduleKey][]scaffold.FileSpec{
	{ModuleDocker, anyProjectType}: {
		{Template: "add/docker/Dockerfile.tmpl", Destination: "Dockerfile"},
		{Template: "add/docker/.dockerignore.tmpl", Destination: ".dockerignore"},
		{Template: "add/docker/docker-compose.yml.tmpl", Destination: "docker-compose.yml"},
	},
	{ModuleDocs, anyProjectType}: {
		{Template: "add/docs/mkdocs.yml.tmpl", Destination: "mkdocs.yml"},
		{Template: "add/docs/docs/index.md.tmpl", Destination: "docs/index.md"},
		{Template: "add/docs/docs/api.md.tmpl", Destination: "docs/api.md"},
		{Template: "add/docs/docs/getting-started.md.tmpl",
			Destination: "docs/getting-started.md"},
	},
	{ModuleTesting, anyProjectType}: {
		{Template: "add/testing/conftest.py.tmpl", Destination: "tests/conftest.py"},
		{Template: "add/testing/test_core.py.tmpl", Destination: "tests/test_core.py"},
	},
	{ModuleTesting, project.TypeFastapi}: {
		{Template: "add/testing/conftest.py.tmpl", Destination: "tests/conftest.py"},
		{Template: "add/testing/test_core.py.tmpl", Destination: "tests/test_core.py"},
		{Template: "add/testing/test_api.py.tmpl", Destination: "tests/test_api.py"},
	},
	{ModuleLogging, anyProjectType}: {
		{Template: "add/logging/logging.yaml.tmpl", Destination: "logging.yaml"},
		{Template: "add/logging/src/logging_config.py.tmpl",
			Destination: "src/logging_config.py"},
	},
	{ModuleLogging, project.TypeFastapi}: {
		{Template: "add/logging/logging.yaml.tmpl", Destination: "logging.yaml"},
		{Template: "add/logging/app/logging.py.tmpl", Destination: "app/logging.py"},
	},
	{ModuleDatabase, anyProjectType}: {
		{Template: "add/database/alembic.ini.tmpl", Destination: "alembic.ini"},
		{Template: "add/database/alembic/env.py.tmpl", Destination: "alembic/env.py"},
		{Template: "add/database/alembic/script.py.mako.tmpl",
			Destination: "alembic/script.py.mako"},
	},
	{ModuleCi, anyProjectType}: {
		{Template: "add/ci/.github/workflows/ci.yml.tmpl",
			Destination: ".github/workflows/ci.yml"},
	},
	{ModulePrecommit, anyProjectType}: {
		{Template: "add/precommit/.pre-commit-config.yaml.tmpl",
			Destination: ".pre-commit-config.yaml"},
	},
	{ModulePoetry, anyProjectType}: {
		{Template: "add/poetry/pyproject.toml.tmpl", Destination: "pyproject.toml"},
	},
}

var moduleNextSteps = map[string][]string{
	ModuleDocker: {
		"docker build -t {{ .project_slug }} .",
		"docker compose up -d",
	},
	ModuleDocs: {
		"pip install mkdocs mkdocs-material mkdocstrings",
		"mkdocs serve",
	},
	ModuleTesting: {
		"pip install pytest pytest-asyncio",
		"pytest tests/",
	},
	ModuleLogging: {
		"pip install pyyaml rich",
	},
	ModuleDatabase: {
		"pip install alembic",
		"alembic revision --autogenerate -m 'initial'",
		"alembic upgrade head",
	},
	ModuleCi: {
		"git add .github",
		"git commit -m 'Add CI workflow'",
		"git push origin main",
	},
	ModulePrecommit: {
		"pip install pre-commit",
		"pre-commit install",
		"pre-commit run --all-files",
	},
	ModulePoetry: {
		"pip install poetry",
		"poetry install",
	},
}

// SelectTemplates returns templates of the module for the project type in rendering
// order. An unknown module yields an empty list.
func SelectTemplates(module, projectType string) []scaffold.FileSpec {
	if specs, found := moduleTemplates[moduleKey{module, projectType}]; found {
		return slices.Clone(specs)
	}
	if specs, found := moduleTemplates[moduleKey{module, anyProjectType}]; found {
		return slices.Clone(specs)
	}
	return []scaffold.FileSpec{}
}

// NextSteps returns follow-up commands for the added module. Commands may reference
// template context variables.
func NextSteps(module string) []string {
	return slices.Clone(moduleNextSteps[module])
}

// ValidateModuleType checks the module is supported. Returns the normalized name.
func ValidateModuleType(module string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(module))
	if !slices.Contains(ModuleNames, normalized) {
		sorted := slices.Sorted(slices.Values(ModuleNames))
		return "", util.NewValidationError("invalid module type: %q. Valid options are: %s",
			module, strings.Join(sorted, ", "))
	}
	return normalized, nil
}
