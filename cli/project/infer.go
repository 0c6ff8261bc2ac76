package project

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/gentem/gentem/cli/templates"
	"github.com/gentem/gentem/cli/util"
	"github.com/mitchellh/mapstructure"
)

// Manifest fields are scraped with independent patterns. The first match wins, a miss
// keeps the default value.
var (
	nameRe          = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
	authorRe        = regexp.MustCompile(`author\s*=\s*["']([^"']+)["']`)
	emailRe         = regexp.MustCompile(`email\s*=\s*["']([^"']+)["']`)
	descriptionRe   = regexp.MustCompile(`description\s*=\s*["']([^"']+)["']`)
	versionRe       = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)
	pythonVersionRe = regexp.MustCompile(
		`python\s*[=:]?\s*["']?\s*[\^~>=<!]*\s*([0-9]+(?:\.[0-9]+)*)`)
)

// Marker is the content of the gentem marker file.
type Marker struct {
	ProjectName      string `mapstructure:"project_name"`
	ProjectType      string `mapstructure:"project_type"`
	GeneratorVersion string `mapstructure:"generator_version"`
}

// DetectProjectType classifies a project by its manifest text. Rules are checked in
// a fixed order and the first match wins.
func DetectProjectType(manifest string) string {
	switch {
	case strings.Contains(strings.ToLower(manifest), "fastapi"):
		return TypeFastapi
	case strings.Contains(manifest, "[project.scripts]"),
		strings.Contains(manifest, "project.scripts"):
		return TypeCli
	case strings.Contains(manifest, "console_scripts"):
		return TypeCli
	case strings.Contains(manifest, "py.") && strings.Contains(manifest, "dependencies"):
		return TypeLibrary
	}
	return TypeGeneric
}

// readMarker loads the gentem marker file. A missing or malformed marker yields
// an empty result.
func readMarker(projectPath string) Marker {
	var marker Marker
	markerPath := filepath.Join(projectPath, MarkerName)
	if !util.IsRegularFile(markerPath) {
		return marker
	}
	raw, err := util.ParseYAML(markerPath)
	if err != nil {
		log.Debugf("Ignoring %s: %s", markerPath, err)
		return marker
	}
	if err = mapstructure.Decode(raw, &marker); err != nil {
		log.Debugf("Ignoring %s: %s", markerPath, err)
		return Marker{}
	}
	return marker
}

func firstSubmatch(re *regexp.Regexp, text string) (string, bool) {
	if matches := re.FindStringSubmatch(text); matches != nil {
		return matches[1], true
	}
	return "", false
}

// setName replaces the project name and the variables derived from it.
func setName(ctx templates.Context, name string) {
	for key, value := range nameVars(name) {
		ctx[key] = value
	}
}

// InferContext builds a template context of an existing project. Values found in the
// project manifest replace defaults derived from the directory name. Unrecognized
// manifests never fail the inference.
func InferContext(projectPath string) (templates.Context, error) {
	if err := ValidateProjectPath(projectPath); err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		absPath = projectPath
	}

	dirName := filepath.Base(absPath)
	current := now()
	ctx := nameVars(dirName)
	ctx["project_type"] = TypeGeneric
	ctx["author"] = DefaultAuthor
	ctx["email"] = DefaultEmail(dirName)
	ctx["description"] = ""
	ctx["version"] = DefaultVersion
	ctx["python_version"] = DefaultPythonVersion
	ctx["python_versions"] = PythonVersions(DefaultPythonVersion)
	ctx["year"] = current.Year()
	ctx["month"] = current.Month().String()

	marker := readMarker(absPath)
	if marker.ProjectName != "" {
		setName(ctx, marker.ProjectName)
	}
	if marker.ProjectType != "" && slices.Contains(
		[]string{TypeLibrary, TypeCli, TypeScript, TypeFastapi}, marker.ProjectType) {
		ctx["project_type"] = marker.ProjectType
	}
	if marker.GeneratorVersion != "" {
		ctx["generator_version"] = marker.GeneratorVersion
	}

	manifestPath := filepath.Join(absPath, ManifestName)
	manifest, err := util.GetFileContent(manifestPath)
	if err != nil {
		log.Debugf("No manifest is loaded: %s", err)
		return ctx, nil
	}

	// Generic classification keeps the type stored in the marker.
	if detected := DetectProjectType(manifest); detected != TypeGeneric {
		ctx["project_type"] = detected
	}
	if name, found := firstSubmatch(nameRe, manifest); found {
		setName(ctx, name)
	}
	if author, found := firstSubmatch(authorRe, manifest); found {
		ctx["author"] = author
	}
	if email, found := firstSubmatch(emailRe, manifest); found {
		ctx["email"] = email
	}
	if description, found := firstSubmatch(descriptionRe, manifest); found {
		ctx["description"] = description
	}
	if projectVersion, found := firstSubmatch(versionRe, manifest); found {
		ctx["version"] = projectVersion
	}
	if pythonVersion, found := firstSubmatch(pythonVersionRe, manifest); found {
		ctx["python_version"] = pythonVersion
		ctx["python_versions"] = PythonVersions(pythonVersion)
	}

	log.Debugf("Detected %s project %q", ctx["project_type"], ctx["project_name"])
	return ctx, nil
}
