package engines

import (
	"bytes"
	"errors"
	"fmt"
	htmlTemplate "html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/bmatcuk/doublestar/v4"
)

// TemplateExt is the file name suffix of stored templates.
const TemplateExt = ".tmpl"

// AutoescapeMode selects output escaping.
type AutoescapeMode int

const (
	// AutoescapeNone passes substituted values through as is.
	AutoescapeNone AutoescapeMode = iota
	// AutoescapeHTML escapes values of templates producing HTML or XML files.
	AutoescapeHTML
)

// escapedExtensions are output file extensions AutoescapeHTML applies to.
var escapedExtensions = []string{".html", ".htm", ".xml"}

// Option configures GoTextEngine.
type Option func(*GoTextEngine)

// WithAutoescape sets output escaping mode.
func WithAutoescape(mode AutoescapeMode) Option {
	return func(engine *GoTextEngine) {
		engine.autoescape = mode
	}
}

// GoTextEngine renders templates stored in a file system using go text/template engine.
type GoTextEngine struct {
	fsys       fs.FS
	autoescape AutoescapeMode
}

// NewGoTextEngine creates an engine serving templates from fsys.
func NewGoTextEngine(fsys fs.FS, opts ...Option) *GoTextEngine {
	engine := &GoTextEngine{fsys: fsys}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// resolve returns the stored file name of the template. Names may be given with or
// without the template suffix.
func (engine GoTextEngine) resolve(name string) (string, error) {
	name = strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "/")
	candidates := []string{name}
	if !strings.HasSuffix(name, TemplateExt) {
		candidates = append(candidates, name+TemplateExt)
	}
	for _, candidate := range candidates {
		if !fs.ValidPath(candidate) {
			break
		}
		if stat, err := fs.Stat(engine.fsys, candidate); err == nil && stat.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// HasTemplate returns true if the template exists.
func (engine GoTextEngine) HasTemplate(name string) bool {
	_, err := engine.resolve(name)
	return err == nil
}

// escapes returns true if output of the template must be HTML-escaped.
func (engine GoTextEngine) escapes(name string) bool {
	if engine.autoescape != AutoescapeHTML {
		return false
	}
	ext := strings.ToLower(path.Ext(strings.TrimSuffix(name, TemplateExt)))
	return slices.Contains(escapedExtensions, ext)
}

// execute parses and executes the template body.
func (engine GoTextEngine) execute(name, body string, data map[string]any,
	escape bool,
) (string, error) {
	body = trimBlockLines(body)

	var buffer bytes.Buffer
	if escape {
		parsedTemplate, err := htmlTemplate.New(name).
			Funcs(htmlTemplate.FuncMap(commonTemplateFuncs)).Parse(body)
		if err != nil {
			return "", &RenderError{Template: name, Err: err}
		}
		trees := make(map[string]*parse.Tree)
		for _, associated := range parsedTemplate.Templates() {
			trees[associated.Name()] = associated.Tree
		}
		if err = parsedTemplate.Execute(&buffer,
			withMissingFields(name, trees, data)); err != nil {
			return "", &RenderError{Template: name, Err: err}
		}
		return buffer.String(), nil
	}

	parsedTemplate, err := template.New(name).Funcs(commonTemplateFuncs).Parse(body)
	if err != nil {
		return "", &RenderError{Template: name, Err: err}
	}
	if err = parsedTemplate.Execute(&buffer,
		withMissingFields(name, treesOf(parsedTemplate), data)); err != nil {
		return "", &RenderError{Template: name, Err: err}
	}
	return buffer.String(), nil
}

// treesOf returns parse trees of the template and all templates it defines.
func treesOf(parsedTemplate *template.Template) map[string]*parse.Tree {
	trees := make(map[string]*parse.Tree)
	for _, associated := range parsedTemplate.Templates() {
		trees[associated.Name()] = associated.Tree
	}
	return trees
}

// Render applies data to the named template. Returns instantiated text.
func (engine GoTextEngine) Render(name string, data map[string]any) (string, error) {
	fileName, err := engine.resolve(name)
	if err != nil {
		return "", err
	}
	body, err := fs.ReadFile(engine.fsys, fileName)
	if err != nil {
		return "", fmt.Errorf("error reading template %s: %w", fileName, err)
	}
	return engine.execute(fileName, string(body), data, engine.escapes(fileName))
}

// RenderToFile applies data to the named template and saves the result as dstPath.
// Parent directories of dstPath are created. Nothing is written if rendering fails.
func (engine GoTextEngine) RenderToFile(name string, data map[string]any,
	dstPath string,
) error {
	text, err := engine.Render(name, data)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", dstPath, err)
	}
	outFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", dstPath, err)
	}
	if _, err = io.WriteString(outFile, text); err != nil {
		outFile.Close()
		return fmt.Errorf("error writing %s: %w", dstPath, err)
	}
	if err = outFile.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", dstPath, err)
	}
	return nil
}

// RenderText applies data to the template text. Returns instantiated text.
func (engine GoTextEngine) RenderText(in string, data map[string]any) (string, error) {
	return engine.execute("text", in, data, false)
}

// ListTemplates returns sorted names of all stored templates. If category is not empty,
// only templates under this category are returned; an unknown category gives an
// empty list.
func (engine GoTextEngine) ListTemplates(category string) ([]string, error) {
	root := "."
	if category != "" {
		root = strings.Trim(path.Clean(filepath.ToSlash(category)), "/")
	}

	names := []string{}
	err := fs.WalkDir(engine.fsys, root, func(filePath string, entry fs.DirEntry,
		err error,
	) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() && strings.HasSuffix(filePath, TemplateExt) {
			names = append(names, filePath)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	slices.Sort(names)
	return names, nil
}

// MatchTemplates returns sorted names of stored templates matching the doublestar glob
// pattern, e.g. "add/**/*.yml.tmpl".
func (engine GoTextEngine) MatchTemplates(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid template pattern: %q", pattern)
	}
	matches, err := doublestar.Glob(engine.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to match templates: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if strings.HasSuffix(match, TemplateExt) {
			names = append(names, match)
		}
	}
	slices.Sort(names)
	return names, nil
}
